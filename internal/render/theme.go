package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrInvalidTheme indicates a theme file failed to parse or validate.
var ErrInvalidTheme = errors.New("invalid theme")

// Size limits for theme values, in points.
const (
	MinFontSize = 4.0
	MaxFontSize = 72.0
	MaxSpacing  = 72.0
	MaxIndent   = 3.0 // inches
	MaxRuleLen  = 200
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Theme controls fonts, sizes and colours of the generated document.
type Theme struct {
	Name     string       `yaml:"name"`
	Body     BodyTheme    `yaml:"body"`
	Headings HeadingTheme `yaml:"headings"`
	Code     CodeTheme    `yaml:"code"`
	Link     ColorTheme   `yaml:"link"`
	Quote    ColorTheme   `yaml:"quote"`
	Rule     RuleTheme    `yaml:"rule"`
}

// BodyTheme sets the Normal style font.
type BodyTheme struct {
	Font string  `yaml:"font"`
	Size float64 `yaml:"size"`
}

// HeadingTheme sets the Title and HeadingN styles.
type HeadingTheme struct {
	Font       string `yaml:"font"`
	Color      string `yaml:"color"`
	TitleColor string `yaml:"title_color"`
}

// CodeTheme sets fenced and inline code rendering.
type CodeTheme struct {
	Font       string  `yaml:"font"`
	BlockSize  float64 `yaml:"block_size"`
	InlineSize float64 `yaml:"inline_size"`
	Indent     float64 `yaml:"indent"`  // inches
	Spacing    float64 `yaml:"spacing"` // points before and after
	Style      string  `yaml:"style"`   // chroma style name
}

// ColorTheme holds a single hex colour.
type ColorTheme struct {
	Color string `yaml:"color"`
}

// RuleTheme sets the horizontal rule glyph and repeat count.
type RuleTheme struct {
	Char  string `yaml:"char"`
	Width int    `yaml:"width"`
}

// LoadTheme resolves ref as a theme file path when it contains a path
// separator, otherwise as a theme name in loader. Empty ref means
// assets.DefaultTheme.
func LoadTheme(loader assets.AssetLoader, ref string) (*Theme, error) {
	if ref == "" {
		ref = assets.DefaultTheme
	}

	var (
		data []byte
		err  error
	)
	if fileutil.IsFilePath(ref) {
		data, err = yamlutil.ReadFile(os.DirFS(filepath.Dir(ref)), filepath.Base(ref))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", assets.ErrThemeNotFound, ref)
		}
	} else {
		data, err = loader.LoadTheme(ref)
	}
	if err != nil {
		return nil, err
	}
	return ParseTheme(data)
}

// ParseTheme decodes and validates a theme YAML document.
func ParseTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := yamlutil.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks every theme value.
func (t *Theme) Validate() error {
	err := validation.ValidateStruct(t,
		validation.Field(&t.Body),
		validation.Field(&t.Headings),
		validation.Field(&t.Code),
		validation.Field(&t.Link),
		validation.Field(&t.Quote),
		validation.Field(&t.Rule),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidTheme, t.Name, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (b BodyTheme) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Font, validation.Required),
		validation.Field(&b.Size, validation.Required, validation.Min(MinFontSize), validation.Max(MaxFontSize)),
	)
}

// Validate implements validation.Validatable.
func (h HeadingTheme) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Color, validation.Match(hexColor)),
		validation.Field(&h.TitleColor, validation.Match(hexColor)),
	)
}

// Validate implements validation.Validatable.
func (c CodeTheme) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Font, validation.Required),
		validation.Field(&c.BlockSize, validation.Required, validation.Min(MinFontSize), validation.Max(MaxFontSize)),
		validation.Field(&c.InlineSize, validation.Required, validation.Min(MinFontSize), validation.Max(MaxFontSize)),
		validation.Field(&c.Indent, validation.Min(0.0), validation.Max(MaxIndent)),
		validation.Field(&c.Spacing, validation.Min(0.0), validation.Max(MaxSpacing)),
		validation.Field(&c.Style, validation.By(knownCodeStyle)),
	)
}

// Validate implements validation.Validatable.
func (c ColorTheme) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Color, validation.Match(hexColor)),
	)
}

// Validate implements validation.Validatable.
func (r RuleTheme) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Char, validation.Required, validation.RuneLength(1, 1)),
		validation.Field(&r.Width, validation.Required, validation.Min(1), validation.Max(MaxRuleLen)),
	)
}

func knownCodeStyle(value any) error {
	s, _ := value.(string)
	if s == "" || pipeline.HasStyle(s) {
		return nil
	}
	return validation.NewError("validation_code_style", "unknown highlighting style "+s)
}

// StyleSheet converts the theme to document style settings.
func (t *Theme) StyleSheet() docx.StyleSheet {
	return docx.StyleSheet{
		BodyFont:     t.Body.Font,
		BodySize:     docx.Pt(t.Body.Size),
		HeadingFont:  t.Headings.Font,
		HeadingColor: t.Headings.Color,
		TitleColor:   t.Headings.TitleColor,
		LinkColor:    t.Link.Color,
		QuoteColor:   t.Quote.Color,
	}
}

// codeStyle returns the chroma style name, defaulting when unset.
func (t *Theme) codeStyle() string {
	if t.Code.Style == "" {
		return pipeline.DefaultCodeStyle
	}
	return t.Code.Style
}
