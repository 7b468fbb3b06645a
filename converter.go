package md2docx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/dateutil"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
	"github.com/alnah/go-md2docx/internal/render"
)

// Metadata line labels that feed document properties.
const (
	metaAuthor = "author"
	metaTags   = "tags"
	metaDate   = "date"
)

// Converter orchestrates the Markdown-to-DOCX conversion pipeline.
// Create with NewConverter() and call Convert() for each article.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	theme             *render.Theme
	scanner           *pipeline.Scanner
	renderer          *render.Renderer
	inline            *pipeline.InlineParser
}

// NewConverter creates a Converter with default configuration: embedded
// assets, default theme, references enabled.
// Returns error if the theme or content assets cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			references: true,
			now:        time.Now,
			newID:      uuid.NewString,
		},
		assetLoader: assets.NewEmbeddedLoader(),
		inline:      pipeline.NewInlineParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: resolve to internal loader
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Handle WithAssetLoader: embedded assets remain the fallback
	if c.publicAssetLoader != nil {
		c.assetLoader = assets.NewResolverWithLoader(&publicToInternalAdapter{pub: c.publicAssetLoader})
	}

	theme, err := render.LoadTheme(c.assetLoader, c.cfg.theme)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", convertAssetError(err))
	}
	c.theme = theme

	content, err := render.LoadContent(c.assetLoader)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", convertAssetError(err))
	}

	c.scanner = pipeline.NewScanner(content.Markers())
	c.renderer = render.New(theme, content)
	return c, nil
}

// Convert runs the full pipeline and returns the DOCX package.
// The context is checked between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInternalFailed, r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	now := c.cfg.now()

	src, err := pipeline.Preprocess(ctx, input.Markdown)
	if err != nil {
		return nil, err
	}

	blocks, err := c.scanner.Scan(ctx, src.Body)
	if err != nil {
		return nil, err
	}
	// Report source lines, not body lines.
	for i := range blocks {
		blocks[i].Line += src.HeaderLines
	}

	if err := resolveDates(blocks, now); err != nil {
		return nil, err
	}

	doc := docx.New()
	doc.Styles = c.theme.StyleSheet()
	doc.Properties = c.properties(input, src.Meta, blocks, now)

	rs, err := c.renderer.Render(ctx, doc, blocks)
	if err != nil {
		return nil, err
	}

	if c.cfg.references {
		refs := c.renderer.AppendReferences(doc)
		rs.Headings += refs.Headings
		rs.References += refs.References
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}

	return &ConvertResult{
		DOCX:  data,
		Title: doc.Properties.Title,
		Stats: Stats(rs),
	}, nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func (c *Converter) validateInput(input Input) error {
	if strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// properties fills document properties. Explicit input wins over front
// matter, which wins over metadata lines and the article title heading.
func (c *Converter) properties(input Input, fm pipeline.FrontMatter, blocks []pipeline.Block, now time.Time) docx.Properties {
	var (
		heading  string
		author   string
		keywords []string
	)
	for _, b := range blocks {
		switch {
		case b.Kind == pipeline.KindHeading && b.Level == 0 && heading == "":
			heading = pipeline.PlainText(c.inline.Parse(b.Text))
		case b.Kind == pipeline.KindMeta && author == "" && strings.EqualFold(b.MetaKey(), metaAuthor):
			author = strings.TrimSpace(b.Text)
		case b.Kind == pipeline.KindMeta && keywords == nil && strings.EqualFold(b.MetaKey(), metaTags):
			keywords = splitKeywords(b.Text)
		}
	}

	return docx.Properties{
		Title:       firstNonEmpty(input.Title, fm.Title, heading),
		Creator:     firstNonEmpty(input.Author, fm.Author, author),
		Keywords:    firstNonEmptySlice(input.Keywords, fm.Tags, keywords),
		Description: fm.Description,
		Identifier:  "urn:uuid:" + c.cfg.newID(),
		Created:     now,
		Modified:    now,
	}
}

// resolveDates expands "auto" values on Date metadata lines using now.
func resolveDates(blocks []pipeline.Block, now time.Time) error {
	for i := range blocks {
		b := &blocks[i]
		if b.Kind != pipeline.KindMeta || !strings.EqualFold(b.MetaKey(), metaDate) || !dateutil.IsAuto(b.Text) {
			continue
		}
		resolved, err := dateutil.ResolveDate(b.Text, now)
		if err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidDate, b.Line, err)
		}
		b.Text = " " + resolved
	}
	return nil
}

// splitKeywords splits a comma-separated tag line, dropping '#' prefixes.
func splitKeywords(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		kw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "#"))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptySlice(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
