package render

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/pipeline"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ErrInvalidContent indicates a content asset failed to parse or validate.
var ErrInvalidContent = errors.New("invalid content asset")

// Reference section kinds.
const (
	KindDocumentation = "documentation"
	KindPaper         = "paper"
	KindReport        = "report"
	KindStatistic     = "statistic"
)

// Content is the fixed material inserted into every document.
type Content struct {
	Diagram    *Diagram
	TechStack  *TechStack
	References *References
}

// Markers returns the scanner triggers declared by the content assets.
func (c *Content) Markers() pipeline.Markers {
	return pipeline.Markers{
		DiagramStart: c.Diagram.Markers.Start,
		DiagramEnd:   c.Diagram.Markers.End,
		TechTable:    c.TechStack.Markers.Start,
	}
}

// Markers are the literal lines that locate a replacement in the source.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// BorderSpec is a single-line cell border.
type BorderSpec struct {
	Color string `yaml:"color"`
	Size  int    `yaml:"size"` // eighths of a point
}

// Validate implements validation.Validatable.
func (b BorderSpec) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Color, validation.Required, validation.Match(hexColor)),
		validation.Field(&b.Size, validation.Required, validation.Min(2), validation.Max(96)),
	)
}

// Diagram describes the architecture diagram: a titled container holding
// a row of panels.
type Diagram struct {
	Markers Markers       `yaml:"markers"`
	Header  DiagramHeader `yaml:"header"`
	Border  BorderSpec    `yaml:"border"`
	Panels  []Panel       `yaml:"panels"`
}

// DiagramHeader is the container title cell.
type DiagramHeader struct {
	Text    string  `yaml:"text"`
	Size    float64 `yaml:"size"`
	Shading string  `yaml:"shading"`
}

// Panel is one cell of the diagram's inner row.
type Panel struct {
	Width   float64  `yaml:"width"` // inches
	Shading string   `yaml:"shading"`
	Align   string   `yaml:"align"`
	Bold    bool     `yaml:"bold"`
	Size    float64  `yaml:"size"` // zero = body size
	Lines   []string `yaml:"lines"`
}

// Validate implements validation.Validatable.
func (d *Diagram) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Markers, validation.By(requireEnd)),
		validation.Field(&d.Header),
		validation.Field(&d.Border),
		validation.Field(&d.Panels, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (h DiagramHeader) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Text, validation.Required),
		validation.Field(&h.Size, validation.Min(0.0), validation.Max(MaxFontSize)),
		validation.Field(&h.Shading, validation.Match(hexColor)),
	)
}

// Validate implements validation.Validatable.
func (p Panel) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Width, validation.Required, validation.Min(0.1), validation.Max(8.5)),
		validation.Field(&p.Shading, validation.Match(hexColor)),
		validation.Field(&p.Align, validation.In("left", "center", "right")),
		validation.Field(&p.Size, validation.Min(0.0), validation.Max(MaxFontSize)),
		validation.Field(&p.Lines, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (m Markers) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Start, validation.Required),
	)
}

func requireEnd(value any) error {
	m, _ := value.(Markers)
	if m.End == "" {
		return validation.NewError("validation_marker_end", "end marker is required")
	}
	return nil
}

// TechStack describes the technology table.
type TechStack struct {
	Markers Markers     `yaml:"markers"`
	Header  TableHeader `yaml:"header"`
	Stripe  string      `yaml:"stripe"` // fill of even data rows
	Widths  []float64   `yaml:"widths"` // inches per column
	Border  BorderSpec  `yaml:"border"`
	Rows    [][]string  `yaml:"rows"`
}

// TableHeader is the first table row.
type TableHeader struct {
	Cells   []string `yaml:"cells"`
	Color   string   `yaml:"color"`
	Shading string   `yaml:"shading"`
	Size    float64  `yaml:"size"`
}

// Validate implements validation.Validatable.
func (t *TechStack) Validate() error {
	cols := len(t.Header.Cells)
	return validation.ValidateStruct(t,
		validation.Field(&t.Markers),
		validation.Field(&t.Header),
		validation.Field(&t.Stripe, validation.Match(hexColor)),
		validation.Field(&t.Widths,
			validation.Length(cols, cols),
			validation.Each(validation.Required, validation.Min(0.1), validation.Max(8.5)),
		),
		validation.Field(&t.Border),
		validation.Field(&t.Rows, validation.Required, validation.Each(validation.Length(cols, cols))),
	)
}

// Validate implements validation.Validatable.
func (h TableHeader) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Cells, validation.Required),
		validation.Field(&h.Color, validation.Match(hexColor)),
		validation.Field(&h.Shading, validation.Match(hexColor)),
		validation.Field(&h.Size, validation.Min(0.0), validation.Max(MaxFontSize)),
	)
}

// References is the bibliography appended after the article.
type References struct {
	Title    string       `yaml:"title"`
	Sections []RefSection `yaml:"sections"`
}

// RefSection is a titled group of entries sharing one layout.
type RefSection struct {
	Title   string     `yaml:"title"`
	Kind    string     `yaml:"kind"`
	Entries []RefEntry `yaml:"entries"`
}

// RefEntry holds the fields used by the layouts; each kind reads a subset.
type RefEntry struct {
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
	Authors string `yaml:"authors"`
	Venue   string `yaml:"venue"`
	Org     string `yaml:"org"`
	Text    string `yaml:"text"`
}

// Validate implements validation.Validatable.
func (r *References) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Sections, validation.Required),
	)
}

// Validate implements validation.Validatable.
func (s RefSection) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Kind, validation.Required,
			validation.In(KindDocumentation, KindPaper, KindReport, KindStatistic)),
		validation.Field(&s.Entries, validation.Required, validation.Each(validation.By(entryFor(s.Kind)))),
	)
}

// entryFor returns a rule checking the fields the section kind renders.
func entryFor(kind string) validation.RuleFunc {
	return func(value any) error {
		e, _ := value.(RefEntry)
		switch kind {
		case KindStatistic:
			return validation.ValidateStruct(&e, validation.Field(&e.Text, validation.Required))
		case KindPaper:
			return validation.ValidateStruct(&e,
				validation.Field(&e.Authors, validation.Required),
				validation.Field(&e.Title, validation.Required),
				validation.Field(&e.URL, validation.Required),
			)
		case KindReport:
			return validation.ValidateStruct(&e,
				validation.Field(&e.Org, validation.Required),
				validation.Field(&e.Title, validation.Required),
				validation.Field(&e.URL, validation.Required),
			)
		default:
			return validation.ValidateStruct(&e,
				validation.Field(&e.Title, validation.Required),
				validation.Field(&e.URL, validation.Required),
			)
		}
	}
}

// LoadContent reads and validates the diagram, technology table and
// references assets from loader.
func LoadContent(loader assets.AssetLoader) (*Content, error) {
	c := &Content{
		Diagram:    &Diagram{},
		TechStack:  &TechStack{},
		References: &References{},
	}
	items := []struct {
		name string
		dst  validation.Validatable
	}{
		{assets.ContentDiagram, c.Diagram},
		{assets.ContentTechStack, c.TechStack},
		{assets.ContentReferences, c.References},
	}
	for _, item := range items {
		data, err := loader.LoadContent(item.name)
		if err != nil {
			return nil, err
		}
		if err := yamlutil.Decode(data, item.dst); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, item.name, err)
		}
		if err := item.dst.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContent, item.name, err)
		}
	}
	return c, nil
}
