package docx

import (
	"strings"
	"time"
)

// Built-in paragraph style IDs written to word/styles.xml.
const (
	StyleNormal     = "Normal"
	StyleTitle      = "Title"
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
	StyleQuote      = "Quote"
	StyleTableGrid  = "TableGrid"
	styleHyperlink  = "Hyperlink"
)

// MaxHeadingLevel is the deepest heading style available (Heading1..Heading5).
const MaxHeadingLevel = 5

// MaxListLevel is the deepest list indentation level (ilvl 0..8).
const MaxListLevel = 8

// Alignment is a paragraph or table justification value.
type Alignment string

// Alignment values.
const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

// HeadingStyle returns the paragraph style ID for a heading level.
// Level 0 is the document title.
func HeadingStyle(level int) string {
	if level <= 0 {
		return StyleTitle
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return "Heading" + string(rune('0'+level))
}

// Block is a body-level element: *Paragraph or *Table.
type Block interface {
	isBlock()
}

// Inline is a paragraph-level element: *Run or *Hyperlink.
type Inline interface {
	isInline()
}

// Run is a span of text sharing one set of character properties.
// Newlines in Text become line breaks and tabs become tab stops.
type Run struct {
	Text      string
	Style     string // character style ID
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Font      string
	Size      Pt
	Color     string // hex RRGGBB, empty = inherit

	pageBreak bool
}

func (*Run) isInline() {}

// Hyperlink wraps runs that link to an external URL.
type Hyperlink struct {
	URL  string
	Runs []*Run
}

func (*Hyperlink) isInline() {}

// AddRun appends a run inside the hyperlink using the Hyperlink character style.
func (h *Hyperlink) AddRun(text string) *Run {
	r := &Run{Text: text, Style: styleHyperlink}
	h.Runs = append(h.Runs, r)
	return r
}

// Numbering attaches a paragraph to a list definition.
type Numbering struct {
	ID    int
	Level int
}

// Paragraph is a block of inline content with paragraph properties.
type Paragraph struct {
	Style       string
	Align       Alignment
	IndentLeft  Inch
	SpaceBefore Pt
	SpaceAfter  Pt
	Numbering   *Numbering
	Content     []Inline
}

func (*Paragraph) isBlock() {}

// AddRun appends a plain run and returns it for formatting.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{Text: text}
	p.Content = append(p.Content, r)
	return r
}

// AddHyperlink appends an empty hyperlink to url.
func (p *Paragraph) AddHyperlink(url string) *Hyperlink {
	h := &Hyperlink{URL: url}
	p.Content = append(p.Content, h)
	return h
}

// Runs returns the runs of the paragraph, including runs inside hyperlinks.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, in := range p.Content {
		switch v := in.(type) {
		case *Run:
			runs = append(runs, v)
		case *Hyperlink:
			runs = append(runs, v.Runs...)
		}
	}
	return runs
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Border describes a single-line cell border.
type Border struct {
	Color string // hex RRGGBB
	Size  int    // eighths of a point
}

// Cell is a table cell holding paragraphs and nested tables.
type Cell struct {
	Shading string // hex fill, empty = none
	Border  *Border
	Blocks  []Block
}

// AddParagraph appends an empty paragraph to the cell.
func (c *Cell) AddParagraph() *Paragraph {
	p := &Paragraph{}
	c.Blocks = append(c.Blocks, p)
	return p
}

// SetText replaces the cell content with a single paragraph holding one run.
// Newlines in text become line breaks within that paragraph.
func (c *Cell) SetText(text string) *Paragraph {
	p := &Paragraph{}
	p.AddRun(text)
	c.Blocks = []Block{p}
	return p
}

// AddTable nests a rows x cols table inside the cell.
func (c *Cell) AddTable(rows, cols int) *Table {
	t := newTable(rows, cols)
	c.Blocks = append(c.Blocks, t)
	return t
}

// Paragraphs returns the top-level paragraphs of the cell.
func (c *Cell) Paragraphs() []*Paragraph {
	var ps []*Paragraph
	for _, b := range c.Blocks {
		if p, ok := b.(*Paragraph); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

// Row is a table row.
type Row struct {
	Cells []*Cell
}

// Table is a grid of cells.
type Table struct {
	Style  string // table style ID, empty = none
	Align  Alignment
	Widths []Inch // per column, zero = auto
	Rows   []*Row
}

func (*Table) isBlock() {}

func newTable(rows, cols int) *Table {
	t := &Table{
		Widths: make([]Inch, cols),
		Rows:   make([]*Row, rows),
	}
	for i := range t.Rows {
		row := &Row{Cells: make([]*Cell, cols)}
		for j := range row.Cells {
			row.Cells[j] = &Cell{}
		}
		t.Rows[i] = row
	}
	return t
}

// Cell returns the cell at row r, column c.
func (t *Table) Cell(r, c int) *Cell {
	return t.Rows[r].Cells[c]
}

// SetBorder applies the same border to every cell of the table.
func (t *Table) SetBorder(b Border) {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			bb := b
			cell.Border = &bb
		}
	}
}

// Properties holds the package core properties (docProps/core.xml).
type Properties struct {
	Title       string
	Creator     string
	Keywords    []string
	Description string
	Identifier  string
	Created     time.Time
	Modified    time.Time
}

// Document is an in-memory word-processing document.
type Document struct {
	Properties Properties
	Styles     StyleSheet

	body      []Block
	numbering numbering
}

// New returns an empty document using DefaultStyleSheet.
func New() *Document {
	return &Document{
		Styles: DefaultStyleSheet(),
	}
}

// Body returns the body-level blocks in document order.
func (d *Document) Body() []Block {
	return d.body
}

// AddParagraph appends an empty paragraph with the given style ID.
// An empty style means Normal.
func (d *Document) AddParagraph(style string) *Paragraph {
	p := &Paragraph{Style: style}
	d.body = append(d.body, p)
	return p
}

// AddHeading appends a heading paragraph. Level 0 produces a Title.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	p := d.AddParagraph(HeadingStyle(level))
	if text != "" {
		p.AddRun(text)
	}
	return p
}

// AddTable appends a rows x cols table.
func (d *Document) AddTable(rows, cols int) *Table {
	t := newTable(rows, cols)
	d.body = append(d.body, t)
	return t
}

// AddPageBreak appends a paragraph holding a single page break.
func (d *Document) AddPageBreak() *Paragraph {
	p := d.AddParagraph("")
	p.Content = append(p.Content, &Run{pageBreak: true})
	return p
}

// BulletList returns the numbering ID shared by all bullet items.
func (d *Document) BulletList() int {
	return bulletNumID
}

// NewNumberedList allocates a numbering instance that starts at start.
// Each call produces an independent counter.
func (d *Document) NewNumberedList(start int) int {
	return d.numbering.addDecimal(start)
}
