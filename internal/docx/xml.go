package docx

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// XML namespaces used in generated parts.
const (
	nsW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC = "http://purl.org/dc/elements/1.1/"

	nsDCTerms = "http://purl.org/dc/terms/"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
)

// Element names carry the w: prefix literally; encoding/xml writes them
// unchanged and the namespace is declared once on the root element.

// documentXML represents word/document.xml (<w:document>).
type documentXML struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    bodyXML  `xml:"w:body"`
}

// bodyXML holds paragraphs and tables in document order.
type bodyXML struct {
	Content []any
	Section sectionPropsXML `xml:"w:sectPr"`
}

type sectionPropsXML struct {
	Size   pageSizeXML   `xml:"w:pgSz"`
	Margin pageMarginXML `xml:"w:pgMar"`
}

type pageSizeXML struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type pageMarginXML struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

// valXML is any element whose only payload is w:val.
type valXML struct {
	Val string `xml:"w:val,attr"`
}

// onXML is a toggle property element (<w:b/>, <w:i/>).
type onXML struct{}

// paragraphXML represents a paragraph (<w:p>).
type paragraphXML struct {
	XMLName xml.Name           `xml:"w:p"`
	Props   *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Content []any
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
// Field order follows the CT_PPr sequence.
type paragraphPropsXML struct {
	Style      *valXML     `xml:"w:pStyle,omitempty"`
	KeepNext   *onXML      `xml:"w:keepNext,omitempty"`
	NumPr      *numPrXML   `xml:"w:numPr,omitempty"`
	Spacing    *spacingXML `xml:"w:spacing,omitempty"`
	Indent     *indentXML  `xml:"w:ind,omitempty"`
	Contextual *onXML      `xml:"w:contextualSpacing,omitempty"`
	Jc         *valXML     `xml:"w:jc,omitempty"`
	OutlineLvl *valXML     `xml:"w:outlineLvl,omitempty"`
}

type numPrXML struct {
	Level valXML `xml:"w:ilvl"`
	NumID valXML `xml:"w:numId"`
}

type spacingXML struct {
	Before string `xml:"w:before,attr,omitempty"`
	After  string `xml:"w:after,attr,omitempty"`
}

type indentXML struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName xml.Name     `xml:"w:r"`
	Props   *runPropsXML `xml:"w:rPr,omitempty"`
	Content []any
}

// runPropsXML represents run properties (<w:rPr>).
// Field order follows the CT_RPr sequence.
type runPropsXML struct {
	Style     *valXML  `xml:"w:rStyle,omitempty"`
	Fonts     *fontXML `xml:"w:rFonts,omitempty"`
	Bold      *onXML   `xml:"w:b,omitempty"`
	Italic    *onXML   `xml:"w:i,omitempty"`
	Strike    *onXML   `xml:"w:strike,omitempty"`
	Color     *valXML  `xml:"w:color,omitempty"`
	Size      *valXML  `xml:"w:sz,omitempty"`
	SizeCS    *valXML  `xml:"w:szCs,omitempty"`
	Underline *valXML  `xml:"w:u,omitempty"`
}

type fontXML struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
	CS    string `xml:"w:cs,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type tabXML struct {
	XMLName xml.Name `xml:"w:tab"`
}

type breakXML struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

// hyperlinkXML represents an external hyperlink (<w:hyperlink r:id>).
type hyperlinkXML struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	Runs    []runXML
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	XMLName xml.Name      `xml:"w:tbl"`
	Props   tablePropsXML `xml:"w:tblPr"`
	Grid    tableGridXML  `xml:"w:tblGrid"`
	Rows    []tableRowXML
}

type tablePropsXML struct {
	Style  *valXML         `xml:"w:tblStyle,omitempty"`
	Width  widthXML        `xml:"w:tblW"`
	Jc     *valXML         `xml:"w:jc,omitempty"`
	Layout *tableLayoutXML `xml:"w:tblLayout,omitempty"`
}

type tableLayoutXML struct {
	Type string `xml:"w:type,attr"`
}

type widthXML struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type tableGridXML struct {
	Cols []gridColXML `xml:"w:gridCol"`
}

type gridColXML struct {
	W int `xml:"w:w,attr"`
}

type tableRowXML struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []tableCellXML
}

type tableCellXML struct {
	XMLName xml.Name     `xml:"w:tc"`
	Props   cellPropsXML `xml:"w:tcPr"`
	Content []any
}

type cellPropsXML struct {
	Width   *widthXML       `xml:"w:tcW,omitempty"`
	Borders *cellBordersXML `xml:"w:tcBorders,omitempty"`
	Shading *shadingXML     `xml:"w:shd,omitempty"`
}

type cellBordersXML struct {
	Top    borderXML `xml:"w:top"`
	Left   borderXML `xml:"w:left"`
	Bottom borderXML `xml:"w:bottom"`
	Right  borderXML `xml:"w:right"`
}

type borderXML struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Space int    `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type shadingXML struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

// relTable assigns relationship IDs to hyperlink targets while the body is
// serialized. IDs below firstLinkRelID are reserved for package parts.
type relTable struct {
	ids  map[string]string
	urls []string
}

const firstLinkRelID = 4

func (rt *relTable) idFor(url string) string {
	if rt.ids == nil {
		rt.ids = make(map[string]string)
	}
	if id, ok := rt.ids[url]; ok {
		return id
	}
	id := "rId" + strconv.Itoa(firstLinkRelID+len(rt.urls))
	rt.ids[url] = id
	rt.urls = append(rt.urls, url)
	return id
}

// documentToXML converts the body and collects hyperlink relationships.
func (d *Document) documentToXML(rels *relTable) documentXML {
	out := documentXML{
		NSW: nsW,
		NSR: nsR,
		Body: bodyXML{
			Section: sectionPropsXML{
				Size: pageSizeXML{W: pageWidthTwips, H: pageHeightTwips},
				Margin: pageMarginXML{
					Top: pageMarginTwips, Right: pageMarginTwips,
					Bottom: pageMarginTwips, Left: pageMarginTwips,
					Header: 720, Footer: 720,
				},
			},
		},
	}
	for _, b := range d.body {
		out.Body.Content = append(out.Body.Content, blockToXML(b, rels))
	}
	return out
}

func blockToXML(b Block, rels *relTable) any {
	switch v := b.(type) {
	case *Paragraph:
		return paragraphToXML(v, rels)
	case *Table:
		return tableToXML(v, rels)
	}
	return nil
}

func paragraphToXML(p *Paragraph, rels *relTable) paragraphXML {
	out := paragraphXML{}

	var props paragraphPropsXML
	set := false
	if p.Style != "" && p.Style != StyleNormal {
		props.Style = &valXML{Val: p.Style}
		set = true
	}
	if p.Numbering != nil {
		props.NumPr = &numPrXML{
			Level: valXML{Val: strconv.Itoa(p.Numbering.Level)},
			NumID: valXML{Val: strconv.Itoa(p.Numbering.ID)},
		}
		set = true
	}
	if p.SpaceBefore > 0 || p.SpaceAfter > 0 {
		props.Spacing = &spacingXML{}
		if p.SpaceBefore > 0 {
			props.Spacing.Before = strconv.Itoa(p.SpaceBefore.twips())
		}
		if p.SpaceAfter > 0 {
			props.Spacing.After = strconv.Itoa(p.SpaceAfter.twips())
		}
		set = true
	}
	if p.IndentLeft > 0 {
		props.Indent = &indentXML{Left: strconv.Itoa(p.IndentLeft.twips())}
		set = true
	}
	if p.Align != AlignDefault {
		props.Jc = &valXML{Val: string(p.Align)}
		set = true
	}
	if set {
		out.Props = &props
	}

	for _, in := range p.Content {
		switch v := in.(type) {
		case *Run:
			out.Content = append(out.Content, runToXML(v))
		case *Hyperlink:
			h := hyperlinkXML{ID: rels.idFor(v.URL)}
			for _, r := range v.Runs {
				h.Runs = append(h.Runs, runToXML(r))
			}
			out.Content = append(out.Content, h)
		}
	}
	return out
}

func runToXML(r *Run) runXML {
	out := runXML{Props: runProps(r)}
	if r.pageBreak {
		out.Content = append(out.Content, breakXML{Type: "page"})
		return out
	}
	out.Content = textContent(r.Text)
	return out
}

func runProps(r *Run) *runPropsXML {
	var props runPropsXML
	set := false
	if r.Style != "" {
		props.Style = &valXML{Val: r.Style}
		set = true
	}
	if r.Font != "" {
		props.Fonts = &fontXML{ASCII: r.Font, HAnsi: r.Font, CS: r.Font}
		set = true
	}
	if r.Bold {
		props.Bold = &onXML{}
		set = true
	}
	if r.Italic {
		props.Italic = &onXML{}
		set = true
	}
	if r.Strike {
		props.Strike = &onXML{}
		set = true
	}
	if r.Color != "" {
		props.Color = &valXML{Val: strings.ToUpper(r.Color)}
		set = true
	}
	if r.Size > 0 {
		hp := strconv.Itoa(r.Size.halfPoints())
		props.Size = &valXML{Val: hp}
		props.SizeCS = &valXML{Val: hp}
		set = true
	}
	if r.Underline {
		props.Underline = &valXML{Val: "single"}
		set = true
	}
	if !set {
		return nil
	}
	return &props
}

// textContent splits text on newlines and tabs into w:t, w:br and w:tab.
func textContent(text string) []any {
	var out []any
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			out = append(out, breakXML{})
		}
		parts := strings.Split(line, "\t")
		for j, part := range parts {
			if j > 0 {
				out = append(out, tabXML{})
			}
			if part == "" {
				continue
			}
			t := textXML{Value: part}
			if strings.TrimSpace(part) != part {
				t.Space = "preserve"
			}
			out = append(out, t)
		}
	}
	return out
}

func tableToXML(t *Table, rels *relTable) tableXML {
	out := tableXML{
		Props: tablePropsXML{Width: widthXML{Type: "auto"}},
	}
	if t.Style != "" {
		out.Props.Style = &valXML{Val: t.Style}
	}
	if t.Align != AlignDefault {
		out.Props.Jc = &valXML{Val: string(t.Align)}
	}

	fixed := true
	for _, w := range t.Widths {
		out.Grid.Cols = append(out.Grid.Cols, gridColXML{W: w.twips()})
		if w <= 0 {
			fixed = false
		}
	}
	if fixed && len(t.Widths) > 0 {
		out.Props.Layout = &tableLayoutXML{Type: "fixed"}
	}

	for _, row := range t.Rows {
		rx := tableRowXML{}
		for j, cell := range row.Cells {
			var width Inch
			if j < len(t.Widths) {
				width = t.Widths[j]
			}
			rx.Cells = append(rx.Cells, cellToXML(cell, width, rels))
		}
		out.Rows = append(out.Rows, rx)
	}
	return out
}

func cellToXML(c *Cell, width Inch, rels *relTable) tableCellXML {
	out := tableCellXML{}
	if width > 0 {
		out.Props.Width = &widthXML{W: width.twips(), Type: "dxa"}
	}
	if c.Border != nil {
		b := borderXML{Val: "single", Size: c.Border.Size, Color: strings.ToUpper(c.Border.Color)}
		out.Props.Borders = &cellBordersXML{Top: b, Left: b, Bottom: b, Right: b}
	}
	if c.Shading != "" {
		out.Props.Shading = &shadingXML{Val: "clear", Color: "auto", Fill: strings.ToUpper(c.Shading)}
	}

	for _, b := range c.Blocks {
		out.Content = append(out.Content, blockToXML(b, rels))
	}
	// A cell must end with a paragraph, including after a nested table.
	if len(c.Blocks) == 0 {
		out.Content = append(out.Content, paragraphXML{})
	} else if _, ok := c.Blocks[len(c.Blocks)-1].(*Table); ok {
		out.Content = append(out.Content, paragraphXML{})
	}
	return out
}
