package docx

import (
	"encoding/xml"
	"strconv"
)

// StyleSheet configures the named styles written to word/styles.xml.
type StyleSheet struct {
	BodyFont     string
	BodySize     Pt
	HeadingFont  string
	HeadingColor string // hex RRGGBB
	TitleColor   string // hex RRGGBB
	LinkColor    string // hex RRGGBB
	QuoteColor   string // hex RRGGBB
}

// DefaultStyleSheet mirrors the stock Word template: Calibri 11 pt body,
// blue headings.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		BodyFont:     "Calibri",
		BodySize:     11,
		HeadingFont:  "Calibri Light",
		HeadingColor: "365F91",
		TitleColor:   "17365D",
		LinkColor:    "3B82F6",
		QuoteColor:   "595959",
	}
}

// headingSizes holds point sizes for Heading1..Heading5.
var headingSizes = [MaxHeadingLevel]Pt{16, 13, 12, 11, 11}

// stylesXML represents word/styles.xml (<w:styles>).
type stylesXML struct {
	XMLName  xml.Name       `xml:"w:styles"`
	NSW      string         `xml:"xmlns:w,attr"`
	Defaults docDefaultsXML `xml:"w:docDefaults"`
	Styles   []styleXML     `xml:"w:style"`
}

type docDefaultsXML struct {
	Run       rPrDefaultXML `xml:"w:rPrDefault"`
	Paragraph pPrDefaultXML `xml:"w:pPrDefault"`
}

type rPrDefaultXML struct {
	Props runPropsXML `xml:"w:rPr"`
}

type pPrDefaultXML struct {
	Props paragraphPropsXML `xml:"w:pPr"`
}

// styleXML represents a style definition (<w:style>).
// Field order follows the CT_Style sequence.
type styleXML struct {
	Type       string             `xml:"w:type,attr"`
	Default    string             `xml:"w:default,attr,omitempty"`
	ID         string             `xml:"w:styleId,attr"`
	Name       valXML             `xml:"w:name"`
	BasedOn    *valXML            `xml:"w:basedOn,omitempty"`
	Next       *valXML            `xml:"w:next,omitempty"`
	UIPriority *valXML            `xml:"w:uiPriority,omitempty"`
	QFormat    *onXML             `xml:"w:qFormat,omitempty"`
	Paragraph  *paragraphPropsXML `xml:"w:pPr,omitempty"`
	Run        *runPropsXML       `xml:"w:rPr,omitempty"`
}

func sizeProps(size Pt) (*valXML, *valXML) {
	hp := strconv.Itoa(size.halfPoints())
	return &valXML{Val: hp}, &valXML{Val: hp}
}

func fontProps(font string) *fontXML {
	if font == "" {
		return nil
	}
	return &fontXML{ASCII: font, HAnsi: font, CS: font}
}

func colorProp(color string) *valXML {
	if color == "" {
		return nil
	}
	return &valXML{Val: color}
}

func (s StyleSheet) toXML() stylesXML {
	bodySize, bodySizeCS := sizeProps(s.BodySize)
	out := stylesXML{
		NSW: nsW,
		Defaults: docDefaultsXML{
			Run: rPrDefaultXML{Props: runPropsXML{
				Fonts:  fontProps(s.BodyFont),
				Size:   bodySize,
				SizeCS: bodySizeCS,
			}},
			Paragraph: pPrDefaultXML{Props: paragraphPropsXML{
				Spacing: &spacingXML{After: "200"},
			}},
		},
	}

	out.Styles = append(out.Styles, styleXML{
		Type:    "paragraph",
		Default: "1",
		ID:      StyleNormal,
		Name:    valXML{Val: "Normal"},
		QFormat: &onXML{},
	})

	titleSize, titleSizeCS := sizeProps(26)
	out.Styles = append(out.Styles, styleXML{
		Type:       "paragraph",
		ID:         StyleTitle,
		Name:       valXML{Val: "Title"},
		BasedOn:    &valXML{Val: StyleNormal},
		Next:       &valXML{Val: StyleNormal},
		UIPriority: &valXML{Val: "10"},
		QFormat:    &onXML{},
		Paragraph:  &paragraphPropsXML{Spacing: &spacingXML{After: "300"}, Contextual: &onXML{}},
		Run: &runPropsXML{
			Fonts:  fontProps(s.HeadingFont),
			Color:  colorProp(s.TitleColor),
			Size:   titleSize,
			SizeCS: titleSizeCS,
		},
	})

	for i, size := range headingSizes {
		level := i + 1
		sz, szCS := sizeProps(size)
		run := &runPropsXML{
			Fonts:  fontProps(s.HeadingFont),
			Bold:   &onXML{},
			Color:  colorProp(s.HeadingColor),
			Size:   sz,
			SizeCS: szCS,
		}
		if level >= 4 {
			run.Italic = &onXML{}
		}
		before := "480"
		if level > 1 {
			before = "200"
		}
		out.Styles = append(out.Styles, styleXML{
			Type:       "paragraph",
			ID:         HeadingStyle(level),
			Name:       valXML{Val: "heading " + strconv.Itoa(level)},
			BasedOn:    &valXML{Val: StyleNormal},
			Next:       &valXML{Val: StyleNormal},
			UIPriority: &valXML{Val: "9"},
			QFormat:    &onXML{},
			Paragraph: &paragraphPropsXML{
				KeepNext:   &onXML{},
				Spacing:    &spacingXML{Before: before, After: "0"},
				OutlineLvl: &valXML{Val: strconv.Itoa(level - 1)},
			},
			Run: run,
		})
	}

	for _, list := range []struct{ id, name string }{
		{StyleListBullet, "List Bullet"},
		{StyleListNumber, "List Number"},
	} {
		out.Styles = append(out.Styles, styleXML{
			Type:       "paragraph",
			ID:         list.id,
			Name:       valXML{Val: list.name},
			BasedOn:    &valXML{Val: StyleNormal},
			UIPriority: &valXML{Val: "99"},
			Paragraph:  &paragraphPropsXML{Contextual: &onXML{}},
		})
	}

	out.Styles = append(out.Styles, styleXML{
		Type:       "paragraph",
		ID:         StyleQuote,
		Name:       valXML{Val: "Quote"},
		BasedOn:    &valXML{Val: StyleNormal},
		Next:       &valXML{Val: StyleNormal},
		UIPriority: &valXML{Val: "29"},
		QFormat:    &onXML{},
		Paragraph:  &paragraphPropsXML{Indent: &indentXML{Left: strconv.Itoa(Inch(0.5).twips())}},
		Run:        &runPropsXML{Italic: &onXML{}, Color: colorProp(s.QuoteColor)},
	})

	out.Styles = append(out.Styles, styleXML{
		Type:       "table",
		ID:         StyleTableGrid,
		Name:       valXML{Val: "Table Grid"},
		UIPriority: &valXML{Val: "59"},
		Paragraph:  &paragraphPropsXML{Spacing: &spacingXML{After: "0"}},
	})

	out.Styles = append(out.Styles, styleXML{
		Type:       "character",
		ID:         styleHyperlink,
		Name:       valXML{Val: "Hyperlink"},
		UIPriority: &valXML{Val: "99"},
		Run: &runPropsXML{
			Color:     colorProp(s.LinkColor),
			Underline: &valXML{Val: "single"},
		},
	})

	return out
}
