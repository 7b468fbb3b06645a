package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Abstract numbering definitions and the fixed bullet instance.
const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
	bulletNumID       = 1
)

// bulletGlyphs cycle through list levels.
var bulletGlyphs = []string{"•", "◦", "▪"}

// numbering tracks numbered-list instances. ID 1 is reserved for bullets.
type numbering struct {
	starts []int // start value per decimal instance, numId = index + 2
}

func (n *numbering) addDecimal(start int) int {
	if start < 1 {
		start = 1
	}
	n.starts = append(n.starts, start)
	return len(n.starts) + 1
}

// numberingXML represents word/numbering.xml (<w:numbering>).
type numberingXML struct {
	XMLName  xml.Name         `xml:"w:numbering"`
	NSW      string           `xml:"xmlns:w,attr"`
	Abstract []abstractNumXML `xml:"w:abstractNum"`
	Nums     []numXML         `xml:"w:num"`
}

type abstractNumXML struct {
	ID        int      `xml:"w:abstractNumId,attr"`
	MultiType valXML   `xml:"w:multiLevelType"`
	Levels    []lvlXML `xml:"w:lvl"`
}

type lvlXML struct {
	Level  int               `xml:"w:ilvl,attr"`
	Start  valXML            `xml:"w:start"`
	Format valXML            `xml:"w:numFmt"`
	Text   valXML            `xml:"w:lvlText"`
	Jc     valXML            `xml:"w:lvlJc"`
	Props  paragraphPropsXML `xml:"w:pPr"`
}

type numXML struct {
	ID       int             `xml:"w:numId,attr"`
	Abstract valXML          `xml:"w:abstractNumId"`
	Override *lvlOverrideXML `xml:"w:lvlOverride,omitempty"`
}

type lvlOverrideXML struct {
	Level int    `xml:"w:ilvl,attr"`
	Start valXML `xml:"w:startOverride"`
}

// listIndent returns the hanging indent for a list level.
func listIndent(level int) *indentXML {
	return &indentXML{
		Left:    strconv.Itoa(720 + level*360),
		Hanging: "360",
	}
}

func (n *numbering) toXML() numberingXML {
	bullet := abstractNumXML{ID: bulletAbstractID, MultiType: valXML{Val: "hybridMultilevel"}}
	decimal := abstractNumXML{ID: decimalAbstractID, MultiType: valXML{Val: "hybridMultilevel"}}

	for lvl := 0; lvl <= MaxListLevel; lvl++ {
		glyph := bulletGlyphs[lvl%len(bulletGlyphs)]
		bullet.Levels = append(bullet.Levels, lvlXML{
			Level:  lvl,
			Start:  valXML{Val: "1"},
			Format: valXML{Val: "bullet"},
			Text:   valXML{Val: glyph},
			Jc:     valXML{Val: "left"},
			Props:  paragraphPropsXML{Indent: listIndent(lvl)},
		})
		decimal.Levels = append(decimal.Levels, lvlXML{
			Level:  lvl,
			Start:  valXML{Val: "1"},
			Format: valXML{Val: "decimal"},
			Text:   valXML{Val: fmt.Sprintf("%%%d.", lvl+1)},
			Jc:     valXML{Val: "left"},
			Props:  paragraphPropsXML{Indent: listIndent(lvl)},
		})
	}

	out := numberingXML{
		NSW:      nsW,
		Abstract: []abstractNumXML{bullet, decimal},
		Nums: []numXML{{
			ID:       bulletNumID,
			Abstract: valXML{Val: strconv.Itoa(bulletAbstractID)},
		}},
	}
	for i, start := range n.starts {
		out.Nums = append(out.Nums, numXML{
			ID:       i + 2,
			Abstract: valXML{Val: strconv.Itoa(decimalAbstractID)},
			Override: &lvlOverrideXML{Level: 0, Start: valXML{Val: strconv.Itoa(start)}},
		})
	}
	return out
}
