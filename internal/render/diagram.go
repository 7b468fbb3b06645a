package render

import (
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
)

// diagram writes the architecture diagram: a centered one-column table
// whose header cell holds the container title and whose body cell nests a
// single-row table with one cell per panel.
func (w *writer) diagram(d *Diagram) {
	w.doc.AddParagraph("")

	outer := w.doc.AddTable(2, 1)
	outer.Style = docx.StyleTableGrid
	outer.Align = docx.AlignCenter

	header := outer.Cell(0, 0)
	hp := header.SetText(d.Header.Text)
	hp.Align = docx.AlignCenter
	run := hp.Runs()[0]
	run.Bold = true
	run.Size = docx.Pt(d.Header.Size)
	header.Shading = d.Header.Shading

	inner := outer.Cell(1, 0).AddTable(1, len(d.Panels))
	inner.Style = docx.StyleTableGrid
	inner.Align = docx.AlignCenter
	for i, panel := range d.Panels {
		inner.Widths[i] = docx.Inch(panel.Width)

		cell := inner.Cell(0, i)
		cell.Shading = panel.Shading
		p := cell.SetText(strings.Join(panel.Lines, "\n"))
		p.Align = alignment(panel.Align)
		for _, r := range p.Runs() {
			r.Bold = panel.Bold
			r.Size = docx.Pt(panel.Size)
		}
	}

	border := docx.Border{Color: d.Border.Color, Size: d.Border.Size}
	outer.SetBorder(border)
	inner.SetBorder(border)

	w.doc.AddParagraph("")
}

func alignment(s string) docx.Alignment {
	switch s {
	case "left":
		return docx.AlignLeft
	case "center":
		return docx.AlignCenter
	case "right":
		return docx.AlignRight
	default:
		return docx.AlignDefault
	}
}
