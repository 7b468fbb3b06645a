package render

import "github.com/alnah/go-md2docx/internal/docx"

// techStack writes the technology table: a styled header row followed by
// one row per entry, even data rows striped.
func (w *writer) techStack(t *TechStack) {
	cols := len(t.Header.Cells)
	table := w.doc.AddTable(len(t.Rows)+1, cols)
	table.Style = docx.StyleTableGrid
	table.Align = docx.AlignCenter
	for i, width := range t.Widths {
		table.Widths[i] = docx.Inch(width)
	}

	for c, text := range t.Header.Cells {
		cell := table.Cell(0, c)
		cell.Shading = t.Header.Shading
		p := cell.SetText(text)
		p.Align = docx.AlignCenter
		run := p.Runs()[0]
		run.Bold = true
		run.Size = docx.Pt(t.Header.Size)
		run.Color = t.Header.Color
	}

	for i, row := range t.Rows {
		r := i + 1
		for c, text := range row {
			cell := table.Cell(r, c)
			cell.SetText(text)
			if r%2 == 0 {
				cell.Shading = t.Stripe
			}
		}
	}

	table.SetBorder(docx.Border{Color: t.Border.Color, Size: t.Border.Size})
	w.doc.AddParagraph("")
}
