package render

import (
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
)

// references writes the bibliography on a new page. Every numbered section
// starts its own count at 1.
func (w *writer) references(refs *References) {
	if refs == nil || len(refs.Sections) == 0 {
		return
	}

	w.doc.AddPageBreak()
	w.doc.AddHeading(refs.Title, 1)
	w.stats.Headings++

	for _, sec := range refs.Sections {
		w.doc.AddHeading(sec.Title, 2)
		w.stats.Headings++

		numID := 0
		if sec.Kind != KindStatistic {
			numID = w.doc.NewNumberedList(1)
		}

		for _, e := range sec.Entries {
			var p *docx.Paragraph
			if sec.Kind == KindStatistic {
				p = w.doc.AddParagraph(docx.StyleListBullet)
				p.Numbering = &docx.Numbering{ID: w.doc.BulletList()}
			} else {
				p = w.doc.AddParagraph(docx.StyleListNumber)
				p.Numbering = &docx.Numbering{ID: numID}
			}
			w.entry(p, sec.Kind, e)
			w.stats.References++
		}
	}
}

func (w *writer) entry(p *docx.Paragraph, kind string, e RefEntry) {
	switch kind {
	case KindStatistic:
		p.AddRun(e.Text)
		return
	case KindPaper:
		p.AddRun(e.Authors + ". ")
		p.AddRun(`"` + e.Title + `." `)
		if e.Venue != "" {
			p.AddRun(e.Venue + ".").Italic = true
		}
	case KindReport:
		p.AddRun(e.Org + ". ").Bold = true
		p.AddRun(`"` + e.Title + `."`)
	default:
		p.AddRun(e.Title).Bold = true
	}
	p.AddRun("\n")
	w.url(p, e.URL)
}

// url appends a clickable address, or plain text for non-web targets.
func (w *writer) url(p *docx.Paragraph, url string) {
	if !fileutil.IsLinkTarget(url) {
		p.AddRun(url)
		return
	}
	run := p.AddHyperlink(url).AddRun(url)
	run.Color = w.theme.Link.Color
	run.Underline = true
}
