// Package render assembles a word-processing document from scanned blocks.
//
// The Renderer maps each pipeline.Block to docx calls: headings and
// paragraphs carry inline formatting, list items attach to numbering
// instances, fenced code becomes one highlighted paragraph, and the two
// replacement blocks expand into the tables described by the content
// assets. The references section is appended last.
package render

import (
	"context"
	"strings"

	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

// Stats counts what was written to the document.
type Stats struct {
	Headings     int
	Paragraphs   int
	ListItems    int
	CodeBlocks   int
	Tables       int
	Replacements int
	References   int
}

// Renderer turns blocks into a docx.Document.
type Renderer struct {
	theme   *Theme
	content *Content
	inline  *pipeline.InlineParser
	code    *pipeline.Highlighter
}

// New returns a renderer for theme and content.
func New(theme *Theme, content *Content) *Renderer {
	return &Renderer{
		theme:   theme,
		content: content,
		inline:  pipeline.NewInlineParser(),
		code:    pipeline.NewHighlighter(theme.codeStyle()),
	}
}

// Render writes blocks into doc and returns what it wrote.
func (r *Renderer) Render(ctx context.Context, doc *docx.Document, blocks []pipeline.Block) (Stats, error) {
	w := &writer{Renderer: r, doc: doc}
	for i, b := range blocks {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return w.stats, err
			}
		}
		w.block(b)
	}
	return w.stats, nil
}

// AppendReferences writes the references section at the end of doc.
func (r *Renderer) AppendReferences(doc *docx.Document) Stats {
	w := &writer{Renderer: r, doc: doc}
	w.references(r.content.References)
	return w.stats
}

const ctxCheckInterval = 64

// writer carries per-document state.
type writer struct {
	*Renderer
	doc   *docx.Document
	stats Stats

	numID int // current numbered list, zero when none is open
}

func (w *writer) block(b pipeline.Block) {
	if b.Kind != pipeline.KindNumbered {
		w.numID = 0
	}

	switch b.Kind {
	case pipeline.KindHeading:
		p := w.doc.AddHeading("", b.Level)
		if b.Level == 0 {
			p.Align = docx.AlignCenter
		}
		w.spans(p, w.inline.Parse(b.Text))
		w.stats.Headings++

	case pipeline.KindParagraph:
		w.spans(w.doc.AddParagraph(""), w.inline.Parse(b.Text))
		w.stats.Paragraphs++

	case pipeline.KindQuote:
		w.spans(w.doc.AddParagraph(docx.StyleQuote), w.inline.Parse(b.Text))
		w.stats.Paragraphs++

	case pipeline.KindBullet:
		p := w.doc.AddParagraph(docx.StyleListBullet)
		p.Numbering = &docx.Numbering{ID: w.doc.BulletList(), Level: b.Level}
		w.spans(p, w.inline.Parse(b.Text))
		w.stats.ListItems++

	case pipeline.KindNumbered:
		if w.numID == 0 {
			w.numID = w.doc.NewNumberedList(b.Number)
		}
		p := w.doc.AddParagraph(docx.StyleListNumber)
		p.Numbering = &docx.Numbering{ID: w.numID, Level: b.Level}
		w.spans(p, w.inline.Parse(b.Text))
		w.stats.ListItems++

	case pipeline.KindCode:
		w.codeBlock(b.Lang, b.Text)
		w.stats.CodeBlocks++

	case pipeline.KindRule:
		p := w.doc.AddParagraph("")
		p.Align = docx.AlignCenter
		p.AddRun(strings.Repeat(w.theme.Rule.Char, w.theme.Rule.Width))

	case pipeline.KindMeta:
		p := w.doc.AddParagraph("")
		if b.Label != "" {
			p.AddRun(b.Label).Bold = true
		}
		p.AddRun(b.Text)
		w.stats.Paragraphs++

	case pipeline.KindDiagram:
		w.diagram(w.content.Diagram)
		w.stats.Tables++
		w.stats.Replacements++

	case pipeline.KindTechTable:
		w.techStack(w.content.TechStack)
		w.stats.Tables++
		w.stats.Replacements++
	}
}

// spans appends formatted runs to p. Links to web or mail targets become
// hyperlinks; other destinations keep the link look without a target.
func (w *writer) spans(p *docx.Paragraph, spans []pipeline.Span) {
	for _, s := range spans {
		var run *docx.Run
		if s.Link != "" && fileutil.IsLinkTarget(s.Link) {
			run = w.hyperlink(p, s.Link).AddRun(s.Text)
		} else {
			run = p.AddRun(s.Text)
		}
		if s.Link != "" {
			run.Color = w.theme.Link.Color
			run.Underline = true
		}
		run.Bold = s.Bold
		run.Italic = s.Italic
		run.Strike = s.Strike
		if s.Code {
			run.Font = w.theme.Code.Font
			run.Size = docx.Pt(w.theme.Code.InlineSize)
		}
	}
}

// hyperlink reuses the trailing hyperlink of p when it targets the same URL.
func (w *writer) hyperlink(p *docx.Paragraph, url string) *docx.Hyperlink {
	if n := len(p.Content); n > 0 {
		if h, ok := p.Content[n-1].(*docx.Hyperlink); ok && h.URL == url {
			return h
		}
	}
	return p.AddHyperlink(url)
}

func (w *writer) codeBlock(lang, code string) {
	p := w.doc.AddParagraph("")
	p.IndentLeft = docx.Inch(w.theme.Code.Indent)
	p.SpaceBefore = docx.Pt(w.theme.Code.Spacing)
	p.SpaceAfter = docx.Pt(w.theme.Code.Spacing)

	for _, tok := range w.code.Highlight(lang, code) {
		run := p.AddRun(tok.Text)
		run.Font = w.theme.Code.Font
		run.Size = docx.Pt(w.theme.Code.BlockSize)
		run.Color = tok.Color
		run.Bold = tok.Bold
		run.Italic = tok.Italic
	}
}
