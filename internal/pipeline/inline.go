package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Span is a run of inline text sharing one set of formatting flags.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Strike bool
	Link   string // destination, empty when not a link
}

func (s Span) sameFormat(o Span) bool {
	return s.Bold == o.Bold && s.Italic == o.Italic && s.Code == o.Code &&
		s.Strike == o.Strike && s.Link == o.Link
}

// InlineParser splits single-line Markdown text into formatted spans.
type InlineParser struct {
	md goldmark.Markdown
}

// NewInlineParser creates a parser with strikethrough and bare-URL linking.
func NewInlineParser() *InlineParser {
	return &InlineParser{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		),
	}
}

// Parse returns the spans of s. Text that does not parse as a single
// paragraph (a lone list marker, an HTML block) becomes one plain span.
func (p *InlineParser) Parse(s string) []Span {
	if s == "" {
		return nil
	}

	src := []byte(s)
	doc := p.md.Parser().Parse(text.NewReader(src))
	para, ok := doc.FirstChild().(*ast.Paragraph)
	if !ok || doc.ChildCount() != 1 {
		return []Span{{Text: s}}
	}

	w := &spanWriter{src: src}
	w.walk(para, Span{})
	if len(w.spans) == 0 {
		return []Span{{Text: s}}
	}
	return w.spans
}

// PlainText returns the concatenated text of spans without formatting.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

type spanWriter struct {
	src   []byte
	spans []Span
}

// add appends text with the formatting of st, merging with the previous
// span when the formatting matches.
func (w *spanWriter) add(st Span, s string) {
	if s == "" {
		return
	}
	if n := len(w.spans); n > 0 && w.spans[n-1].sameFormat(st) {
		w.spans[n-1].Text += s
		return
	}
	st.Text = s
	w.spans = append(w.spans, st)
}

func (w *spanWriter) walk(n ast.Node, st Span) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			w.add(st, unescape(v.Segment.Value(w.src)))
			switch {
			case v.HardLineBreak():
				w.add(st, "\n")
			case v.SoftLineBreak():
				w.add(st, " ")
			}
		case *ast.String:
			w.add(st, string(v.Value))
		case *ast.CodeSpan:
			code := st
			code.Code = true
			w.add(code, w.literal(v))
		case *ast.Emphasis:
			em := st
			if v.Level >= 2 {
				em.Bold = true
			} else {
				em.Italic = true
			}
			w.walk(v, em)
		case *east.Strikethrough:
			del := st
			del.Strike = true
			w.walk(v, del)
		case *ast.Link:
			link := st
			link.Link = string(v.Destination)
			w.walk(v, link)
		case *ast.AutoLink:
			link := st
			link.Link = autoLinkURL(v, w.src)
			w.add(link, string(v.Label(w.src)))
		case *ast.Image:
			alt := st
			alt.Italic = true
			w.walk(v, alt)
		case *ast.RawHTML:
			for i := 0; i < v.Segments.Len(); i++ {
				seg := v.Segments.At(i)
				w.add(st, string(seg.Value(w.src)))
			}
		default:
			w.walk(c, st)
		}
	}
}

// literal returns the raw text of a code span.
func (w *spanWriter) literal(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(w.src))
		case *ast.String:
			b.Write(v.Value)
		}
	}
	return b.String()
}

func autoLinkURL(n *ast.AutoLink, src []byte) string {
	url := string(n.URL(src))
	if n.AutoLinkType == ast.AutoLinkEmail {
		if !strings.HasPrefix(strings.ToLower(url), "mailto:") {
			url = "mailto:" + url
		}
		return url
	}
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return url
}

func unescape(b []byte) string {
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}
