package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/docx"
	"github.com/alnah/go-md2docx/internal/pipeline"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	loader := assets.NewEmbeddedLoader()
	theme, err := LoadTheme(loader, "")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	content, err := LoadContent(loader)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	return New(theme, content)
}

func render(t *testing.T, blocks ...pipeline.Block) (*docx.Document, Stats) {
	t.Helper()
	doc := docx.New()
	stats, err := newTestRenderer(t).Render(context.Background(), doc, blocks)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return doc, stats
}

func paragraphs(t *testing.T, doc *docx.Document) []*docx.Paragraph {
	t.Helper()
	var ps []*docx.Paragraph
	for _, b := range doc.Body() {
		if p, ok := b.(*docx.Paragraph); ok {
			ps = append(ps, p)
		}
	}
	return ps
}

func tables(doc *docx.Document) []*docx.Table {
	var ts []*docx.Table
	for _, b := range doc.Body() {
		if tbl, ok := b.(*docx.Table); ok {
			ts = append(ts, tbl)
		}
	}
	return ts
}

// ---------------------------------------------------------------------------
// Text blocks
// ---------------------------------------------------------------------------

func TestRender_Headings(t *testing.T) {
	t.Parallel()

	doc, stats := render(t,
		pipeline.Block{Kind: pipeline.KindHeading, Level: 0, Text: "Title"},
		pipeline.Block{Kind: pipeline.KindHeading, Level: 2, Text: "Using `code`"},
	)

	ps := paragraphs(t, doc)
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}
	if ps[0].Style != docx.StyleTitle || ps[0].Align != docx.AlignCenter || ps[0].Text() != "Title" {
		t.Errorf("title = %+v", ps[0])
	}
	if ps[1].Style != "Heading2" || ps[1].Align != docx.AlignDefault {
		t.Errorf("heading style = %q align = %q", ps[1].Style, ps[1].Align)
	}
	runs := ps[1].Runs()
	if len(runs) != 2 || runs[1].Text != "code" || runs[1].Font != "Consolas" || runs[1].Size != 10 {
		t.Errorf("inline code in heading not formatted: %+v", runs)
	}
	if stats.Headings != 2 {
		t.Errorf("Headings = %d, want 2", stats.Headings)
	}
}

func TestRender_ParagraphInline(t *testing.T) {
	t.Parallel()

	doc, stats := render(t, pipeline.Block{
		Kind: pipeline.KindParagraph,
		Text: "A **bold** [link](https://example.com) and [local](./file.md) ~~gone~~",
	})

	ps := paragraphs(t, doc)
	if len(ps) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(ps))
	}
	p := ps[0]
	if p.Text() != "A bold link and local gone" {
		t.Errorf("Text() = %q", p.Text())
	}

	var links []*docx.Hyperlink
	for _, in := range p.Content {
		if h, ok := in.(*docx.Hyperlink); ok {
			links = append(links, h)
		}
	}
	if len(links) != 1 || links[0].URL != "https://example.com" {
		t.Fatalf("expected one external hyperlink, got %+v", links)
	}
	if r := links[0].Runs[0]; r.Color != "3B82F6" || !r.Underline {
		t.Errorf("hyperlink run not styled: %+v", r)
	}

	for _, r := range p.Runs() {
		switch r.Text {
		case "bold":
			if !r.Bold {
				t.Error("expected bold run")
			}
		case "local":
			if !r.Underline || r.Color != "3B82F6" {
				t.Errorf("relative link should keep link styling: %+v", r)
			}
		case "gone":
			if !r.Strike {
				t.Error("expected strikethrough run")
			}
		}
	}
	if stats.Paragraphs != 1 {
		t.Errorf("Paragraphs = %d, want 1", stats.Paragraphs)
	}
}

func TestRender_MetaRuleQuote(t *testing.T) {
	t.Parallel()

	doc, _ := render(t,
		pipeline.Block{Kind: pipeline.KindMeta, Label: "Author:", Text: " Jane"},
		pipeline.Block{Kind: pipeline.KindMeta, Text: "***odd:** line"},
		pipeline.Block{Kind: pipeline.KindRule},
		pipeline.Block{Kind: pipeline.KindQuote, Text: "*wise* words"},
	)

	ps := paragraphs(t, doc)
	if len(ps) != 4 {
		t.Fatalf("expected 4 paragraphs, got %d", len(ps))
	}

	meta := ps[0].Runs()
	if len(meta) != 2 || meta[0].Text != "Author:" || !meta[0].Bold || meta[1].Text != " Jane" || meta[1].Bold {
		t.Errorf("meta runs = %+v", meta)
	}
	if runs := ps[1].Runs(); len(runs) != 1 || runs[0].Bold {
		t.Errorf("unmatched meta should be one plain run: %+v", runs)
	}

	if ps[2].Align != docx.AlignCenter || ps[2].Text() != strings.Repeat("─", 50) {
		t.Errorf("rule = %q align %q", ps[2].Text(), ps[2].Align)
	}

	if ps[3].Style != docx.StyleQuote || ps[3].Text() != "wise words" {
		t.Errorf("quote = %q style %q", ps[3].Text(), ps[3].Style)
	}
}

// ---------------------------------------------------------------------------
// Lists
// ---------------------------------------------------------------------------

func TestRender_Lists(t *testing.T) {
	t.Parallel()

	doc, stats := render(t,
		pipeline.Block{Kind: pipeline.KindNumbered, Number: 3, Text: "three"},
		pipeline.Block{Kind: pipeline.KindNumbered, Number: 4, Text: "four"},
		pipeline.Block{Kind: pipeline.KindNumbered, Level: 1, Number: 1, Text: "nested"},
		pipeline.Block{Kind: pipeline.KindParagraph, Text: "break"},
		pipeline.Block{Kind: pipeline.KindNumbered, Number: 1, Text: "again"},
		pipeline.Block{Kind: pipeline.KindBullet, Level: 2, Text: "bullet"},
	)

	ps := paragraphs(t, doc)
	if len(ps) != 6 {
		t.Fatalf("expected 6 paragraphs, got %d", len(ps))
	}

	first, second, nested, restarted, bullet := ps[0], ps[1], ps[2], ps[4], ps[5]
	if first.Style != docx.StyleListNumber || first.Numbering == nil {
		t.Fatalf("first item not numbered: %+v", first)
	}
	if second.Numbering.ID != first.Numbering.ID || nested.Numbering.ID != first.Numbering.ID {
		t.Error("contiguous items should share one numbering instance")
	}
	if nested.Numbering.Level != 1 {
		t.Errorf("nested level = %d, want 1", nested.Numbering.Level)
	}
	if restarted.Numbering.ID == first.Numbering.ID {
		t.Error("list after a paragraph should restart numbering")
	}
	if bullet.Style != docx.StyleListBullet || bullet.Numbering.ID != doc.BulletList() || bullet.Numbering.Level != 2 {
		t.Errorf("bullet = %+v numbering %+v", bullet, bullet.Numbering)
	}
	if stats.ListItems != 5 {
		t.Errorf("ListItems = %d, want 5", stats.ListItems)
	}

	data, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected package bytes")
	}
}

// ---------------------------------------------------------------------------
// Code
// ---------------------------------------------------------------------------

func TestRender_CodeBlock(t *testing.T) {
	t.Parallel()

	code := "func main() {\n\tfmt.Println(\"hi\")\n}"
	doc, stats := render(t,
		pipeline.Block{Kind: pipeline.KindCode, Lang: "go", Text: code},
		pipeline.Block{Kind: pipeline.KindCode, Text: "plain text"},
	)

	ps := paragraphs(t, doc)
	if len(ps) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(ps))
	}

	p := ps[0]
	if p.IndentLeft != 0.25 || p.SpaceBefore != 6 || p.SpaceAfter != 6 {
		t.Errorf("code paragraph layout: indent=%v before=%v after=%v", p.IndentLeft, p.SpaceBefore, p.SpaceAfter)
	}
	if p.Text() != code {
		t.Errorf("code text = %q, want %q", p.Text(), code)
	}
	runs := p.Runs()
	if len(runs) < 2 {
		t.Errorf("expected highlighted runs, got %d", len(runs))
	}
	for _, r := range runs {
		if r.Font != "Consolas" || r.Size != 9 {
			t.Errorf("code run font=%q size=%v", r.Font, r.Size)
		}
	}

	plain := ps[1].Runs()
	if len(plain) != 1 || plain[0].Color != "" {
		t.Errorf("untagged code should be one uncoloured run: %+v", plain)
	}
	if stats.CodeBlocks != 2 {
		t.Errorf("CodeBlocks = %d, want 2", stats.CodeBlocks)
	}
}

// ---------------------------------------------------------------------------
// Replacements
// ---------------------------------------------------------------------------

func TestRender_Diagram(t *testing.T) {
	t.Parallel()

	doc, stats := render(t, pipeline.Block{Kind: pipeline.KindDiagram})

	body := doc.Body()
	if len(body) != 3 {
		t.Fatalf("expected paragraph, table, paragraph; got %d blocks", len(body))
	}
	outer, ok := body[1].(*docx.Table)
	if !ok {
		t.Fatalf("expected table, got %T", body[1])
	}
	if outer.Align != docx.AlignCenter || len(outer.Rows) != 2 || len(outer.Rows[0].Cells) != 1 {
		t.Fatalf("outer table shape wrong: %+v", outer)
	}

	header := outer.Cell(0, 0)
	hp := header.Paragraphs()[0]
	if header.Shading != "E8E8E8" || hp.Align != docx.AlignCenter || hp.Text() != "Browser" {
		t.Errorf("header cell = %+v", header)
	}
	if r := hp.Runs()[0]; !r.Bold || r.Size != 14 {
		t.Errorf("header run = %+v", r)
	}
	if header.Border == nil || header.Border.Color != "000000" || header.Border.Size != 4 {
		t.Errorf("header border = %+v", header.Border)
	}

	inner, ok := outer.Cell(1, 0).Blocks[0].(*docx.Table)
	if !ok {
		t.Fatalf("expected nested table, got %T", outer.Cell(1, 0).Blocks[0])
	}
	wantWidths := []docx.Inch{2.0, 0.5, 3.0}
	for i, w := range wantWidths {
		if inner.Widths[i] != w {
			t.Errorf("width[%d] = %v, want %v", i, inner.Widths[i], w)
		}
	}

	sidebar := inner.Cell(0, 0).Paragraphs()[0]
	if !strings.HasPrefix(sidebar.Text(), "Sidebar\n\nCategory A\n  • API 1") {
		t.Errorf("sidebar text = %q", sidebar.Text())
	}
	if sidebar.Align != docx.AlignLeft || inner.Cell(0, 0).Shading != "F5F5F5" {
		t.Errorf("sidebar align=%q shading=%q", sidebar.Align, inner.Cell(0, 0).Shading)
	}

	arrow := inner.Cell(0, 1).Paragraphs()[0]
	if arrow.Text() != "→" || arrow.Align != docx.AlignCenter {
		t.Errorf("arrow = %q align %q", arrow.Text(), arrow.Align)
	}
	if r := arrow.Runs()[0]; !r.Bold || r.Size != 18 {
		t.Errorf("arrow run = %+v", r)
	}

	viewer := inner.Cell(0, 2).Paragraphs()[0]
	if !strings.HasSuffix(viewer.Text(), "• Code Samples") {
		t.Errorf("viewer text = %q", viewer.Text())
	}
	if inner.Cell(0, 2).Border == nil {
		t.Error("nested cells should have borders")
	}

	if stats.Tables != 1 || stats.Replacements != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRender_TechStack(t *testing.T) {
	t.Parallel()

	doc, stats := render(t, pipeline.Block{Kind: pipeline.KindTechTable})

	ts := tables(doc)
	if len(ts) != 1 {
		t.Fatalf("expected 1 table, got %d", len(ts))
	}
	tbl := ts[0]
	if len(tbl.Rows) != 7 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("table shape = %dx%d, want 7x2", len(tbl.Rows), len(tbl.Rows[0].Cells))
	}
	if tbl.Widths[0] != 2.0 || tbl.Widths[1] != 3.5 {
		t.Errorf("widths = %v", tbl.Widths)
	}

	for c, want := range []string{"Technology", "Purpose"} {
		cell := tbl.Cell(0, c)
		p := cell.Paragraphs()[0]
		r := p.Runs()[0]
		if p.Text() != want || cell.Shading != "3B82F6" || p.Align != docx.AlignCenter {
			t.Errorf("header %d = %q shading %q", c, p.Text(), cell.Shading)
		}
		if !r.Bold || r.Size != 11 || r.Color != "FFFFFF" {
			t.Errorf("header run %d = %+v", c, r)
		}
	}

	if got := tbl.Cell(1, 0).Paragraphs()[0].Text(); got != "React 18" {
		t.Errorf("first row = %q", got)
	}
	for r := 1; r < len(tbl.Rows); r++ {
		want := ""
		if r%2 == 0 {
			want = "F3F4F6"
		}
		if got := tbl.Cell(r, 1).Shading; got != want {
			t.Errorf("row %d shading = %q, want %q", r, got, want)
		}
	}
	if stats.Replacements != 1 {
		t.Errorf("Replacements = %d, want 1", stats.Replacements)
	}
}

// ---------------------------------------------------------------------------
// References
// ---------------------------------------------------------------------------

func TestAppendReferences(t *testing.T) {
	t.Parallel()

	doc := docx.New()
	stats := newTestRenderer(t).AppendReferences(doc)

	ps := paragraphs(t, doc)
	if len(ps) < 3 {
		t.Fatalf("expected references content, got %d paragraphs", len(ps))
	}
	if ps[0].Text() != "" || len(ps[0].Content) != 1 {
		t.Error("references should start with a page break")
	}
	if ps[1].Style != "Heading1" || ps[1].Text() != "References" {
		t.Errorf("heading = %q style %q", ps[1].Text(), ps[1].Style)
	}
	if ps[2].Style != "Heading2" || ps[2].Text() != "Official Documentation & Specifications" {
		t.Errorf("first section = %q", ps[2].Text())
	}

	doc1 := ps[3]
	runs := doc1.Runs()
	if runs[0].Text != "OpenAPI Specification v3.2.0" || !runs[0].Bold {
		t.Errorf("documentation entry title run = %+v", runs[0])
	}
	if !strings.Contains(doc1.Text(), "\nhttps://spec.openapis.org/oas/v3.2.0.html") {
		t.Errorf("documentation entry text = %q", doc1.Text())
	}
	if _, ok := doc1.Content[len(doc1.Content)-1].(*docx.Hyperlink); !ok {
		t.Error("entry URL should be a hyperlink")
	}

	numIDs := map[int]bool{}
	var paper, report, statistic *docx.Paragraph
	for _, p := range ps {
		if p.Numbering == nil {
			continue
		}
		if p.Style == docx.StyleListNumber {
			numIDs[p.Numbering.ID] = true
		}
		text := p.Text()
		switch {
		case paper == nil && strings.HasPrefix(text, "Meng, M."):
			paper = p
		case report == nil && strings.HasPrefix(text, "SmartBear. "):
			report = p
		case statistic == nil && strings.HasPrefix(text, "64%"):
			statistic = p
		}
	}
	if len(numIDs) != 3 {
		t.Errorf("expected 3 numbering instances (one per numbered section), got %d", len(numIDs))
	}

	if paper == nil {
		t.Fatal("paper entry not found")
	}
	if !strings.HasPrefix(paper.Text(), `Meng, M., Steinhardt, S., & Schubert, A. (2019). "How Developers Use API Documentation: An Observation Study." Communication Design Quarterly`) {
		t.Errorf("paper text = %q", paper.Text())
	}
	if venue := paper.Runs()[2]; !venue.Italic || !strings.HasSuffix(venue.Text, ".") {
		t.Errorf("venue run = %+v", venue)
	}

	if report == nil || !report.Runs()[0].Bold {
		t.Errorf("report entry = %+v", report)
	}

	if statistic == nil || statistic.Style != docx.StyleListBullet || statistic.Numbering.ID != doc.BulletList() {
		t.Errorf("statistic entry = %+v", statistic)
	}

	if stats.References != 27 {
		t.Errorf("References = %d, want 27", stats.References)
	}
	if stats.Headings != 5 {
		t.Errorf("Headings = %d, want 5", stats.Headings)
	}
}

func TestAppendReferences_Empty(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	r.content = &Content{Diagram: r.content.Diagram, TechStack: r.content.TechStack, References: &References{}}

	doc := docx.New()
	r.AppendReferences(doc)
	if len(doc.Body()) != 0 {
		t.Errorf("expected empty body, got %d blocks", len(doc.Body()))
	}
}

func TestRender_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRenderer(t).Render(ctx, docx.New(), []pipeline.Block{{Kind: pipeline.KindParagraph, Text: "x"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
