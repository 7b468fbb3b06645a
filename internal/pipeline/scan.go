package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies the type of a scanned block.
type Kind int

// Block kinds.
const (
	KindParagraph Kind = iota
	KindHeading
	KindBullet
	KindNumbered
	KindQuote
	KindCode
	KindRule
	KindMeta
	KindDiagram
	KindTechTable
)

var kindNames = [...]string{
	KindParagraph: "paragraph",
	KindHeading:   "heading",
	KindBullet:    "bullet",
	KindNumbered:  "numbered",
	KindQuote:     "quote",
	KindCode:      "code",
	KindRule:      "rule",
	KindMeta:      "meta",
	KindDiagram:   "diagram",
	KindTechTable: "techtable",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Block is one element of the article in document order.
//
// Field use depends on Kind:
//   - KindHeading: Text, Level (0 = title, 1..5 = Heading1..Heading5)
//   - KindBullet, KindNumbered: Text, Level (nesting), Number (numbered only)
//   - KindCode: Text (lines joined with "\n"), Lang
//   - KindMeta: Label (bold part, may be empty), Text
//   - KindParagraph, KindQuote: Text
type Block struct {
	Kind   Kind
	Text   string
	Level  int
	Number int
	Lang   string
	Label  string
	Line   int // 1-based source line where the block starts
}

// MetaKey returns the label of a metadata block without its trailing colon,
// e.g. "Author" for "**Author:** Jane".
func (b Block) MetaKey() string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(b.Label), ":"))
}

// Markers are the literal lines that trigger the fixed replacements.
type Markers struct {
	DiagramStart string
	DiagramEnd   string
	TechTable    string
}

const boxWidth = 53

// DefaultMarkers returns the box-drawing borders of the architecture
// diagram and the header row of the technology table.
func DefaultMarkers() Markers {
	bar := strings.Repeat("─", boxWidth)
	return Markers{
		DiagramStart: "┌" + bar + "┐",
		DiagramEnd:   "└" + bar + "┘",
		TechTable:    "| Technology | Purpose |",
	}
}

// maxListLevel matches the deepest numbering level a document supports.
const maxListLevel = 8

// maxListStart caps the start value of a numbered list.
const maxListStart = 999_999_999

// ctxCheckInterval is how many lines are scanned between cancellation checks.
const ctxCheckInterval = 256

var (
	metaLine     = regexp.MustCompile(`^\*\*([^*]+)\*\*(.*)$`)
	numberedItem = regexp.MustCompile(`^(\d+)\.\s(.*)$`)
)

// headingPrefixes maps ATX prefixes to heading levels, longest first.
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"###### ", 5},
	{"##### ", 4},
	{"#### ", 3},
	{"### ", 2},
	{"## ", 1},
	{"# ", 0},
}

// Scanner splits an article body into blocks line by line.
type Scanner struct {
	markers Markers
}

// NewScanner returns a scanner using the given replacement markers.
// Empty markers fall back to DefaultMarkers.
func NewScanner(m Markers) *Scanner {
	def := DefaultMarkers()
	if m.DiagramStart == "" {
		m.DiagramStart = def.DiagramStart
	}
	if m.DiagramEnd == "" {
		m.DiagramEnd = def.DiagramEnd
	}
	if m.TechTable == "" {
		m.TechTable = def.TechTable
	}
	return &Scanner{markers: m}
}

// fence tracks an open code fence.
type fence struct {
	open  bool
	lang  string
	line  int
	lines []string
}

func (f *fence) start(lang string, line int) {
	*f = fence{open: true, lang: lang, line: line}
}

// flush closes the fence and returns its code block, if it collected any lines.
func (f *fence) flush() (Block, bool) {
	defer func() { *f = fence{} }()
	if !f.open || len(f.lines) == 0 {
		return Block{}, false
	}
	return Block{
		Kind: KindCode,
		Text: strings.Join(f.lines, "\n"),
		Lang: f.lang,
		Line: f.line,
	}, true
}

// Scan splits body into blocks. Replacement markers are honoured even inside
// an open code fence; the fence is closed first so collected lines survive.
func (s *Scanner) Scan(ctx context.Context, body string) ([]Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := strings.Split(body, "\n")
	var (
		blocks []Block
		code   fence
	)
	closeFence := func() {
		if b, ok := code.flush(); ok {
			blocks = append(blocks, b)
		}
	}

	for i, n := 0, 0; i < len(lines); n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := lines[i]
		lineNo := i + 1

		if strings.Contains(line, s.markers.DiagramStart) {
			closeFence()
			for i < len(lines) && !strings.Contains(lines[i], s.markers.DiagramEnd) {
				i++
			}
			i++
			if i < len(lines) && lines[i] == "```" {
				i++
			}
			blocks = append(blocks, Block{Kind: KindDiagram, Line: lineNo})
			continue
		}

		if strings.Contains(line, s.markers.TechTable) {
			closeFence()
			i++
			for i < len(lines) && isTableRow(lines[i]) {
				i++
			}
			blocks = append(blocks, Block{Kind: KindTechTable, Line: lineNo})
			continue
		}

		i++

		if strings.HasPrefix(line, "```") {
			if code.open {
				closeFence()
			} else {
				code.start(strings.TrimSpace(line[3:]), lineNo)
			}
			continue
		}

		if code.open {
			code.lines = append(code.lines, line)
			continue
		}

		if b, ok := scanLine(line); ok {
			b.Line = lineNo
			blocks = append(blocks, b)
		}
	}

	closeFence()
	return blocks, nil
}

// isTableRow reports whether line is a pipe-table row, allowing leading
// indentation and blockquote markers.
func isTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t>"), "|")
}

// scanLine classifies a single line outside of any fence.
// It reports false for blank lines.
func scanLine(line string) (Block, bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return Block{Kind: KindHeading, Level: h.level, Text: strings.TrimSpace(line[len(h.prefix):])}, true
		}
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Block{}, false
	}

	if trimmed == "---" {
		return Block{Kind: KindRule}, true
	}

	if strings.HasPrefix(line, "**") && strings.Contains(line, ":**") {
		if m := metaLine.FindStringSubmatch(line); m != nil {
			return Block{Kind: KindMeta, Label: m[1], Text: m[2]}, true
		}
		return Block{Kind: KindMeta, Text: line}, true
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return Block{Kind: KindBullet, Level: listLevel(line), Text: strings.TrimSpace(trimmed[2:])}, true
	}

	if m := numberedItem.FindStringSubmatch(trimmed); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxListStart {
			n = maxListStart
		}
		return Block{Kind: KindNumbered, Level: listLevel(line), Number: n, Text: strings.TrimSpace(m[2])}, true
	}

	if strings.HasPrefix(trimmed, "> ") {
		return Block{Kind: KindQuote, Text: strings.TrimSpace(trimmed[2:])}, true
	}

	return Block{Kind: KindParagraph, Text: trimmed}, true
}

// listLevel derives the nesting level from leading indentation:
// two columns per level, a tab counting as four columns.
func listLevel(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return min(width/2, maxListLevel)
		}
	}
	return min(width/2, maxListLevel)
}
