package pipeline

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeStyle is the chroma style used when a theme names none.
const DefaultCodeStyle = "github"

// CodeToken is a piece of highlighted source with its colour.
type CodeToken struct {
	Text   string
	Color  string // hex RRGGBB, empty = inherit
	Bold   bool
	Italic bool
}

// Highlighter colours fenced code using a chroma style.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a highlighter for the named chroma style.
// Unknown names fall back to DefaultCodeStyle.
func NewHighlighter(styleName string) *Highlighter {
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		style = styles.Get(DefaultCodeStyle)
	}
	return &Highlighter{style: style}
}

// HasStyle reports whether name is a registered chroma style.
func HasStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}

// Highlight tokenises code for lang. Code in an unknown or empty language is
// returned as a single uncoloured token.
func (h *Highlighter) Highlight(lang, code string) []CodeToken {
	if code == "" {
		return nil
	}
	plain := []CodeToken{{Text: code}}

	if lang == "" {
		return plain
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return plain
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return plain
	}

	var out []CodeToken
	for _, tok := range it.Tokens() {
		out = appendToken(out, h.format(tok))
	}

	// Lexers append a newline the source may not have had.
	if !strings.HasSuffix(code, "\n") && len(out) > 0 {
		last := &out[len(out)-1]
		last.Text = strings.TrimSuffix(last.Text, "\n")
		if last.Text == "" {
			out = out[:len(out)-1]
		}
	}
	return out
}

func (h *Highlighter) format(tok chroma.Token) CodeToken {
	entry := h.style.Get(tok.Type)
	ct := CodeToken{
		Text:   tok.Value,
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		ct.Color = strings.ToUpper(strings.TrimPrefix(entry.Colour.String(), "#"))
	}
	return ct
}

// appendToken merges tok into the previous token when formatting matches.
func appendToken(out []CodeToken, tok CodeToken) []CodeToken {
	if tok.Text == "" {
		return out
	}
	if n := len(out); n > 0 {
		prev := &out[n-1]
		if prev.Color == tok.Color && prev.Bold == tok.Bold && prev.Italic == tok.Italic {
			prev.Text += tok.Text
			return out
		}
	}
	return append(out, tok)
}
