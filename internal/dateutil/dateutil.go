// Package dateutil expands "auto" placeholders in article date lines.
//
// A Date metadata line may read "auto" or "auto:LAYOUT". LAYOUT uses
// word-processor tokens (YYYY, MMMM, DD, dddd...) or a named preset;
// bracketed text is copied literally.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidDateFormat indicates a layout that cannot be expanded.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxLayoutLength bounds user-supplied layouts.
const MaxLayoutLength = 50

// DefaultLayout applies to a bare "auto".
const DefaultLayout = "YYYY-MM-DD"

const autoKeyword = "auto"

// tokens maps layout tokens to Go reference-time fragments.
// Longer tokens come first so matching is greedy.
var tokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named layouts usable as "auto:NAME".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"full":     "dddd, MMMM D, YYYY",
	"month":    "MMMM YYYY",
}

// segment is one piece of a parsed layout: a Go reference-time fragment
// or literal text copied as written.
type segment struct {
	goFmt   string
	literal string
}

// parseLayout splits a token layout into segments.
func parseLayout(layout string) ([]segment, error) {
	switch {
	case layout == "":
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDateFormat)
	case len(layout) > MaxLayoutLength:
		return nil, fmt.Errorf("%w: layout longer than %d characters", ErrInvalidDateFormat, MaxLayoutLength)
	}

	var (
		segs    []segment
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			segs = append(segs, segment{literal: literal.String()})
			literal.Reset()
		}
	}

	rest := layout
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(layout)-len(rest))
			}
			literal.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		if goFmt, n := matchToken(rest); n > 0 {
			flush()
			segs = append(segs, segment{goFmt: goFmt})
			rest = rest[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		literal.WriteString(rest[:size])
		rest = rest[size:]
	}
	flush()
	return segs, nil
}

// matchToken returns the Go fragment for a token at the start of s and the
// number of bytes it spans, or 0 when s starts with no token.
func matchToken(s string) (string, int) {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.token) {
			return t.goFmt, len(t.token)
		}
	}
	return "", 0
}

// Format renders t with a token layout. Only tokens are formatted; all
// other text, bracketed or not, is copied unchanged.
func Format(layout string, t time.Time) (string, error) {
	segs, err := parseLayout(layout)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range segs {
		if s.goFmt != "" {
			b.WriteString(t.Format(s.goFmt))
			continue
		}
		b.WriteString(s.literal)
	}
	return b.String(), nil
}

// IsAuto reports whether value asks for the conversion date: exactly
// "auto" or "auto:LAYOUT", ignoring case and surrounding space. Free text
// that merely starts with "auto" is not a request.
func IsAuto(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == autoKeyword || strings.HasPrefix(v, autoKeyword+":")
}

// ResolveDate replaces "auto" and "auto:LAYOUT" with now formatted by the
// layout (presets are matched case-insensitively). Other values are returned
// unchanged.
func ResolveDate(value string, now time.Time) (string, error) {
	if !IsAuto(value) {
		return value, nil
	}
	value = strings.TrimSpace(value)

	layout := DefaultLayout
	if spec := value[len(autoKeyword):]; spec != "" {
		spec = spec[1:]
		if preset, found := Presets[strings.ToLower(spec)]; found {
			spec = preset
		}
		layout = spec
	}
	return Format(layout, now)
}
