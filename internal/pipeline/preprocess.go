package pipeline

import (
	"context"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// FrontMatter holds the optional YAML header of an article.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
}

func (m FrontMatter) isZero() bool {
	return m.Title == "" && m.Author == "" && len(m.Tags) == 0 && m.Description == ""
}

// yamlHeader is the only front matter format accepted. Decoding is strict,
// so a block of prose between two rules is not mistaken for a header.
var yamlHeader = frontmatter.NewFormat("---", "---", yamlutil.Decode)

// Source is an article ready for scanning.
type Source struct {
	Body string
	Meta FrontMatter

	// HeaderLines is the number of source lines before Body, so that
	// body line n is source line n+HeaderLines.
	HeaderLines int
}

// Preprocess normalizes line endings and Unicode form, then splits off any
// YAML front matter. Content without a valid, non-empty header is returned
// whole.
func Preprocess(ctx context.Context, content string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content = normalizeLineEndings(content)
	content = norm.NFC.String(content)

	src := &Source{Body: content}
	if !strings.HasPrefix(content, "---\n") {
		return src, nil
	}

	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta, yamlHeader)
	if err != nil || meta.isZero() || !strings.HasSuffix(content, string(body)) {
		// A leading "---" is a thematic break here.
		return src, nil
	}
	src.Body = string(body)
	src.Meta = meta
	src.HeaderLines = strings.Count(content[:len(content)-len(body)], "\n")
	return src, nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
