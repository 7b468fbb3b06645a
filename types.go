package md2docx

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2docx/internal/config"
)

// Input contains conversion parameters.
type Input struct {
	Markdown string   // Markdown content (required)
	Title    string   // Document title (optional, overrides front matter)
	Author   string   // Document creator (optional, overrides front matter)
	Keywords []string // Document keywords (optional, overrides front matter)
}

// Validate checks metadata lengths.
func (in Input) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Length(0, config.MaxTitleLength)),
		validation.Field(&in.Author, validation.Length(0, config.MaxAuthorLength)),
		validation.Field(&in.Keywords,
			validation.Length(0, config.MaxKeywords),
			validation.Each(validation.Required, validation.Length(1, config.MaxKeywordLength)),
		),
	)
}

// ConvertResult contains the generated document and what went into it.
type ConvertResult struct {
	DOCX  []byte // Office Open XML package
	Title string // Title recorded in the document properties
	Stats Stats
}

// Stats counts the elements written to the document.
type Stats struct {
	Headings     int
	Paragraphs   int
	ListItems    int
	CodeBlocks   int
	Tables       int
	Replacements int // diagram and technology table substitutions
	References   int // bibliography entries
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	assetPath  string
	theme      string
	references bool
	now        func() time.Time
	newID      func() string
}

// WithAssetPath loads themes and content from dir, falling back to the
// embedded assets for files the directory lacks.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. Assets it reports as not
// found fall back to the embedded defaults.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithTheme selects a theme by name, or by path when the value contains a
// path separator.
func WithTheme(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.theme = nameOrPath
	}
}

// WithReferences enables or disables the appended references section.
func WithReferences(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.references = enabled
	}
}

// WithNow sets the clock used for document timestamps and "auto" dates.
// Panics if now is nil (programmer error).
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("md2docx: WithNow clock must not be nil")
	}
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithIDGenerator sets the generator for the document identifier.
// Panics if gen is nil (programmer error).
func WithIDGenerator(gen func() string) Option {
	if gen == nil {
		panic("md2docx: WithIDGenerator generator must not be nil")
	}
	return func(c *Converter) {
		c.cfg.newID = gen
	}
}
