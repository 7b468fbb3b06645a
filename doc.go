// Package md2docx converts a Markdown article to a Word document (DOCX).
//
// # Quick Start
//
//	conv, err := md2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Preprocessing (line endings, Unicode NFC, YAML front matter)
//  2. Line scanning into headings, lists, code, metadata lines and the
//     two fixed replacement points (architecture diagram, technology table)
//  3. Document assembly: inline formatting via Goldmark, code colouring
//     via Chroma, tables for the replacements
//  4. References section appended at the end
//  5. Packaging as Office Open XML
//
// The diagram and technology table replace their Markdown sources only when
// the exact marker lines appear. Everything else in the article is kept.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2docx.NewConverter(
//	    md2docx.WithTheme("monochrome"),
//	    md2docx.WithReferences(false),
//	    md2docx.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion metadata is passed via Input and overrides front matter
// and "**Author:**" style lines in the article:
//
//	result, err := conv.Convert(ctx, md2docx.Input{
//	    Markdown: content,
//	    Title:    "API Documentation at Scale",
//	    Author:   "Jane Doe",
//	    Keywords: []string{"openapi", "raml"},
//	})
//
// # Custom Assets
//
// Override themes and the inserted content with an asset directory:
//
//	assets/
//	├── themes/
//	│   └── brand.yaml
//	└── content/
//	    ├── diagram.yaml
//	    ├── techstack.yaml
//	    └── references.yaml
//
// Files missing from the directory fall back to the embedded defaults.
package md2docx
