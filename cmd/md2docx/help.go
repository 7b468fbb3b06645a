package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown article to a Word document, replacing the ASCII")
	fmt.Fprintln(w, "architecture diagram and the technology table with formatted tables")
	fmt.Fprintln(w, "and appending a references section.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  input    Markdown file (default: %s)\n", defaultInput)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx path (default: input with .docx)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom themes/ and content/ directory")
	fmt.Fprintln(w, "      --theme <name|path>   Theme name or YAML file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title (default: front matter or first heading)")
	fmt.Fprintln(w, "      --author <s>          Author")
	fmt.Fprintln(w, "      --keywords <a,b>      Keywords")
	fmt.Fprintln(w, "      --no-references       Omit the references section")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show configuration, timings and statistics")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Date lines:")
	fmt.Fprintln(w, "  **Date:** auto              Today as YYYY-MM-DD")
	fmt.Fprintln(w, "  **Date:** auto:FORMAT       Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, dddd, ddd")
	fmt.Fprintln(w, "                              Presets: iso, european, us, long, full, month")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2DOCX_CONFIG, MD2DOCX_INPUT, MD2DOCX_OUTPUT,")
	fmt.Fprintln(w, "  MD2DOCX_ASSET_PATH, MD2DOCX_THEME, MD2DOCX_AUTHOR")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Priority: flags > environment > config file > defaults.")
}
