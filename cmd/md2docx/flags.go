package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds every command-line flag.
type cliFlags struct {
	output       string
	config       string
	assetPath    string
	theme        string
	title        string
	author       string
	keywords     []string
	noReferences bool
	quiet        bool
	verbose      bool
	version      bool
	help         bool

	// set records which flags appeared on the command line.
	set map[string]bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2docx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{set: make(map[string]bool)}

	// I/O
	fs.StringVarP(&f.output, "output", "o", "", "output .docx path")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.theme, "theme", "", "theme name or YAML file path")

	// Document
	fs.StringVar(&f.title, "title", "", "document title (default: front matter or first heading)")
	fs.StringVar(&f.author, "author", "", "document author")
	fs.StringSliceVar(&f.keywords, "keywords", nil, "comma-separated document keywords")
	fs.BoolVar(&f.noReferences, "no-references", false, "omit the references section")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show configuration, timings and statistics")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}

// hasVerboseFlag reports whether args request verbose output. It runs
// before full parsing so runtime setup can log.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
