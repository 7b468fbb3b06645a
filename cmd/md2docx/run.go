package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrReadMarkdown  = errors.New("failed to read markdown file")
	ErrWriteDocument = errors.New("failed to write document")
)

// defaultInput is converted when no input is given anywhere.
const defaultInput = "DZONE_ARTICLE.md"

// run executes one conversion. args excludes the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v\n  hint: run 'md2docx --help'", ErrUsage, err)
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}
	if flags.quiet && flags.verbose {
		return fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	log := &logger{env: env, quiet: flags.quiet, verbose: flags.verbose}
	warnUnknownEnvVars(env.Stderr, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	applyFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, outputPath, err := resolvePaths(cfg)
	if err != nil {
		return err
	}
	log.config(cfg)

	start := env.Now()
	markdown, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided input path
	if err != nil {
		hint := ""
		if errors.Is(err, os.ErrNotExist) {
			hint = hints.ForInputNotFound(defaultInput)
		}
		return fmt.Errorf("%w: %s: %v%s", ErrReadMarkdown, inputPath, err, hint)
	}
	log.stage("read", start, env.Now())

	start = env.Now()
	conv, err := md2docx.NewConverter(converterOptions(cfg, env)...)
	if err != nil {
		if errors.Is(err, md2docx.ErrThemeNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForThemeNotFound(md2docx.ThemeNames()))
		}
		return err
	}
	result, err := conv.Convert(ctx, md2docx.Input{
		Markdown: string(markdown),
		Title:    cfg.Document.Title,
		Author:   cfg.Document.Author,
		Keywords: cfg.Document.Keywords,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}
	log.stage("convert", start, env.Now())

	start = env.Now()
	if err := fileutil.WriteFileAtomic(outputPath, result.DOCX); err != nil {
		return fmt.Errorf("%w: %s: %v%s", ErrWriteDocument, outputPath, err, hints.ForOutputDirectory())
	}
	log.stage("write", start, env.Now())

	log.stats(result)
	log.info("Document saved to: %s", outputPath)
	return nil
}

// loadConfig loads the config named by the flag, else by the environment,
// else returns defaults.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides cfg with flags given on the command line.
func applyFlags(f *cliFlags, positional []string, cfg *config.Config) {
	if len(positional) == 1 {
		cfg.Input.Path = positional[0]
	}
	if f.set["output"] {
		cfg.Output.Path = f.output
	}
	if f.set["asset-path"] {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.set["theme"] {
		cfg.Theme = f.theme
	}
	if f.set["title"] {
		cfg.Document.Title = f.title
	}
	if f.set["author"] {
		cfg.Document.Author = f.author
	}
	if f.set["keywords"] {
		cfg.Document.Keywords = f.keywords
	}
	if f.noReferences {
		cfg.References.Enabled = false
	}
}

// resolvePaths applies the default input and derives the output path.
func resolvePaths(cfg *config.Config) (string, string, error) {
	input := cfg.Input.Path
	if input == "" {
		input = defaultInput
	}
	output := cfg.Output.Path
	if output == "" {
		var err error
		output, err = fileutil.ReplaceExt(input, "docx")
		if err != nil {
			return "", "", fmt.Errorf("%w: deriving output path: %v", ErrUsage, err)
		}
	}
	return input, output, nil
}

// converterOptions translates cfg into library options.
func converterOptions(cfg *config.Config, env *Environment) []md2docx.Option {
	opts := []md2docx.Option{
		md2docx.WithTheme(cfg.Theme),
		md2docx.WithReferences(cfg.References.Enabled),
		md2docx.WithNow(env.Now),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2docx.WithAssetPath(cfg.Assets.BasePath))
	}
	return opts
}

// logger writes progress to the environment streams.
type logger struct {
	env     *Environment
	quiet   bool
	verbose bool
}

func (l *logger) info(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.env.Stdout, format+"\n", args...)
}

func (l *logger) debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.env.Stderr, format+"\n", args...)
}

func (l *logger) config(cfg *config.Config) {
	if !l.verbose {
		return
	}
	data, err := yamlutil.Encode(cfg)
	if err != nil {
		l.debug("config: %v", err)
		return
	}
	l.debug("Effective configuration:\n%s", data)
}

func (l *logger) stage(name string, start, end time.Time) {
	l.debug("%-8s %v", name, end.Sub(start).Round(time.Microsecond))
}

func (l *logger) stats(result *md2docx.ConvertResult) {
	s := result.Stats
	l.debug("title: %q", result.Title)
	l.debug("headings=%d paragraphs=%d list_items=%d code_blocks=%d tables=%d replacements=%d references=%d",
		s.Headings, s.Paragraphs, s.ListItems, s.CodeBlocks, s.Tables, s.Replacements, s.References)
	l.debug("size: %d bytes", len(result.DOCX))
}
