// Package config loads and validates md2docx YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength    = 4096
	MaxTitleLength   = 200
	MaxAuthorLength  = 100
	MaxKeywords      = 20
	MaxKeywordLength = 50
	MaxThemeLength   = 100
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-md2docx"

var themeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config holds all configuration for document generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Document   DocumentConfig   `yaml:"document"`
	Theme      string           `yaml:"theme"` // embedded theme name or path to a theme YAML file
	References ReferencesConfig `yaml:"references"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// InputConfig defines the Markdown source.
type InputConfig struct {
	Path string `yaml:"path"` // empty = DZONE_ARTICLE.md
}

// OutputConfig defines the document destination.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = input path with .docx
}

// DocumentConfig overrides document core properties.
type DocumentConfig struct {
	Title    string   `yaml:"title"`
	Author   string   `yaml:"author"`
	Keywords []string `yaml:"keywords"`
}

// ReferencesConfig controls the appended bibliography.
type ReferencesConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks paths, lengths and the theme reference.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Input),
		validation.Field(&c.Output),
		validation.Field(&c.Document),
		validation.Field(&c.Theme, validation.Length(0, MaxThemeLength), validation.By(validateThemeRef)),
		validation.Field(&c.Assets),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Validate implements validation.Validatable.
func (i InputConfig) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Path, validation.Length(0, MaxPathLength), validation.By(hasExtension(".md", ".markdown"))),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Path, validation.Length(0, MaxPathLength), validation.By(hasExtension(".docx"))),
	)
}

// Validate implements validation.Validatable.
func (d DocumentConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Length(0, MaxTitleLength)),
		validation.Field(&d.Author, validation.Length(0, MaxAuthorLength)),
		validation.Field(&d.Keywords,
			validation.Length(0, MaxKeywords),
			validation.Each(validation.Required, validation.Length(1, MaxKeywordLength)),
		),
	)
}

// Validate implements validation.Validatable.
func (a AssetsConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.BasePath, validation.Length(0, MaxPathLength)),
	)
}

// hasExtension returns a rule accepting empty values or paths ending in one
// of exts (case-insensitive).
func hasExtension(exts ...string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(s))
		for _, want := range exts {
			if ext == want {
				return nil
			}
		}
		return validation.NewError("validation_extension", "must end in "+strings.Join(exts, " or "))
	}
}

// validateThemeRef accepts a bare theme name or a path to a YAML file.
func validateThemeRef(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if fileutil.IsFilePath(s) {
		return hasExtension(".yaml", ".yml")(s)
	}
	if !themeNamePattern.MatchString(s) {
		return validation.NewError("validation_theme_name", "must contain only letters, digits, '-' or '_'")
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// embedded default theme, references enabled.
func DefaultConfig() *Config {
	return &Config{
		Theme:      "default",
		References: ReferencesConfig{Enabled: true},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	fsys := os.DirFS(filepath.Dir(configPath))
	if err := yamlutil.DecodeFile(fsys, filepath.Base(configPath), cfg); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// the current directory, then the user config directory
// ($XDG_CONFIG_HOME/go-md2docx on Linux), each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.IsRegularFile(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
