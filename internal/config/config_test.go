package config

// Notes:
// - TestLoadConfig_SearchUserDir and TestSearchPaths set XDG_CONFIG_HOME and
//   change the working directory, so they cannot run in parallel.
// - os.UserConfigDir honours XDG_CONFIG_HOME only on Unix-like systems;
//   those tests are skipped elsewhere.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.Path != "" {
		t.Errorf("Input.Path = %q, want empty", cfg.Input.Path)
	}
	if cfg.Output.Path != "" {
		t.Errorf("Output.Path = %q, want empty", cfg.Output.Path)
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "default")
	}
	if !cfg.References.Enabled {
		t.Error("References.Enabled = false, want true")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field rules
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   bool
		wantField string
	}{
		{
			name:   "full valid config",
			mutate: func(c *Config) {
				c.Input.Path = "articles/DZONE_ARTICLE.md"
				c.Output.Path = "out/article.docx"
				c.Document = DocumentConfig{Title: "API Docs", Author: "Jane", Keywords: []string{"openapi", "raml"}}
				c.Assets.BasePath = "./assets"
			},
		},
		{
			name:   "markdown extension is case-insensitive",
			mutate: func(c *Config) { c.Input.Path = "README.MD" },
		},
		{
			name:   "markdown long extension accepted",
			mutate: func(c *Config) { c.Input.Path = "notes.markdown" },
		},
		{
			name:      "input with wrong extension",
			mutate:    func(c *Config) { c.Input.Path = "article.txt" },
			wantErr:   true,
			wantField: "Path",
		},
		{
			name:      "output with wrong extension",
			mutate:    func(c *Config) { c.Output.Path = "article.pdf" },
			wantErr:   true,
			wantField: ".docx",
		},
		{
			name:      "title too long",
			mutate:    func(c *Config) { c.Document.Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr:   true,
			wantField: "Title",
		},
		{
			name:      "author too long",
			mutate:    func(c *Config) { c.Document.Author = strings.Repeat("x", MaxAuthorLength+1) },
			wantErr:   true,
			wantField: "Author",
		},
		{
			name:      "empty keyword",
			mutate:    func(c *Config) { c.Document.Keywords = []string{"ok", ""} },
			wantErr:   true,
			wantField: "Keywords",
		},
		{
			name: "too many keywords",
			mutate: func(c *Config) {
				for i := 0; i <= MaxKeywords; i++ {
					c.Document.Keywords = append(c.Document.Keywords, "k")
				}
			},
			wantErr:   true,
			wantField: "Keywords",
		},
		{
			name:   "theme path with yaml extension",
			mutate: func(c *Config) { c.Theme = "./themes/brand.yaml" },
		},
		{
			name:      "theme path without yaml extension",
			mutate:    func(c *Config) { c.Theme = "./themes/brand.css" },
			wantErr:   true,
			wantField: "Theme",
		},
		{
			name:      "theme name with dot",
			mutate:    func(c *Config) { c.Theme = "brand.yaml" },
			wantErr:   true,
			wantField: "Theme",
		},
		{
			name:   "empty theme allowed",
			mutate: func(c *Config) { c.Theme = "" },
		},
		{
			name:      "asset path too long",
			mutate:    func(c *Config) { c.Assets.BasePath = strings.Repeat("a", MaxPathLength+1) },
			wantErr:   true,
			wantField: "BasePath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantField)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "article.yaml", `input:
  path: "DZONE_ARTICLE.md"
output:
  path: "build/article.docx"
document:
  title: "Interactive API Docs"
  author: "Jane Doe"
  keywords: [openapi, redoc]
theme: monochrome
references:
  enabled: false
assets:
  basePath: "./assets"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "DZONE_ARTICLE.md" {
			t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "DZONE_ARTICLE.md")
		}
		if cfg.Output.Path != "build/article.docx" {
			t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "build/article.docx")
		}
		if cfg.Document.Title != "Interactive API Docs" || cfg.Document.Author != "Jane Doe" {
			t.Errorf("Document = %+v, want title and author set", cfg.Document)
		}
		if len(cfg.Document.Keywords) != 2 {
			t.Errorf("Document.Keywords = %v, want 2 entries", cfg.Document.Keywords)
		}
		if cfg.Theme != "monochrome" {
			t.Errorf("Theme = %q, want %q", cfg.Theme, "monochrome")
		}
		if cfg.References.Enabled {
			t.Error("References.Enabled = true, want false")
		}
		if cfg.Assets.BasePath != "./assets" {
			t.Errorf("Assets.BasePath = %q, want %q", cfg.Assets.BasePath, "./assets")
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "partial.yaml", "document:\n  author: \"Jane\"\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Theme != "default" {
			t.Errorf("Theme = %q, want default", cfg.Theme)
		}
		if !cfg.References.Enabled {
			t.Error("References.Enabled = false, want default true")
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "theme: [unclosed")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "theme: default\nstyle: technical\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values return ErrInvalidConfig", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "output:\n  path: \"out.pdf\"\n")

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("error = %v, want ErrInvalidConfig", err)
		}
	})

	t.Run("unknown name returns ErrConfigNotFound with tried paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("surely-missing-config-xyz")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "surely-missing-config-xyz.yaml") {
			t.Errorf("error = %q, want tried paths", err)
		}
	})
}

func TestLoadConfig_SearchUserDir(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME not consulted on this platform")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	appDir := filepath.Join(xdg, AppDir)
	if err := os.MkdirAll(appDir, 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	writeConfig(t, appDir, "team.yml", "theme: monochrome\n")

	cfg, err := LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(team) error = %v", err)
	}
	if cfg.Theme != "monochrome" {
		t.Errorf("Theme = %q, want monochrome", cfg.Theme)
	}

	// A file in the working directory takes precedence.
	writeConfig(t, ".", "team.yaml", "theme: default\n")
	cfg, err = LoadConfig("team")
	if err != nil {
		t.Fatalf("LoadConfig(team) error = %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("Theme = %q, want default from working directory", cfg.Theme)
	}
}

func TestSearchPaths(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME not consulted on this platform")
	}

	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	got := SearchPaths("article")
	want := []string{
		"article.yaml",
		"article.yml",
		filepath.Join("/xdg", AppDir, "article.yaml"),
		filepath.Join("/xdg", AppDir, "article.yml"),
	}
	if len(got) != len(want) {
		t.Fatalf("SearchPaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
