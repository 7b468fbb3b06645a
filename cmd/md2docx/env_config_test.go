package main

// Notes:
// - getenv and environ are injected, so these tests run in parallel
//   without t.Setenv.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	vars := map[string]string{
		"MD2DOCX_CONFIG":     "work",
		"MD2DOCX_INPUT":      "post.md",
		"MD2DOCX_OUTPUT":     "post.docx",
		"MD2DOCX_ASSET_PATH": "/srv/assets",
		"MD2DOCX_THEME":      "monochrome",
		"MD2DOCX_AUTHOR":     "Ada",
	}
	got := loadEnvConfig(func(k string) string { return vars[k] })

	want := envConfig{
		ConfigPath: "work",
		Input:      "post.md",
		Output:     "post.docx",
		AssetPath:  "/srv/assets",
		Theme:      "monochrome",
		Author:     "Ada",
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"MD2DOCX_THEME=default",
		"MD2DOCX_TEHME=oops",
		"MD2DOCX_AUTOR=x",
		"HOME=/root",
		"MD2PDF_STYLE=ignored",
	})

	out := buf.String()
	if strings.Count(out, "warning:") != 2 {
		t.Errorf("expected 2 warnings, got:\n%s", out)
	}
	if strings.Index(out, "MD2DOCX_AUTOR") > strings.Index(out, "MD2DOCX_TEHME") {
		t.Errorf("warnings should be sorted:\n%s", out)
	}
	if strings.Contains(out, "MD2DOCX_THEME ") || strings.Contains(out, "HOME") || strings.Contains(out, "MD2PDF") {
		t.Errorf("unexpected warning:\n%s", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.Path = "config.md"
		cfg.Document.Author = "Config Author"

		applyEnvConfig(&envConfig{Input: "env.md", Theme: "monochrome", Author: "Env Author", AssetPath: "/a"}, cfg)

		if cfg.Input.Path != "env.md" {
			t.Errorf("Input.Path = %q", cfg.Input.Path)
		}
		if cfg.Theme != "monochrome" {
			t.Errorf("Theme = %q", cfg.Theme)
		}
		if cfg.Document.Author != "Env Author" {
			t.Errorf("Author = %q", cfg.Document.Author)
		}
		if cfg.Assets.BasePath != "/a" {
			t.Errorf("Assets.BasePath = %q", cfg.Assets.BasePath)
		}
	})

	t.Run("empty values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Path = "keep.docx"

		applyEnvConfig(&envConfig{}, cfg)

		if cfg.Output.Path != "keep.docx" || cfg.Theme != "default" {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}
