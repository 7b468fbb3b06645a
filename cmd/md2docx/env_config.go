package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alnah/go-md2docx/internal/config"
)

const envPrefix = "MD2DOCX_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2DOCX_CONFIG: config file name or path
	Input      string // MD2DOCX_INPUT: Markdown article path
	Output     string // MD2DOCX_OUTPUT: document path
	AssetPath  string // MD2DOCX_ASSET_PATH: custom asset directory
	Theme      string // MD2DOCX_THEME: theme name or path
	Author     string // MD2DOCX_AUTHOR: document author
}

// knownEnvVars lists valid MD2DOCX_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2DOCX_CONFIG":     true,
	"MD2DOCX_INPUT":      true,
	"MD2DOCX_OUTPUT":     true,
	"MD2DOCX_ASSET_PATH": true,
	"MD2DOCX_THEME":      true,
	"MD2DOCX_AUTHOR":     true,
}

// loadEnvConfig reads the MD2DOCX_* variables through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: getenv("MD2DOCX_CONFIG"),
		Input:      getenv("MD2DOCX_INPUT"),
		Output:     getenv("MD2DOCX_OUTPUT"),
		AssetPath:  getenv("MD2DOCX_ASSET_PATH"),
		Theme:      getenv("MD2DOCX_THEME"),
		Author:     getenv("MD2DOCX_AUTHOR"),
	}
}

// warnUnknownEnvVars warns about unrecognized MD2DOCX_* variables, which
// are usually typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, env := range environ {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config file values with set environment
// variables. Flags are applied afterwards by applyFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Input != "" {
		cfg.Input.Path = env.Input
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Theme != "" {
		cfg.Theme = env.Theme
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
}
