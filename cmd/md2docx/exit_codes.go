package main

import (
	"errors"
	"os"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

// Exit codes for the md2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, input or assets
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the exit code for an error.
// It relies on errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, md2docx.ErrDocumentWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2docx.ErrEmptyMarkdown) ||
		errors.Is(err, md2docx.ErrInvalidInput) ||
		errors.Is(err, md2docx.ErrInvalidDate) ||
		errors.Is(err, md2docx.ErrThemeNotFound) ||
		errors.Is(err, md2docx.ErrInvalidTheme) ||
		errors.Is(err, md2docx.ErrContentNotFound) ||
		errors.Is(err, md2docx.ErrInvalidContent) ||
		errors.Is(err, md2docx.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
