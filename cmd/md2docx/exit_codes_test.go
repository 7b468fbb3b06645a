package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"internal", md2docx.ErrInternalFailed, ExitGeneral},
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", fmt.Errorf("open: %w", os.ErrPermission), ExitIO},
		{"read markdown", fmt.Errorf("%w: a.md", ErrReadMarkdown), ExitIO},
		{"write document", ErrWriteDocument, ExitIO},
		{"document package", md2docx.ErrDocumentWrite, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"empty markdown", md2docx.ErrEmptyMarkdown, ExitUsage},
		{"invalid input", md2docx.ErrInvalidInput, ExitUsage},
		{"invalid date", md2docx.ErrInvalidDate, ExitUsage},
		{"theme not found", md2docx.ErrThemeNotFound, ExitUsage},
		{"invalid theme", md2docx.ErrInvalidTheme, ExitUsage},
		{"content not found", md2docx.ErrContentNotFound, ExitUsage},
		{"invalid content", md2docx.ErrInvalidContent, ExitUsage},
		{"asset path", fmt.Errorf("wrapped: %w", md2docx.ErrInvalidAssetPath), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
