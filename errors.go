package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDocumentWrite  = errors.New("document generation failed")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInternalFailed = errors.New("internal error")

	// Asset loading errors.
	ErrThemeNotFound    = errors.New("theme not found")
	ErrContentNotFound  = errors.New("content asset not found")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidContent   = errors.New("invalid content asset")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
