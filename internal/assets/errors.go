package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrThemeNotFound    = errors.New("theme not found")
	ErrContentNotFound  = errors.New("content not found")
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath means a custom asset directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead covers I/O failures, oversized files and symlinks that
	// leave the asset directory.
	ErrAssetRead = errors.New("failed to read asset")
)
