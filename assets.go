package md2docx

import (
	"errors"

	"github.com/alnah/go-md2docx/internal/assets"
	"github.com/alnah/go-md2docx/internal/render"
)

// Asset name constants for built-in themes and content.
const (
	// DefaultTheme is the name of the built-in theme.
	DefaultTheme = assets.DefaultTheme

	// Content asset names.
	ContentDiagram    = assets.ContentDiagram
	ContentTechStack  = assets.ContentTechStack
	ContentReferences = assets.ContentReferences
)

// AssetLoader defines the contract for loading themes and content files.
// Implementations may load from filesystem, embedded assets, a database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadTheme loads a theme YAML document by name (without extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	LoadTheme(name string) ([]byte, error)

	// LoadContent loads a content YAML document: ContentDiagram,
	// ContentTechStack or ContentReferences.
	// Returns ErrContentNotFound if the file doesn't exist.
	LoadContent(name string) ([]byte, error)
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - themes/{name}.yaml for themes
//   - content/{diagram,techstack,references}.yaml for inserted content
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// ThemeNames lists the embedded theme names.
func ThemeNames() []string {
	return assets.ThemeNames()
}

// assetLoaderAdapter wraps internal AssetResolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadTheme(name string) ([]byte, error) {
	data, err := a.resolver.LoadTheme(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return data, nil
}

func (a *assetLoaderAdapter) LoadContent(name string) ([]byte, error) {
	data, err := a.resolver.LoadContent(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return data, nil
}

// publicToInternalAdapter lets a user-supplied loader fall back to embedded
// assets, translating public not-found errors for the resolver.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadTheme(name string) ([]byte, error) {
	data, err := a.pub.LoadTheme(name)
	if errors.Is(err, ErrThemeNotFound) {
		return nil, wrapError(assets.ErrThemeNotFound, err)
	}
	return data, err
}

func (a *publicToInternalAdapter) LoadContent(name string) ([]byte, error) {
	data, err := a.pub.LoadContent(name)
	if errors.Is(err, ErrContentNotFound) {
		return nil, wrapError(assets.ErrContentNotFound, err)
	}
	return data, err
}

// convertAssetError maps internal asset and render errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isError(err, assets.ErrThemeNotFound):
		return wrapError(ErrThemeNotFound, err)
	case isError(err, assets.ErrContentNotFound):
		return wrapError(ErrContentNotFound, err)
	case isError(err, assets.ErrInvalidBasePath), isError(err, assets.ErrAssetRead):
		return wrapError(ErrInvalidAssetPath, err)
	case isError(err, assets.ErrInvalidAssetName):
		return wrapError(ErrThemeNotFound, err) // Invalid name means not found
	case isError(err, render.ErrInvalidTheme):
		return wrapError(ErrInvalidTheme, err)
	case isError(err, render.ErrInvalidContent):
		return wrapError(ErrInvalidContent, err)
	default:
		return err
	}
}

// isError checks if err wraps or equals target using errors.Is semantics.
func isError(err, target error) bool {
	return errors.Is(err, target)
}

// wrapError creates a new error that wraps the original with a sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}

// Compile-time interface checks.
var (
	_ AssetLoader        = (*assetLoaderAdapter)(nil)
	_ assets.AssetLoader = (*publicToInternalAdapter)(nil)
)
