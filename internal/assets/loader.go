package assets

// AssetLoader returns raw theme and content YAML by name. Names carry no
// extension or path.
type AssetLoader interface {
	// LoadTheme returns ErrThemeNotFound for unknown names and
	// ErrInvalidAssetName for names that are not plain identifiers.
	LoadTheme(name string) ([]byte, error)

	// LoadContent returns ErrContentNotFound for unknown names and
	// ErrInvalidAssetName for names that are not plain identifiers.
	LoadContent(name string) ([]byte, error)
}
