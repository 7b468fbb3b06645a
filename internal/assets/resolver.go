package assets

import "errors"

// AssetResolver asks each loader in turn and moves on only when the asset
// is not found, so a custom source can override single files. Invalid
// names and read errors stop the search.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver layers the directory at customBasePath, if any, over
// the embedded assets.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	if customBasePath == "" {
		return &AssetResolver{loaders: []AssetLoader{defaultLoader}}, nil
	}
	fsLoader, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	return NewResolverWithLoader(fsLoader), nil
}

// NewResolverWithLoader layers custom over the embedded assets.
func NewResolverWithLoader(custom AssetLoader) *AssetResolver {
	return &AssetResolver{loaders: []AssetLoader{custom, defaultLoader}}
}

// LoadTheme implements AssetLoader.
func (r *AssetResolver) LoadTheme(name string) ([]byte, error) {
	return r.first(func(l AssetLoader) ([]byte, error) { return l.LoadTheme(name) })
}

// LoadContent implements AssetLoader.
func (r *AssetResolver) LoadContent(name string) ([]byte, error) {
	return r.first(func(l AssetLoader) ([]byte, error) { return l.LoadContent(name) })
}

func (r *AssetResolver) first(load func(AssetLoader) ([]byte, error)) ([]byte, error) {
	var err error
	for _, l := range r.loaders {
		var data []byte
		if data, err = load(l); !isNotFoundError(err) {
			return data, err
		}
	}
	return nil, err
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrThemeNotFound) || errors.Is(err, ErrContentNotFound)
}

var _ AssetLoader = (*AssetResolver)(nil)
