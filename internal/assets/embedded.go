package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

//go:embed themes/*.yaml content/*.yaml
var embedded embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: embedded}
}

// LoadTheme implements AssetLoader.
func (e *EmbeddedLoader) LoadTheme(name string) ([]byte, error) {
	return loadFrom(e.fsys, KindTheme, name)
}

// LoadContent implements AssetLoader.
func (e *EmbeddedLoader) LoadContent(name string) ([]byte, error) {
	return loadFrom(e.fsys, KindContent, name)
}

// ThemeNames lists the embedded theme names in lexical order.
func (e *EmbeddedLoader) ThemeNames() []string {
	matches, err := fs.Glob(e.fsys, path.Join(string(KindTheme), "*"+assetExt))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), assetExt))
	}
	return names
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
