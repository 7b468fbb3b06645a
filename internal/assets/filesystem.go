package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemLoader serves assets from a directory on disk. Reads go through
// os.Root, so symlinks cannot lead outside the directory.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader checks that basePath is a readable directory.
// Returns ErrInvalidBasePath otherwise.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	root, err := os.OpenRoot(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	defer func() { _ = root.Close() }()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadTheme reads {basePath}/themes/{name}.yaml.
func (f *FilesystemLoader) LoadTheme(name string) ([]byte, error) {
	return f.load(KindTheme, name)
}

// LoadContent reads {basePath}/content/{name}.yaml.
func (f *FilesystemLoader) LoadContent(name string) ([]byte, error) {
	return f.load(KindContent, name)
}

func (f *FilesystemLoader) load(kind Kind, name string) ([]byte, error) {
	root, err := os.OpenRoot(f.basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer func() { _ = root.Close() }()

	return loadFrom(root.FS(), kind, name)
}

var _ AssetLoader = (*FilesystemLoader)(nil)
