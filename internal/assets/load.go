package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// ValidateAssetName rejects names that could select another file: empty
// names and names containing separators, dots or NUL bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// loadFrom reads {kind}/{name}.yaml from fsys.
func loadFrom(fsys fs.FS, kind Kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := yamlutil.ReadFile(fsys, path.Join(string(kind), name+assetExt))
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", kind.notFound(), name)
	default:
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}
