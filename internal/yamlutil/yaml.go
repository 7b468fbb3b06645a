// Package yamlutil is the single YAML entry point for configuration, theme
// and content files. Decoding is always strict: a misspelled key in a theme
// would otherwise silently fall back to a zero value.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a YAML document at 1 MiB.
var MaxInputSize = 1 << 20

var (
	ErrEmpty         = errors.New("yamlutil: empty document")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrDecode        = errors.New("yamlutil: decode failed")
)

// Decode decodes data into v, rejecting keys v does not declare. Syntax and
// schema errors carry the offending source line.
func Decode(data []byte, v any) error {
	switch {
	case v == nil:
		return ErrNilTarget
	case len(data) == 0:
		return ErrEmpty
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("%w: %s", ErrDecode, yaml.FormatError(err, false, true))
	}
	return nil
}

// Encode renders v as YAML, for diagnostics output.
func Encode(v any) ([]byte, error) {
	data, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: encode: %w", err)
	}
	return data, nil
}

// ReadFile reads name from fsys. At most MaxInputSize+1 bytes are read, so
// oversized files fail with ErrInputTooLarge without being loaded in full.
// Open errors are returned unwrapped for errors.Is(err, fs.ErrNotExist).
func ReadFile(fsys fs.FS, name string) ([]byte, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: reading %s: %w", name, err)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s", ErrInputTooLarge, name)
	}
	return data, nil
}

// DecodeFile reads name from fsys and decodes it. Errors are prefixed with
// the file name.
func DecodeFile(fsys fs.FS, name string, v any) error {
	data, err := ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := Decode(data, v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
