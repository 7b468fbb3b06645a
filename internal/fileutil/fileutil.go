// Package fileutil holds the small file and path helpers shared by the
// converter and the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated files and directories.
const (
	FilePerm os.FileMode = 0o644
	DirPerm  os.FileMode = 0o750
)

// ErrInvalidExtension is returned by ReplaceExt for unusable extensions.
var ErrInvalidExtension = errors.New("invalid file extension")

// WriteFileAtomic writes data to a temporary file in the destination
// directory and renames it over path, so readers never observe a partial
// document. Missing parent directories are created.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".md2docx-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// EnsureDir creates dir and its parents with DirPerm. An empty dir or "."
// is a no-op.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// ReplaceExt returns path with its last extension swapped for ext. A
// leading dot on ext is optional. Returns ErrInvalidExtension when ext is
// empty or holds a separator or NUL byte.
func ReplaceExt(path, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || strings.ContainsAny(ext, "/\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidExtension, ext)
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext, nil
}

// IsRegularFile reports whether path exists and is not a directory.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFilePath reports whether s names a file by path ("./brand.yaml",
// "C:\themes\brand.yaml") rather than by bare name ("default").
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// linkSchemes lists the URL schemes that become external hyperlinks.
var linkSchemes = map[string]bool{"http": true, "https": true, "mailto": true}

// IsLinkTarget reports whether s can become an external hyperlink in a
// document: an absolute http(s) URL with a host, or a mailto address.
func IsLinkTarget(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !linkSchemes[u.Scheme] {
		return false
	}
	if u.Scheme == "mailto" {
		return u.Opaque != ""
	}
	return u.Host != ""
}
