// Package hints builds the "hint:" suffixes the CLI appends to error
// messages so users know what to try next.
package hints

import (
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
)

// containerMarkers are files created by Docker and Podman inside containers.
var containerMarkers = []string{"/.dockerenv", "/run/.containerenv"}

// IsInContainer reports whether the process runs inside a container.
// Tests swap it out.
var IsInContainer = func() bool {
	for _, m := range containerMarkers {
		if fileutil.IsRegularFile(m) {
			return true
		}
	}
	return false
}

// ForInputNotFound names the default input and the ways to override it.
func ForInputNotFound(defaultInput string) string {
	return join("pass the article path as argument or set MD2DOCX_INPUT (default: " + defaultInput + ")")
}

// ForConfigNotFound points at --config and, when one of searchedPaths is
// in the user config directory, offers to create it.
func ForConfigNotFound(searchedPaths []string) string {
	parts := []string{"use --config /path/to/file.yaml"}
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2docx") {
			parts[0] += " or create " + p
			break
		}
	}
	return join(parts...)
}

// ForOutputDirectory explains how to make the output location writable.
func ForOutputDirectory() string {
	parts := []string{"check parent directory exists and is writable"}
	if IsInContainer() {
		parts = append(parts, "mount the output directory as a writable volume")
	}
	return join(parts...)
}

// ForThemeNotFound lists the built-in themes. Empty when none are known.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return join("available: "+strings.Join(available, ", "), "or pass a path to a theme YAML file")
}

// join renders parts as one hint line, or "" when there is nothing to say.
func join(parts ...string) string {
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return ""
	}
	return "\n  hint: " + strings.Join(parts, "; ")
}
