package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

const fileScheme = "file://"

// NormalizeURI turns a declared media reference into an absolute path. A
// file:// prefix is stripped; what remains (or the URI itself) is returned
// unchanged when absolute, otherwise resolved against baseDir, the
// directory containing the manifest file.
func NormalizeURI(uri, baseDir string) (string, error) {
	if strings.HasPrefix(uri, fileScheme) {
		uri = uri[len(fileScheme):]
	}
	if filepath.IsAbs(uri) {
		return uri, nil
	}

	resolved := filepath.Join(baseDir, uri)
	if filepath.IsAbs(resolved) {
		return resolved, nil
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q against %q: %w", uri, baseDir, err)
	}
	return abs, nil
}
