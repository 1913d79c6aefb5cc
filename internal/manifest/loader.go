package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads and validates golden-dataset manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, parses and validates a manifest file from the given path.
// Relative case URIs resolve against the directory containing the file.
func (l *Loader) Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path), filepath.Dir(abs))
}

// LoadFromBytes parses and validates a manifest from raw bytes. baseDir is
// the directory relative case URIs resolve against.
func (l *Loader) LoadFromBytes(data []byte, ext, baseDir string) (*Manifest, error) {
	ext = strings.ToLower(ext)

	var raw any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	return validateManifest(raw, baseDir)
}

// Load is a convenience wrapper around NewLoader().Load.
func Load(path string) (*Manifest, error) {
	return NewLoader().Load(path)
}
