// Package load reads Blueprint source documents through a filesystem
// abstraction, so callers (and tests) can swap disk access for an in-memory
// filesystem without touching the parser.
package load

import (
	"fmt"

	"github.com/spf13/afero"
)

// FromFS reads the Blueprint source at path through fs.
func FromFS(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// OSFS is the default filesystem used outside of tests.
func OSFS() afero.Fs {
	return afero.NewOsFs()
}
