// Package cmd provides command-line interface implementations for
// apiblueprint.
package cmd

import (
	"fmt"

	"github.com/vmarkovtsev/apiblueprint/internal/version"
)

// VersionCmd displays build information: version, commit, date.
type VersionCmd struct {
	JSON  bool `kong:"help='Output in JSON format for scripting'"`
	Short bool `kong:"help='Output version number only'"`
}

// Run executes the version command.
func (c *VersionCmd) Run() error {
	info := version.GetBuildInfo()

	switch {
	case c.JSON:
		jsonBytes, err := info.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case c.Short:
		fmt.Println(info.Short())
	default:
		fmt.Println(info.String())
	}

	return nil
}
