// Package cmd provides command-line interface implementations for
// apiblueprint.
// This file contains the view command for browsing a Blueprint document.
package cmd

import (
	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/tui"
)

// ViewCmd launches an interactive terminal browser over a parsed Blueprint
// document: resource groups, their resources, and each resource's actions,
// with the currently selected action's method and URI copyable to the
// clipboard.
type ViewCmd struct {
	File string `arg:"" help:"Blueprint file to browse"`
}

// Run executes the view command.
func (c *ViewCmd) Run() error {
	data, err := readFile(c.File)
	if err != nil {
		return err
	}

	bp, err := parseBlueprintSource(data, &bperrors.StderrWarnSink{})
	if err != nil {
		return err
	}

	return tui.Run(bp)
}
