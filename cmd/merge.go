package cmd

import (
	"fmt"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
)

// MergeCmd parses two Blueprint files and merges the second into the first,
// printing the resulting summary.
type MergeCmd struct {
	Base  string `arg:"" help:"Base Blueprint file"`
	Other string `arg:"" help:"Blueprint file to merge in"`
}

// Run executes the merge command.
func (c *MergeCmd) Run() error {
	warn := &bperrors.CollectingWarnSink{}

	baseData, err := readFile(c.Base)
	if err != nil {
		return err
	}
	base, err := parseBlueprintSource(baseData, warn)
	if err != nil {
		return err
	}

	otherData, err := readFile(c.Other)
	if err != nil {
		return err
	}
	other, err := parseBlueprintSource(otherData, warn)
	if err != nil {
		return err
	}

	if err := base.Merge(other); err != nil {
		return err
	}

	fmt.Println(base.String())
	for _, w := range warn.Messages {
		fmt.Println("warning:", w)
	}
	return nil
}
