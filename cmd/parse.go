package cmd

import (
	"fmt"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
)

// ParseCmd parses a single Blueprint file and prints a summary of what it
// found: name, format, and counts of groups/resources/actions, plus any
// recovered warnings.
type ParseCmd struct {
	File string `arg:"" help:"Blueprint file to parse"`
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	data, err := readFile(c.File)
	if err != nil {
		return err
	}

	warn := &bperrors.CollectingWarnSink{}
	bp, err := parseBlueprintSource(data, warn)
	if err != nil {
		return err
	}

	fmt.Println(bp.String())
	format, ok := bp.Format()
	if ok {
		fmt.Println("format:", format)
	}
	fmt.Println("groups:", len(bp.Groups()))
	fmt.Println("resources:", bp.CountResources())
	fmt.Println("actions:", bp.CountActions())
	fmt.Println("data structures:", bp.DataStructures().Len())

	for _, w := range warn.Messages {
		fmt.Println("warning:", w)
	}
	return nil
}
