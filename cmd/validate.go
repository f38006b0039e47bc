// Package cmd provides command-line interface implementations.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/blueprint"
)

// ValidateCmd parses one or more Blueprint files and reports errors and
// warnings without printing the parsed structure.
type ValidateCmd struct {
	Files []string `arg:"" help:"Blueprint files to validate"`
	JSON  bool     `name:"json" help:"Output as JSON"`
}

type fileReport struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Error    string   `json:"error,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Run executes the validate command, aggregating per-file errors with
// go-multierror the way the teacher's multi-provider initialization collects
// per-provider errors.
func (c *ValidateCmd) Run() error {
	var reports []fileReport
	var errs *multierror.Error

	for _, path := range c.Files {
		warn := &bperrors.CollectingWarnSink{}
		root, err := parseFileForValidation(path, warn)
		report := fileReport{File: path, Warnings: warn.Messages}
		if err != nil {
			report.Valid = false
			report.Error = err.Error()
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
		} else {
			report.Valid = true
			_ = root
		}
		reports = append(reports, report)
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if r.Valid {
				fmt.Printf("%s: OK", r.File)
			} else {
				fmt.Printf("%s: FAILED (%s)", r.File, r.Error)
			}
			if len(r.Warnings) > 0 {
				fmt.Printf(" (%d warning(s))", len(r.Warnings))
			}
			fmt.Println()
			for _, w := range r.Warnings {
				fmt.Println("  warning:", w)
			}
		}
	}

	return errs.ErrorOrNil()
}

func parseFileForValidation(path string, warn bperrors.WarnSink) (*blueprint.Blueprint, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseBlueprintSource(data, warn)
}
