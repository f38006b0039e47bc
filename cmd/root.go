package cmd

import (
	kongcompletion "github.com/jotaen/kong-completion"
)

// CLI represents the root command structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose output" name:"verbose" short:"v"`

	Parse      ParseCmd                  `cmd:"" help:"Parse a Blueprint file and print a summary"`
	Validate   ValidateCmd               `cmd:"" help:"Validate one or more Blueprint files"`
	Query      QueryCmd                  `cmd:"" help:"Run an indexed lookup against a Blueprint file"`
	Merge      MergeCmd                  `cmd:"" help:"Merge two Blueprint files"`
	View       ViewCmd                   `cmd:"" help:"Browse a Blueprint file interactively"`
	Watch      WatchCmd                  `cmd:"" help:"Re-parse a Blueprint file on every write"`
	Version    VersionCmd                `cmd:"" help:"Show version info"`
	Completion kongcompletion.Completion `cmd:"" help:"Generate completions"`
}
