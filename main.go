package main

import (
	"github.com/alecthomas/kong"

	"github.com/vmarkovtsev/apiblueprint/cmd"
	"github.com/vmarkovtsev/apiblueprint/internal/config"
	"github.com/vmarkovtsev/apiblueprint/internal/theme"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("apiblueprint"),
		kong.Description("Parse, validate, query, merge and browse API Blueprint documents"),
		kong.UsageOnError(),
	)

	// Load config and apply theme; ignore errors, theme defaults to "default".
	cfg, err := config.Load()
	if err == nil {
		_ = theme.Load(cfg.Theme)
	}

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
