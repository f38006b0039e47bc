package cmd

import (
	"fmt"
	"os"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/watch"
)

// WatchCmd re-parses a Blueprint file and prints its summary every time the
// file is written to, until interrupted.
type WatchCmd struct {
	File string `arg:"" help:"Blueprint file to watch"`
}

// Run executes the watch command.
func (c *WatchCmd) Run() error {
	w, err := watch.NewWatcher(c.File)
	if err != nil {
		return err
	}
	defer w.Close()

	c.reparse()
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return nil
			}
			c.reparse()
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}

func (c *WatchCmd) reparse() {
	data, err := readFile(c.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		return
	}
	warn := &bperrors.CollectingWarnSink{}
	bp, err := parseBlueprintSource(data, warn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return
	}
	fmt.Println(bp.String())
	for _, w := range warn.Messages {
		fmt.Println("warning:", w)
	}
}
