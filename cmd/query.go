package cmd

import (
	"fmt"

	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/blueprint"
)

// QueryCmd runs a single indexed lookup expression against a Blueprint file
// and prints whatever it resolves to: a group, resource, action, or a list
// of actions for a URI-prefix lookup.
type QueryCmd struct {
	File string `arg:"" help:"Blueprint file to parse"`
	Key  string `arg:"" help:"Query key: \">group>resource>action\", \"/path[:METHOD]\", or a bare group name"`
}

// Run executes the query command.
func (c *QueryCmd) Run() error {
	data, err := readFile(c.File)
	if err != nil {
		return err
	}

	warn := &bperrors.CollectingWarnSink{}
	bp, err := parseBlueprintSource(data, warn)
	if err != nil {
		return err
	}

	result, err := bp.Lookup(c.Key)
	if err != nil {
		return err
	}

	switch v := result.(type) {
	case []*blueprint.Action:
		for _, a := range v {
			fmt.Println(a.String())
		}
	case fmt.Stringer:
		fmt.Println(v.String())
	default:
		fmt.Printf("%v\n", v)
	}
	return nil
}
