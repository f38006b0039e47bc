package cmd

import (
	"github.com/vmarkovtsev/apiblueprint/internal/bperrors"
	"github.com/vmarkovtsev/apiblueprint/internal/blueprint"
	"github.com/vmarkovtsev/apiblueprint/internal/etree"
	"github.com/vmarkovtsev/apiblueprint/internal/load"
)

func readFile(path string) ([]byte, error) {
	return load.FromFS(load.OSFS(), path)
}

// parseBlueprintSource runs the full pipeline (etree.Parse + blueprint.Parse)
// shared by every command that needs a parsed Blueprint.
func parseBlueprintSource(data []byte, warn bperrors.WarnSink) (*blueprint.Blueprint, error) {
	root := etree.Parse(data)
	return blueprint.Parse(root, blueprint.WithWarnSink(warn))
}
