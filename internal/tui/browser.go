package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmarkovtsev/apiblueprint/internal/blueprint"
	"github.com/vmarkovtsev/apiblueprint/internal/theme"
)

// Run launches an interactive browser over bp: a MenuPicker of resource
// groups, whose selection opens a MenuPicker of that group's resources,
// whose selection opens a MenuPicker of that resource's actions. Selecting
// an action copies its method and URI to the clipboard and returns to the
// action list.
func Run(bp *blueprint.Blueprint) error {
	_, err := tea.NewProgram(groupMenu(bp)).Run()
	return err
}

func groupMenu(bp *blueprint.Blueprint) *MenuPicker {
	groups := bp.Groups()
	choices := make([]string, len(groups))
	for i, g := range groups {
		choices[i] = groupLabel(g)
	}

	m := NewMenuPicker(MenuConfig{
		Title:   bp.Name(),
		Choices: choices,
	})
	return m.WithSelectHandler(func(index int) (tea.Model, tea.Cmd) {
		return resourceMenu(bp, groups[index]), nil
	})
}

func resourceMenu(bp *blueprint.Blueprint, g *blueprint.ResourceGroup) *MenuPicker {
	resources := g.Resources()
	choices := make([]string, len(resources))
	for i, r := range resources {
		choices[i] = r.Name()
	}

	m := NewMenuPicker(MenuConfig{
		Title:   bp.Name() + " > " + groupLabel(g),
		Choices: choices,
	})
	return m.WithSelectHandler(func(index int) (tea.Model, tea.Cmd) {
		return actionMenu(bp, g, resources[index]), nil
	})
}

func actionMenu(bp *blueprint.Blueprint, g *blueprint.ResourceGroup, r *blueprint.Resource) *MenuPicker {
	actions := r.Actions()
	choices := make([]string, len(actions))
	for i, a := range actions {
		choices[i] = methodLabel(a.RequestMethod()) + " " + a.ID()
	}

	m := NewMenuPicker(MenuConfig{
		Title:   bp.Name() + " > " + groupLabel(g) + " > " + r.Name(),
		Choices: choices,
	})
	return m.WithSelectHandler(func(index int) (tea.Model, tea.Cmd) {
		copyActionURI(actions[index])
		return actionMenu(bp, g, r), nil
	})
}

func copyActionURI(a *blueprint.Action) {
	uri, err := a.URI()
	if err != nil {
		return
	}
	_ = clipboard.WriteAll(a.RequestMethod() + " " + uri)
}

func groupLabel(g *blueprint.ResourceGroup) string {
	if g.Name() == "" {
		return "(ungrouped)"
	}
	return g.Name()
}

func methodLabel(method string) string {
	style := ChoiceStyle().Foreground(theme.MethodColor(method)).Bold(true).PaddingLeft(0)
	return style.Render(fmt.Sprintf("%-6s", method))
}
