// Package theme provides color theming for the apiblueprint CLI.
package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a complete color palette for the CLI and TUI.
type Theme struct {
	Primary   lipgloss.Color // headers, group/resource titles
	Secondary lipgloss.Color // cursors, selections
	Success   lipgloss.Color // 2xx responses
	Error     lipgloss.Color // 4xx/5xx responses, parse errors
	Warning   lipgloss.Color // recoverable warnings
	Muted     lipgloss.Color // descriptions, dim text
	Border    lipgloss.Color // tree borders
}

var defaultTheme = &Theme{
	Primary:   lipgloss.Color("99"),
	Secondary: lipgloss.Color("170"),
	Success:   lipgloss.Color("42"),
	Error:     lipgloss.Color("196"),
	Warning:   lipgloss.Color("3"),
	Muted:     lipgloss.Color("240"),
	Border:    lipgloss.Color("240"),
}

var darkTheme = &Theme{
	Primary:   lipgloss.Color("141"),
	Secondary: lipgloss.Color("213"),
	Success:   lipgloss.Color("46"),
	Error:     lipgloss.Color("196"),
	Warning:   lipgloss.Color("226"),
	Muted:     lipgloss.Color("243"),
	Border:    lipgloss.Color("238"),
}

var lightTheme = &Theme{
	Primary:   lipgloss.Color("55"),
	Secondary: lipgloss.Color("125"),
	Success:   lipgloss.Color("28"),
	Error:     lipgloss.Color("160"),
	Warning:   lipgloss.Color("136"),
	Muted:     lipgloss.Color("246"),
	Border:    lipgloss.Color("250"),
}

var themes = map[string]*Theme{
	"default": defaultTheme,
	"dark":    darkTheme,
	"light":   lightTheme,
}

// methodColors maps an HTTP method to the color its actions render in, in
// the TUI browser's action list.
var methodColors = map[string]lipgloss.Color{
	"GET":    lipgloss.Color("42"),
	"POST":   lipgloss.Color("99"),
	"PUT":    lipgloss.Color("136"),
	"PATCH":  lipgloss.Color("214"),
	"DELETE": lipgloss.Color("196"),
	"HEAD":   lipgloss.Color("240"),
}

// MethodColor returns the color for an HTTP method, falling back to Muted
// for methods the palette doesn't distinguish.
func MethodColor(method string) lipgloss.Color {
	if c, ok := methodColors[method]; ok {
		return c
	}
	return defaultTheme.Muted
}

var current *Theme

// Get returns the theme with the given name.
func Get(name string) (*Theme, error) {
	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return t, nil
}

// Load loads the theme with the given name as the current theme.
func Load(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

// Current returns the currently active theme, defaulting when none loaded.
func Current() *Theme {
	if current == nil {
		return defaultTheme
	}
	return current
}

// Available returns a sorted list of all available theme names.
func Available() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
