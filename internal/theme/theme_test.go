package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantTheme *Theme
		wantError bool
	}{
		{name: "get default theme", themeName: "default", wantTheme: defaultTheme},
		{name: "get dark theme", themeName: "dark", wantTheme: darkTheme},
		{name: "get light theme", themeName: "light", wantTheme: lightTheme},
		{name: "get nonexistent theme", themeName: "nonexistent", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.themeName)
			if (err != nil) != tt.wantError {
				t.Errorf("Get(%q) error = %v, wantError %v", tt.themeName, err, tt.wantError)
				return
			}
			if got != tt.wantTheme {
				t.Errorf("Get(%q) = %v, want %v", tt.themeName, got, tt.wantTheme)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	current = nil
	defer func() { current = nil }()

	tests := []struct {
		name      string
		themeName string
		wantError bool
	}{
		{name: "load default theme", themeName: "default"},
		{name: "load dark theme", themeName: "dark"},
		{name: "load nonexistent theme", themeName: "nonexistent", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(tt.themeName)
			if (err != nil) != tt.wantError {
				t.Errorf("Load(%q) error = %v, wantError %v", tt.themeName, err, tt.wantError)
				return
			}
			if tt.wantError {
				return
			}
			expected, _ := Get(tt.themeName)
			if current != expected {
				t.Errorf("After Load(%q), current = %v, want %v", tt.themeName, current, expected)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	current = nil
	defer func() { current = nil }()

	t.Run("returns default theme when none loaded", func(t *testing.T) {
		if got := Current(); got != defaultTheme {
			t.Errorf("Current() = %v, want %v", got, defaultTheme)
		}
	})

	t.Run("returns dark theme after loading", func(t *testing.T) {
		if err := Load("dark"); err != nil {
			t.Fatalf("Load(\"dark\") failed: %v", err)
		}
		if got := Current(); got != darkTheme {
			t.Errorf("After Load(\"dark\"), Current() = %v, want %v", got, darkTheme)
		}
	})
}

func TestAvailable(t *testing.T) {
	got := Available()
	expected := []string{"dark", "default", "light"}

	if len(got) != len(expected) {
		t.Fatalf("Available() returned %d themes, want %d", len(got), len(expected))
	}
	for i, name := range expected {
		if got[i] != name {
			t.Errorf("Available()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestDefaultThemeColors(t *testing.T) {
	tests := []struct {
		name string
		got  lipgloss.Color
		want lipgloss.Color
	}{
		{"Primary", defaultTheme.Primary, lipgloss.Color("99")},
		{"Secondary", defaultTheme.Secondary, lipgloss.Color("170")},
		{"Success", defaultTheme.Success, lipgloss.Color("42")},
		{"Error", defaultTheme.Error, lipgloss.Color("196")},
		{"Warning", defaultTheme.Warning, lipgloss.Color("3")},
		{"Muted", defaultTheme.Muted, lipgloss.Color("240")},
		{"Border", defaultTheme.Border, lipgloss.Color("240")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("defaultTheme.%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestMethodColor(t *testing.T) {
	if got := MethodColor("GET"); got != lipgloss.Color("42") {
		t.Errorf("MethodColor(GET) = %q, want 42", got)
	}
	if got := MethodColor("TRACE"); got != defaultTheme.Muted {
		t.Errorf("MethodColor(TRACE) = %q, want fallback to Muted", got)
	}
}
