// Package config handles apiblueprint configuration file loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmarkovtsev/apiblueprint/internal/theme"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the name of the apiblueprint configuration file.
	ConfigFileName = "apiblueprint.yaml"
	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = "text"
)

// Config holds the CLI's persistent configuration, loaded from
// apiblueprint.yaml.
type Config struct {
	// ProjectRoot is the directory apiblueprint.yaml was found in, or the
	// current directory when no file was found.
	ProjectRoot string `yaml:"-"`
	// Theme is the color theme name to use ("default", "dark", "light").
	Theme string `yaml:"theme"`
	// Format is the default rendering format for validate/query ("text" or
	// "json").
	Format string `yaml:"format"`
	// ImplicitAction controls whether a resource with no declared action
	// gets a synthetic one inheriting its method/template (see
	// blueprint.WithImplicitAction). Defaults to true.
	ImplicitAction *bool `yaml:"implicit_action"`
}

// Load searches for apiblueprint.yaml starting from the current working
// directory, walking up the directory tree. If not found, returns default
// configuration.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFromPath(cwd)
}

// LoadFromPath searches for apiblueprint.yaml starting from the given path,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %q: %w", startPath, err)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)
		if _, statErr := os.Stat(configPath); statErr == nil {
			cfg, parseErr := parseConfigFile(configPath)
			if parseErr != nil {
				return nil, parseErr
			}
			cfg.ProjectRoot = currentPath
			if validateErr := cfg.validate(); validateErr != nil {
				return nil, fmt.Errorf("invalid configuration in %s: %w", configPath, validateErr)
			}
			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return defaultConfig(absPath), nil
}

func defaultConfig(projectRoot string) *Config {
	enabled := true
	return &Config{
		ProjectRoot:    projectRoot,
		Theme:          "default",
		Format:         DefaultFormat,
		ImplicitAction: &enabled,
	}
}

func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.ImplicitAction == nil {
		enabled := true
		cfg.ImplicitAction = &enabled
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("format must be \"text\" or \"json\", got %q", c.Format)
	}
	if _, err := theme.Get(c.Theme); err != nil {
		return fmt.Errorf("invalid theme %q, available themes: %s", c.Theme, strings.Join(theme.Available(), ", "))
	}
	return nil
}

// WantsImplicitAction reports whether resources with no declared action
// should get a synthetic one, defaulting to true.
func (c *Config) WantsImplicitAction() bool {
	return c.ImplicitAction == nil || *c.ImplicitAction
}
