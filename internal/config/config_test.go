package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPathDefaultsWhenNoFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)

	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)

	assert.Equal(t, absDir, cfg.ProjectRoot)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.True(t, cfg.WantsImplicitAction())
}

func TestLoadFromPathReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "theme: dark\nformat: json\nimplicit_action: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.WantsImplicitAction())
}

func TestLoadFromPathWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	content := "theme: light\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFromPath(nested)
	require.NoError(t, err)

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, absRoot, cfg.ProjectRoot)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadFromPathRejectsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	content := "theme: nonexistent\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	_, err := LoadFromPath(dir)
	require.Error(t, err)
}

func TestLoadFromPathRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	content := "format: xml\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	_, err := LoadFromPath(dir)
	require.Error(t, err)
}
