package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "silent: true\nnotify_min_interval: 10s\n")

	loader, err := NewLoader(dir, DefaultFileName)
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Silent)
	assert.Equal(t, 10*time.Second, cfg.NotifyMinInterval)
	assert.False(t, cfg.Quiet, "unset fields keep defaults")
}

func TestLoaderMissingFile(t *testing.T) {
	loader, err := NewLoader(t.TempDir(), DefaultFileName)
	require.NoError(t, err)

	_, err = loader.Load()
	assert.Error(t, err)
}

func TestLoaderInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "silent: [unclosed\n")

	loader, err := NewLoader(dir, DefaultFileName)
	require.NoError(t, err)

	_, err = loader.Load()
	assert.Error(t, err)
}

func TestLoaderUnchangedContentsReturnCachedConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "quiet: true\n")

	changes := 0
	loader, err := NewLoader(dir, DefaultFileName, WithOnChange(func(*Config) {
		changes++
	}))
	require.NoError(t, err)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, changes)
}

func TestLoaderReloadOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "quiet: true\n")

	changes := 0
	loader, err := NewLoader(dir, DefaultFileName, WithOnChange(func(*Config) {
		changes++
	}))
	require.NoError(t, err)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Quiet)

	require.NoError(t, os.WriteFile(path, []byte("quiet: false\nsilent: true\n"), 0o644))

	cfg, err = loader.Load()
	require.NoError(t, err)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.Silent)
	assert.Equal(t, 2, changes)
}

func TestLoaderGet(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "silent: true\n")

	loader, err := NewLoader(dir, DefaultFileName)
	require.NoError(t, err)

	assert.Nil(t, loader.Get())

	_, err = loader.Load()
	require.NoError(t, err)
	assert.NotNil(t, loader.Get())
}

func TestLoadOrDefaultWithoutFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)

	assert.False(t, cfg.Silent)
	assert.Equal(t, 2*time.Second, cfg.NotifyMinInterval)
}

func TestLoadOrDefaultFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "silent: true\nquiet: true\n")

	t.Setenv("KICKER_QUIET", "false")

	cfg, err := LoadOrDefault(path)
	require.NoError(t, err)

	assert.True(t, cfg.Silent, "file value survives")
	assert.False(t, cfg.Quiet, "environment overrides the file")
}
