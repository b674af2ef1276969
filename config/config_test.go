package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intcode.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[gravity]
target = 1234

[search]
workers = 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(1234), cfg.Gravity.Target)
	assert.Equal(t, int32(12), cfg.Gravity.Noun)
	assert.Equal(t, int32(2), cfg.Gravity.Verb)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, int32(100), cfg.Search.Limit)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[search]
limit = 0
workers = 0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search.limit")
	assert.Contains(t, err.Error(), "search.workers")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[search\nlimit = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}
