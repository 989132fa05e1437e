package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gradient.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Zero(t, cfg.InitialWidth)
	assert.Zero(t, cfg.InitialHeight)
	assert.False(t, cfg.LinearFilter())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
title = "MetroidVania"
initialWidth = 1200
initialHeight = 800
overlay = true
filter = "linear"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "MetroidVania", cfg.Title)
	assert.Equal(t, 1200, cfg.InitialWidth)
	assert.Equal(t, 800, cfg.InitialHeight)
	assert.True(t, cfg.Overlay)
	assert.True(t, cfg.LinearFilter())
	assert.Equal(t, "heap", cfg.Allocator, "defaults survive partial files")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "initialWidht = 10\n"))
	require.ErrorContains(t, err, "initialWidht")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "title = \n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative width":     func(c *Config) { c.InitialWidth, c.InitialHeight = -1, 10 },
		"half size":          func(c *Config) { c.InitialWidth = 10 },
		"allocator":          func(c *Config) { c.Allocator = "arena" },
		"filter":             func(c *Config) { c.Filter = "cubic" },
		"snapshot windowed":  func(c *Config) { c.Snapshot = "out.png" },
		"snapshot extension": func(c *Config) { c.Headless, c.Snapshot = true, "out.bmp" },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), name)
	}

	cfg := Default()
	cfg.Headless = true
	cfg.Snapshot = "OUT.WEBP"
	assert.NoError(t, cfg.Validate())
}
