package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"killerpack/internal/app"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := app.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "plain", cfg.Input)
	assert.Equal(t, []string{".txt"}, cfg.Extensions)
	assert.False(t, cfg.CheckPartition)
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*app.Config)
	}{
		{"missing input", func(c *app.Config) { c.Input = "" }},
		{"missing archive", func(c *app.Config) { c.Archive = "" }},
		{"same output paths", func(c *app.Config) { c.Index = c.Archive }},
		{"no extensions", func(c *app.Config) { c.Extensions = nil }},
		{"extension without dot", func(c *app.Config) { c.Extensions = []string{"txt"} }},
		{"unknown log level", func(c *app.Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := app.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "killerpack.yaml")
	body := "input: puzzles\nvalidate: true\nextensions: [\".txt\", \".cage\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", cfg.Input)
	assert.True(t, cfg.CheckPartition)
	assert.Equal(t, []string{".txt", ".cage"}, cfg.Extensions)
	assert.Equal(t, "lua/puzzles.bin", cfg.Archive)
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inptu: x\n"), 0o644))

	_, err := app.LoadConfig(path)
	assert.Error(t, err)
}

func TestWriteConfig_RoundTripAndNoOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), app.DefaultConfigFile)
	want := app.DefaultConfig()
	want.CheckPartition = true

	require.NoError(t, app.WriteConfig(path, want))
	got, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, app.WriteConfig(path, app.DefaultConfig()))
}
