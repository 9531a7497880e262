package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "viewer.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
mesh = "bunny.obj"
width = 1024
vsync = false
clear_color = [0.0, 0.0, 0.0, 1.0]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Mesh = "bunny.obj"
	want.Width = 1024
	want.VSync = false
	want.ClearColor = [4]float32{0, 0, 0, 1}
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  `colour = "red"`,
		"syntax":       `width = `,
		"bad fov":      `fov_y = 3.5`,
		"near too far": "near = 10.0\nfar = 1.0",
		"zero size":    `height = 0`,
		"empty mesh":   `mesh = ""`,
		"bad aspect":   `aspect = -1.0`,
		"zero target":  `target_width = 0`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
