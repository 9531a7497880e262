package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const configFile = "viewer.toml"

// Config holds the viewer settings. Every field has a default, so the
// config file is optional.
type Config struct {
	Mesh         string     `toml:"mesh"`
	Title        string     `toml:"title"`
	Width        int        `toml:"width"`
	Height       int        `toml:"height"`
	TargetWidth  int        `toml:"target_width"`
	TargetHeight int        `toml:"target_height"`
	VSync        bool       `toml:"vsync"`
	FovY         float32    `toml:"fov_y"`
	Aspect       float32    `toml:"aspect"`
	Near         float32    `toml:"near"`
	Far          float32    `toml:"far"`
	ClearColor   [4]float32 `toml:"clear_color"`
}

func DefaultConfig() Config {
	return Config{
		Mesh:         "test.obj",
		Title:        "Hello, world",
		Width:        640,
		Height:       480,
		TargetWidth:  800,
		TargetHeight: 600,
		VSync:        true,
		FovY:         1.5,
		Aspect:       4.0 / 3.0,
		Near:         0.01,
		Far:          100,
		ClearColor:   [4]float32{0.2, 0.2, 0.2, 1},
	}
}

// LoadConfig decodes path over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings that would produce a degenerate window or
// projection matrix.
func (c Config) Validate() error {
	switch {
	case c.Mesh == "":
		return errors.New("mesh path is empty")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.TargetWidth <= 0 || c.TargetHeight <= 0:
		return fmt.Errorf("target size %dx%d must be positive", c.TargetWidth, c.TargetHeight)
	case c.FovY <= 0 || c.FovY >= math.Pi:
		return fmt.Errorf("fov_y %v must be in (0, pi)", c.FovY)
	case c.Aspect <= 0:
		return fmt.Errorf("aspect %v must be positive", c.Aspect)
	case c.Near <= 0 || c.Near >= c.Far:
		return fmt.Errorf("near %v and far %v must satisfy 0 < near < far", c.Near, c.Far)
	}
	return nil
}
