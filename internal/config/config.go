package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Shadow ShadowConfig `yaml:"shadow"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type SceneConfig struct {
	Path string `yaml:"path"`
}

// ShadowConfig sets the defaults lights start from; individual lights
// override them through their own properties.
type ShadowConfig struct {
	Resolution int32   `yaml:"resolution"`
	Distance   float32 `yaml:"distance"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "lumen3d",
			TargetFPS: 120,
		},
		Scene: SceneConfig{
			Path: "assets/scenes/main.json",
		},
		Shadow: ShadowConfig{
			Resolution: 1024,
			Distance:   40,
		},
	}
}

// Load reads the yaml config at path over the defaults. A missing file is
// not an error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d is invalid", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS <= 0 {
		return fmt.Errorf("config: target_fps must be positive, got %d", c.Window.TargetFPS)
	}
	if c.Shadow.Resolution <= 0 {
		return fmt.Errorf("config: shadow resolution must be positive, got %d", c.Shadow.Resolution)
	}
	return nil
}
