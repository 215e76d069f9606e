package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "./config.yml"

// Config represents the optional config.yml. Every field is optional; the
// zero value keeps the built-in layout and chart style.
type Config struct {
	BaseDir string `yaml:"base_dir"`
	Chart   Chart  `yaml:"chart"`
}

type Chart struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	Color    string  `yaml:"color"`
}

// Load parses the YAML configuration file at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Chart.WidthIn < 0 || c.Chart.HeightIn < 0 {
		return nil, fmt.Errorf("%s: chart size must be positive", path)
	}
	slog.Info(fmt.Sprintf("Loaded config: %s", path))
	return &c, nil
}

// LoadDefault loads CONFIG_PATH (or ./config.yml). A missing file yields an
// empty Config.
func LoadDefault() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = DefaultPath
	}
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return c, err
}
