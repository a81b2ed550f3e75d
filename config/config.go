// Package config loads the tile palette and label layout from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/milk9111/pathviz/tile"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Palette PaletteSpec `yaml:"palette"`
	Labels  LabelSpec   `yaml:"labels"`
}

type PaletteSpec struct {
	DefaultOutline  Color `yaml:"default_outline"`
	DefaultFill     Color `yaml:"default_fill"`
	ObstacleOutline Color `yaml:"obstacle_outline"`
	ObstacleFill    Color `yaml:"obstacle_fill"`
	SelectedOutline Color `yaml:"selected_outline"`
	SelectedFill    Color `yaml:"selected_fill"`
}

// LabelSpec places the F/G/H labels relative to the tile's top-left corner.
// Offsets are baselines in pixels.
type LabelSpec struct {
	Color       Color   `yaml:"color"`
	OffsetX     float64 `yaml:"offset_x"`
	FirstLineY  float64 `yaml:"first_line_y"`
	LineSpacing float64 `yaml:"line_spacing"`
}

// Default returns the embedded configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yaml: " + err.Error())
	}
	return cfg
}

// Parse decodes data on top of the defaults, so keys missing from data keep
// their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration file at path. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Labels.LineSpacing <= 0 {
		return fmt.Errorf("config: line_spacing must be positive, got %v", c.Labels.LineSpacing)
	}
	return nil
}

// TilePalette converts the palette section for use by tiles.
func (c Config) TilePalette() tile.Palette {
	p := c.Palette
	return tile.Palette{
		DefaultOutline:  p.DefaultOutline.Color,
		DefaultFill:     p.DefaultFill.Color,
		ObstacleOutline: p.ObstacleOutline.Color,
		ObstacleFill:    p.ObstacleFill.Color,
		SelectedOutline: p.SelectedOutline.Color,
		SelectedFill:    p.SelectedFill.Color,
	}
}
