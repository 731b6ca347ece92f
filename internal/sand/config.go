package sand

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TerrainConfig shapes the ground profile laid down on Reset.
type TerrainConfig struct {
	// Base is the mean surface row as a fraction of the grid height.
	Base       float64 `yaml:"base"`
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
	GoldChance float64 `yaml:"gold_chance"`

	// Roughness adds Perlin noise of this amplitude (in cells) on top of the sine wave.
	Roughness      float64 `yaml:"roughness"`
	RoughnessScale float64 `yaml:"roughness_scale"`
}

// Config controls the sand simulation.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	BlockSize   int  `yaml:"block_size"`
	Tool        Kind `yaml:"tool"`
	BrushRadius int  `yaml:"brush_radius"`

	Terrain TerrainConfig `yaml:"terrain"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     128,
		Height:    128,
		Seed:      1337,
		BlockSize: 3,
		Tool:      Sand,
		Terrain: TerrainConfig{
			Base:           0.7,
			Amplitude:      6,
			Wavelength:     48,
			GoldChance:     0.02,
			RoughnessScale: 0.08,
		},
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read sand config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse sand config %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.BlockSize <= 0 {
		c.BlockSize = d.BlockSize
	}
	if c.BrushRadius < 0 {
		c.BrushRadius = 0
	}
	if c.Terrain.GoldChance < 0 {
		c.Terrain.GoldChance = 0
	}
	if c.Terrain.Roughness < 0 {
		c.Terrain.Roughness = 0
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Malformed values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overrides c with the recognised keys of cfg. Malformed values are
// ignored.
func (c *Config) Apply(cfg map[string]string) {
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["block_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BlockSize = parsed
		}
	}
	if v, ok := cfg["tool"]; ok {
		if parsed, err := ParseKind(v); err == nil {
			c.Tool = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	if v, ok := cfg["gold_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.GoldChance = parsed
		}
	}
	if v, ok := cfg["roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.Roughness = parsed
		}
	}
	if v, ok := cfg["amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Terrain.Amplitude = parsed
		}
	}
	if v, ok := cfg["wavelength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Terrain.Wavelength = parsed
		}
	}
}
