package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string
	ConfigPath  string
	Seed        int64
	TPS         int
	SimHz       int
	ScreenW     int
	ScreenH     int
	HUDWidth    int
	RenderOnly  bool
	MetricsAddr string
	Overrides   Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "sand",
		TPS:       60,
		SimHz:     10,
		ScreenW:   640,
		ScreenH:   480,
		HUDWidth:  220,
		Overrides: Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file with simulation settings")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the configured seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input and frame updates per second")
	fs.IntVar(&c.SimHz, "sim-hz", c.SimHz, "simulation steps per second")
	fs.IntVar(&c.ScreenW, "screen-w", c.ScreenW, "view width in pixels")
	fs.IntVar(&c.ScreenH, "screen-h", c.ScreenH, "view height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.RenderOnly, "render-only", c.RenderOnly, "draw the world without stepping it")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.Var(&c.Overrides, "set", "simulation option in key=value form (repeatable)")
}

// Overrides collects repeatable key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	o[strings.TrimSpace(key)] = strings.TrimSpace(val)
	return nil
}
