package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"sandcastle/internal/core"
	"sandcastle/internal/metrics"
	"sandcastle/internal/sand"
)

type recordable interface {
	SetRecorder(*metrics.Recorder)
}

// BuildSim constructs the configured simulation and resets it with the
// configured seed. A config file is only understood by the sand sim. When reg
// is non-nil and the sim supports it, a metrics recorder is attached.
func BuildSim(cfg *Config, reg prometheus.Registerer) (core.Sim, error) {
	var sim core.Sim
	if cfg.ConfigPath != "" {
		if cfg.Sim != "sand" {
			return nil, fmt.Errorf("sim %q does not accept a config file", cfg.Sim)
		}
		sc, err := sand.LoadConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		sc.Apply(cfg.Overrides)
		sim = sand.NewWithConfig(sc)
	} else {
		factory, err := core.Lookup(cfg.Sim)
		if err != nil {
			return nil, err
		}
		sim = factory(cfg.Overrides)
	}

	if reg != nil {
		if r, ok := sim.(recordable); ok {
			rec, err := metrics.NewRecorder(reg)
			if err != nil {
				return nil, fmt.Errorf("register metrics: %w", err)
			}
			r.SetRecorder(rec)
		}
	}
	sim.Reset(cfg.Seed)
	return sim, nil
}
