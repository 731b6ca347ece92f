//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"sandcastle/internal/app"
	"sandcastle/internal/metrics"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
	}
	sim, err := app.BuildSim(cfg, registerer(reg))
	if err != nil {
		log.Fatalf("build sim: %v", err)
	}
	if reg != nil {
		go func() {
			if err := metrics.Serve(cfg.MetricsAddr, reg); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(windowTitle(sim.Name()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// registerer avoids handing a typed nil registry to BuildSim.
func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}
