// Package metrics exposes Prometheus collectors for the simulation loop.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder tracks tick throughput, step latency, edits and per-material
// population. A nil *Recorder discards everything.
type Recorder struct {
	ticks      prometheus.Counter
	stepTime   prometheus.Histogram
	edits      *prometheus.CounterVec
	population *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sand",
			Name:      "ticks_total",
			Help:      "Number of simulation steps completed.",
		}),
		stepTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sand",
			Name:      "step_seconds",
			Help:      "Wall time spent in one simulation step.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sand",
			Name:      "edits_total",
			Help:      "Cells written by the editor, by material.",
		}, []string{"kind"}),
		population: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sand",
			Name:      "cells",
			Help:      "Cells currently holding each material.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{r.ticks, r.stepTime, r.edits, r.population} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveStep records one completed step and its duration.
func (r *Recorder) ObserveStep(d time.Duration) {
	if r == nil {
		return
	}
	r.ticks.Inc()
	r.stepTime.Observe(d.Seconds())
}

// AddEdits counts n cells painted with the named material.
func (r *Recorder) AddEdits(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.edits.WithLabelValues(kind).Add(float64(n))
}

// SetPopulation publishes the number of cells holding the named material.
func (r *Recorder) SetPopulation(kind string, n int) {
	if r == nil {
		return
	}
	r.population.WithLabelValues(kind).Set(float64(n))
}
