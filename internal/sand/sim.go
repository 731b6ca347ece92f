package sand

import (
	"image/color"
	"time"

	"sandcastle/internal/core"
	"sandcastle/internal/metrics"
)

// Simulation owns the live grid together with everything that acts on it:
// the tick counter, the rule RNG and the editor.
type Simulation struct {
	cfg Config

	grid    *Grid
	rng     *core.RNG
	editor  *Editor
	display []uint8
	tick    uint64
	seed    int64

	metrics *metrics.Recorder
}

// New returns a simulation of the given size using defaults.
func New(w, h int) *Simulation {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a simulation configured from cfg. The grid holds the
// generated terrain once this returns.
func NewWithConfig(cfg Config) *Simulation {
	cfg.normalize()
	g := NewGrid(cfg.Width, cfg.Height)
	size := g.Size()
	s := &Simulation{
		cfg:     cfg,
		grid:    g,
		editor:  NewEditor(cfg.BlockSize),
		display: make([]uint8, size.W*size.H),
	}
	s.editor.SetTool(cfg.Tool)
	s.editor.SetBrushRadius(cfg.BrushRadius)
	s.Reset(0)
	return s
}

// SetRecorder attaches a metrics recorder; nil detaches it.
func (s *Simulation) SetRecorder(r *metrics.Recorder) { s.metrics = r }

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Grid exposes the live grid for direct reads and edits between steps.
func (s *Simulation) Grid() *Grid { return s.grid }

// Editor exposes the input-to-edit translator.
func (s *Simulation) Editor() *Editor { return s.editor }

// Tick returns how many steps have run since the last Reset.
func (s *Simulation) Tick() uint64 { return s.tick }

// Seed returns the seed used by the last Reset.
func (s *Simulation) Seed() int64 { return s.seed }

// Cells exposes the palette-indexed display buffer, one byte per cell.
func (s *Simulation) Cells() []uint8 { return s.display }

// Palette maps display values to colors; index i is Kind(i).
func (s *Simulation) Palette() []color.RGBA { return palette }

var palette = buildPalette()

func buildPalette() []color.RGBA {
	p := make([]color.RGBA, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		p[k] = k.Color()
	}
	return p
}

// Reset regenerates the terrain. A zero seed falls back to the configured one.
func (s *Simulation) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.tick = 0
	s.rng = core.NewRNG(seed)
	GenerateTerrain(s.grid, s.cfg.Terrain, seed)
	s.refresh()
}

// Step advances the world by one tick and publishes the new grid.
func (s *Simulation) Step() {
	start := time.Now()
	next := Step(s.grid)
	s.grid.AdoptFrom(next)
	s.tick++
	s.refresh()
	s.metrics.ObserveStep(time.Since(start))
}

// SetCell places a fresh cell of kind k at (x, y). Out-of-bounds positions
// are ignored; unknown kinds are rejected.
func (s *Simulation) SetCell(x, y int, k Kind) error {
	c, err := NewCell(k, s.rng)
	if err != nil {
		return err
	}
	if s.grid.SetCell(x, y, c) {
		s.display[s.grid.index(x, y)] = uint8(k)
		s.metrics.AddEdits(k.String(), 1)
	}
	return nil
}

// PaintPixel paints the active tool under the pointer position (px, py).
func (s *Simulation) PaintPixel(px, py int) int {
	n := s.editor.PaintPixel(s.grid, px, py, s.rng)
	if n > 0 {
		s.refresh()
		s.metrics.AddEdits(s.editor.Tool().String(), n)
	}
	return n
}

func (s *Simulation) refresh() {
	var counts [kindCount]int
	for i, c := range s.grid.cells {
		s.display[i] = uint8(c.Kind)
		if c.Kind.Valid() {
			counts[c.Kind]++
		}
	}
	if s.metrics == nil {
		return
	}
	for k := Kind(0); k < kindCount; k++ {
		s.metrics.SetPopulation(k.String(), counts[k])
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
