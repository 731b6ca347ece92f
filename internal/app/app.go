//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"sandcastle/internal/core"
	"sandcastle/internal/render"
	"sandcastle/internal/sand"
	"sandcastle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// editable is implemented by sims that accept pointer edits.
type editable interface {
	PaintPixel(px, py int) int
	Editor() *sand.Editor
}

var toolKeys = [...]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2,
	ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	edit    editable
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep

	sky        color.RGBA
	viewW      int
	viewH      int
	renderOnly bool
	paused     bool
	tickOnce   bool
	seed       int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:        sim,
		painter:    render.NewPainter(size.W, size.H),
		hud:        ui.NewHUD(sim, cfg.HUDWidth),
		stepper:    core.NewFixedStep(cfg.SimHz),
		sky:        sand.Air.Color(),
		viewW:      cfg.ScreenW,
		viewH:      cfg.ScreenH,
		renderOnly: cfg.RenderOnly,
		seed:       cfg.Seed,
	}
	if e, ok := sim.(editable); ok {
		g.edit = e
		g.overlay = ui.NewOverlay(e.Editor())
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at its own rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.handleEdits()
	g.hud.Update(g.viewW)

	if g.renderOnly {
		return nil
	}
	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleEdits() {
	if g.edit == nil {
		return
	}
	ed := g.edit.Editor()
	for digit, key := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			ed.SelectHotkey(digit)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		ed.Pan(-sand.PanStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		ed.Pan(sand.PanStep, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ed.Pan(0, -sand.PanStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ed.Pan(0, sand.PanStep)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < g.viewW && my < g.viewH {
			g.edit.PaintPixel(mx, my)
		}
	}
	g.overlay.Update()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	view := screen.SubImage(image.Rect(0, 0, g.viewW, g.viewH)).(*ebiten.Image)
	blockSize, camera := 1, image.Point{}
	if g.edit != nil {
		blockSize = g.edit.Editor().BlockSize()
		camera = g.edit.Editor().Camera()
	}
	g.painter.Blit(view, g.sim.Cells(), g.sim.Palette(), blockSize, camera, g.sky)
	if g.overlay != nil {
		g.overlay.Draw(view)
	}
	g.hud.Draw(screen, g.viewW, g.viewH)
}

// Layout returns the logical screen size: the view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW + g.hud.Width(), g.viewH
}
