//go:build ebiten

package app

import (
	"image/color"
	"time"

	"unbounded-ca/internal/core"
	"unbounded-ca/internal/render"
	"unbounded-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	gp.Mark = color.RGBA{R: 220, G: 60, B: 60, A: 255}
	return &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(sim),
		hud:      ui.NewHUD(sim, hudWidth),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
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

	g.overlay.Update()
	g.hud.Update()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Column = g.overlay.CenterColumn()
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
