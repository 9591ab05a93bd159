//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"unbounded-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	rowHeight    = 16
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	rowColor        = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
// Up/Down select a control, Left/Right or [ and ] adjust it.
type HUD struct {
	sim    core.Sim
	width  int
	image  *ebiten.Image
	model  *panel
	setter core.IntParameterSetter
	title  string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, model: newPanel(sim), title: "Controls"}
	if sim != nil && sim.Name() != "" {
		h.title = strings.ToUpper(sim.Name())
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	return h
}

// Update refreshes the parameter snapshot and handles key presses.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	snap := core.ParameterSnapshot{}
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.model.refresh(snap)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		h.model.selectNext(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		h.model.selectNext(1)
	case justPressed(ebiten.KeyLeft, ebiten.KeyBracketLeft):
		h.model.nudge(h.setter, -1)
	case justPressed(ebiten.KeyRight, ebiten.KeyBracketRight):
		h.model.nudge(h.setter, 1)
	}
}

// Draw paints the panel at offsetX, as tall as the scaled simulation.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.image == nil || h.image.Bounds().Dy() != height {
		h.image = ebiten.NewImage(h.width, height)
	}
	h.image.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + rowHeight
	text.Draw(h.image, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.model.lines() {
		y += rowHeight
		text.Draw(h.image, line, face, panelPadding, y, rowColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.image, op)
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
