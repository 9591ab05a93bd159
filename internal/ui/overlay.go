//go:build ebiten

package ui

import (
	"fmt"

	"unbounded-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim        core.Sim
	showCenter bool
	showStats  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showStats: true}
}

// Update toggles the center marker (C) and the statistics line (I).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCenter = !o.showCenter
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showStats = !o.showStats
	}
}

// CenterColumn returns the viewport column to highlight, or -1.
func (o *Overlay) CenterColumn() int {
	if !o.showCenter {
		return -1
	}
	return o.sim.Size().W / 2
}

// Draw renders the statistics line.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showStats {
		return
	}
	provider, ok := o.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  gen %s  cells %s",
		value(snap, "rule", "rule"), value(snap, "generation", ""), value(snap, "cells", "")))
}

func value(snap core.ParameterSnapshot, key, prefix string) string {
	p, ok := snap.Lookup(key)
	if !ok {
		return "--"
	}
	if prefix != "" {
		return prefix + " " + p.Value
	}
	return p.Value
}
