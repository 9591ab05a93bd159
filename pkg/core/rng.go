package core

import (
	"math/rand/v2"

	"unbounded-ca/pkg/eca"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Rule returns a uniformly chosen Wolfram code.
func (r *RNG) Rule() eca.Rule {
	return eca.Rule(r.r.IntN(256))
}

// Window returns a random window of the given width centered on its middle
// cell. Widths below one are raised to one.
func (r *RNG) Window(width int) eca.Window {
	if width < 1 {
		width = 1
	}
	states := make([]bool, width)
	for i := range states {
		states[i] = r.Bool()
	}
	return eca.Window{States: states, Center: width / 2}
}

// CenteredWindow returns a window of the given width whose only active cell
// is the middle one, which is also the center.
func CenteredWindow(width int) eca.Window {
	if width < 1 {
		width = 1
	}
	states := make([]bool, width)
	states[width/2] = true
	return eca.Window{States: states, Center: width / 2}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
