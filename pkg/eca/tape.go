package eca

import (
	"fmt"
	"slices"
)

// Tape is the array representation of an unbounded automaton. The window is
// split at its center: right[0] is the center cell and right grows to the
// right; left[0] is the cell just left of center and left grows to the left.
// The physical window is reverse(left) followed by right.
type Tape struct {
	rule Rule
	gen  int

	left, right         []bool
	nextLeft, nextRight []bool
}

// NewTape builds a tape holding w, centered on w.Center.
func NewTape(r Rule, w Window) (*Tape, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	left := slices.Clone(w.States[:w.Center])
	slices.Reverse(left)
	return &Tape{
		rule:  r,
		left:  left,
		right: slices.Clone(w.States[w.Center:]),
	}, nil
}

// Rule returns the transition rule.
func (t *Tape) Rule() Rule { return t.rule }

// Len returns the number of materialized cells.
func (t *Tape) Len() int { return len(t.left) + len(t.right) }

// Generation returns how many updates have been applied.
func (t *Tape) Generation() int { return t.gen }

// Center returns the state of the center cell.
func (t *Tape) Center() bool { return t.centerState() }

// Update rewrites both halves from the previous generation and appends a cell
// to either side when the rule activates the implicit cell beyond it.
func (t *Tape) Update() error {
	if len(t.right) == 0 {
		return fmt.Errorf("%w: empty window", ErrInvalidState)
	}
	r := t.rule
	nl, nr := len(t.left), len(t.right)

	right := t.nextRight[:0]
	for i, c := range t.right {
		var l, rt bool
		if i > 0 {
			l = t.right[i-1]
		} else if nl > 0 {
			l = t.left[0]
		}
		if i+1 < nr {
			rt = t.right[i+1]
		}
		right = append(right, r.Apply(l, c, rt))
	}
	if r.ExtendsRight(t.right[nr-1]) {
		right = append(right, true)
	}

	left := t.nextLeft[:0]
	for i, c := range t.left {
		var l, rt bool
		if i+1 < nl {
			l = t.left[i+1]
		}
		if i > 0 {
			rt = t.left[i-1]
		} else {
			rt = t.right[0]
		}
		left = append(left, r.Apply(l, c, rt))
	}
	outer := t.right[0]
	if nl > 0 {
		outer = t.left[nl-1]
	}
	if r.ExtendsLeft(outer) {
		left = append(left, true)
	}

	t.nextLeft, t.left = t.left, left
	t.nextRight, t.right = t.right, right
	t.gen++
	return nil
}

// States returns the window in left-to-right order and the center's index.
func (t *Tape) States() ([]bool, int) {
	states := make([]bool, 0, t.Len())
	for i := len(t.left) - 1; i >= 0; i-- {
		states = append(states, t.left[i])
	}
	states = append(states, t.right...)
	return states, len(t.left)
}

// Format renders the window using on and off for active and inactive cells.
func (t *Tape) Format(on, off string) string {
	states, _ := t.States()
	return FormatStates(states, on, off)
}

func (t *Tape) String() string { return t.Format("1", "0") }

// CenterColumn samples the center state before each of n updates and returns
// the samples oldest first.
func (t *Tape) CenterColumn(n int) ([]bool, error) { return sampleCenter(t, n) }

// CenterColumnValue packs CenterColumn(n) into an integer whose most
// significant of the n bits is the first sample.
func (t *Tape) CenterColumnValue(n int) (uint64, error) { return sampleCenterValue(t, n) }

func (t *Tape) centerState() bool {
	if len(t.right) == 0 {
		return false
	}
	return t.right[0]
}
