// Package eca simulates elementary cellular automata on an unbounded tape of
// which only a finite, growing window is materialized.
package eca

import (
	"fmt"
	"strings"
)

// Automaton is the behavior shared by the graph and tape representations.
// Given the same rule and window both produce identical generations.
type Automaton interface {
	Rule() Rule
	// Update advances the automaton by exactly one generation.
	Update() error
	// States returns the window in left-to-right order and the index of the
	// center (root) cell within it.
	States() ([]bool, int)
	Format(on, off string) string
	Len() int
	Generation() int
	CenterColumn(n int) ([]bool, error)
	CenterColumnValue(n int) (uint64, error)
}

// Engine selects an Automaton representation.
type Engine string

const (
	// EngineGraph selects the linked cell graph.
	EngineGraph Engine = "graph"
	// EngineTape selects the centered two-sided tape.
	EngineTape Engine = "tape"
)

// ParseEngine accepts "graph" or "tape" in any case.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case EngineGraph, EngineTape:
		return e, nil
	}
	return "", fmt.Errorf("unknown engine %q (want %q or %q)", s, EngineGraph, EngineTape)
}

// New constructs an automaton of the given engine.
func New(engine Engine, r Rule, w Window) (Automaton, error) {
	switch engine {
	case EngineGraph:
		return NewGraph(r, w)
	case EngineTape:
		return NewTape(r, w)
	}
	return nil, fmt.Errorf("unknown engine %q", engine)
}

var (
	_ Automaton = (*Graph)(nil)
	_ Automaton = (*Tape)(nil)
)

type centerSampler interface {
	centerState() bool
	Update() error
}

// sampleCenter records the center state before each of n updates.
func sampleCenter(a centerSampler, n int) ([]bool, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", ErrInvalidState, n)
	}
	bits := make([]bool, 0, n)
	for i := 0; i < n; i++ {
		bits = append(bits, a.centerState())
		if err := a.Update(); err != nil {
			return bits, err
		}
	}
	return bits, nil
}

func sampleCenterValue(a centerSampler, n int) (uint64, error) {
	if n > 64 {
		return 0, fmt.Errorf("%w: %d bits requested", ErrSampleWidth, n)
	}
	bits, err := sampleCenter(a, n)
	if err != nil {
		return 0, err
	}
	return PackBits(bits), nil
}
