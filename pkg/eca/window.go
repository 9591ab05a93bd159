package eca

import "fmt"

// Window is an initial materialized window with a designated center cell.
type Window struct {
	States []bool
	Center int
}

// SingleActive returns the common one-cell window holding an active cell.
func SingleActive() Window {
	return Window{States: []bool{true}, Center: 0}
}

// Validate reports ErrInvalidState for empty windows or an out-of-range center.
func (w Window) Validate() error {
	if len(w.States) == 0 {
		return fmt.Errorf("%w: empty window", ErrInvalidState)
	}
	if w.Center < 0 || w.Center >= len(w.States) {
		return fmt.Errorf("%w: center %d outside window of %d cells", ErrInvalidState, w.Center, len(w.States))
	}
	return nil
}

// ParseWindow reads a pattern such as "..#.#.." into a Window. '1', '*' and
// '#' are active; '0', '.', '_' and ' ' are inactive. A negative center
// selects the middle cell.
func ParseWindow(pattern string, center int) (Window, error) {
	states := make([]bool, 0, len(pattern))
	for i, ch := range pattern {
		switch ch {
		case '1', '*', '#':
			states = append(states, true)
		case '0', '.', '_', ' ':
			states = append(states, false)
		default:
			return Window{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidState, ch, i)
		}
	}
	if center < 0 {
		center = len(states) / 2
	}
	w := Window{States: states, Center: center}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}
