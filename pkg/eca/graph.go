package eca

import (
	"fmt"
	"slices"
)

// CellID addresses a cell within a Graph. IDs are stable for the lifetime of
// the cell and may be reused after the cell is pruned.
type CellID int32

// NoCell marks an absent neighbor.
const NoCell CellID = -1

// Side names one end of the window.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Cell is a read-only view of a graph cell and its neighbor links.
type Cell struct {
	State bool
	Left  CellID
	Right CellID
}

type cell struct {
	state       bool
	left, right CellID
	live        bool
}

// Graph is the linked-cell representation of an unbounded automaton. Cells
// live in an arena and refer to their neighbors by CellID; the root cell is
// the anchor every traversal starts from and is never pruned.
type Graph struct {
	rule  Rule
	cells []cell
	free  []CellID
	root  CellID
	live  int
	gen   int

	order []CellID
	snap  []bool
	buf   []bool
}

// NewGraph builds a graph holding w, rooted at w.Center.
func NewGraph(r Rule, w Window) (*Graph, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	g := &Graph{rule: r, root: NoCell}
	prev := NoCell
	for i, s := range w.States {
		id := g.alloc(s)
		if prev != NoCell {
			g.cells[prev].right = id
			g.cells[id].left = prev
		}
		if i == w.Center {
			g.root = id
		}
		prev = id
	}
	return g, nil
}

// InitializeSingleActiveCell resets g to a lone active root cell.
func (g *Graph) InitializeSingleActiveCell() {
	g.cells = g.cells[:0]
	g.free = g.free[:0]
	g.live = 0
	g.gen = 0
	g.root = g.alloc(true)
}

// Rule returns the transition rule.
func (g *Graph) Rule() Rule { return g.rule }

// Root returns the anchor cell.
func (g *Graph) Root() CellID { return g.root }

// Len returns the number of materialized cells.
func (g *Graph) Len() int { return g.live }

// Generation returns how many updates have been applied.
func (g *Graph) Generation() int { return g.gen }

// Cell returns the cell addressed by id.
func (g *Graph) Cell(id CellID) (Cell, bool) {
	if !g.valid(id) {
		return Cell{}, false
	}
	c := g.cells[id]
	return Cell{State: c.state, Left: c.left, Right: c.right}, true
}

// Update advances the graph one generation. States are snapshotted in a first
// pass, so no cell ever observes a neighbor's new state; the second pass
// commits them and materializes boundary cells. On error nothing is mutated.
func (g *Graph) Update() error {
	order, _, err := g.walk()
	if err != nil {
		return err
	}
	snap := g.snap[:0]
	for _, id := range order {
		snap = append(snap, g.cells[id].state)
	}
	p := makePlan(g.rule, snap, g.buf)
	g.snap, g.buf = snap, p.next

	for i, id := range order {
		g.cells[id].state = p.next[i]
	}
	if p.growLeft {
		g.attach(order[0], Left, true)
	}
	if p.growRight {
		g.attach(order[len(order)-1], Right, true)
	}
	g.gen++
	return nil
}

// Extend materializes a cell in state beyond the given end of the window.
// It returns NoCell if the graph holds no window.
func (g *Graph) Extend(side Side, state bool) CellID {
	if !g.valid(g.root) {
		return NoCell
	}
	end := g.root
	for {
		next := g.neighbor(end, side)
		if next == NoCell {
			break
		}
		end = next
	}
	return g.attach(end, side, state)
}

// Cells returns the window's cells in left-to-right order and the root's
// index within them. It panics if the links are corrupt.
func (g *Graph) Cells() ([]CellID, int) {
	order, rootIdx := g.mustWalk()
	return slices.Clone(order), rootIdx
}

// States returns the window's states in left-to-right order and the root's
// index.
func (g *Graph) States() ([]bool, int) {
	order, rootIdx := g.mustWalk()
	states := make([]bool, len(order))
	for i, id := range order {
		states[i] = g.cells[id].state
	}
	return states, rootIdx
}

// Format renders the window using on and off for active and inactive cells.
func (g *Graph) Format(on, off string) string {
	states, _ := g.States()
	return FormatStates(states, on, off)
}

func (g *Graph) String() string { return g.Format("1", "0") }

// Prune trims the maximal run of inactive cells from each end of the window,
// stopping at the root. It returns the number of cells removed. Calling it
// again without an intervening Update removes nothing.
func (g *Graph) Prune() (int, error) {
	order, rootIdx, err := g.walk()
	if err != nil {
		return 0, err
	}
	lo := 0
	for lo < rootIdx && !g.cells[order[lo]].state {
		lo++
	}
	hi := len(order) - 1
	for hi > rootIdx && !g.cells[order[hi]].state {
		hi--
	}
	if lo > 0 {
		g.cells[order[lo]].left = NoCell
	}
	if hi < len(order)-1 {
		g.cells[order[hi]].right = NoCell
	}
	removed := 0
	for _, id := range order[:lo] {
		g.release(id)
		removed++
	}
	for _, id := range order[hi+1:] {
		g.release(id)
		removed++
	}
	return removed, nil
}

// CheckLinks verifies that every live cell is reachable from the root exactly
// once and that all neighbor links are symmetric.
func (g *Graph) CheckLinks() error {
	order, _, err := g.walk()
	if err != nil {
		return err
	}
	if len(order) != g.live {
		return fmt.Errorf("%w: %d cells reachable, %d live", ErrLinkSymmetry, len(order), g.live)
	}
	seen := make([]bool, len(g.cells))
	for _, id := range order {
		if seen[id] {
			return fmt.Errorf("%w: cell %d reached twice", ErrLinkSymmetry, id)
		}
		seen[id] = true
	}
	for id, c := range g.cells {
		if c.live && !seen[id] {
			return fmt.Errorf("%w: cell %d unreachable", ErrLinkSymmetry, id)
		}
	}
	return nil
}

// CenterColumn samples the root state before each of n updates.
func (g *Graph) CenterColumn(n int) ([]bool, error) { return sampleCenter(g, n) }

// CenterColumnValue is CenterColumn packed into an integer, first sample
// most significant.
func (g *Graph) CenterColumnValue(n int) (uint64, error) { return sampleCenterValue(g, n) }

func (g *Graph) centerState() bool {
	if !g.valid(g.root) {
		return false
	}
	return g.cells[g.root].state
}

// walk lists the window left to right, checking link symmetry on every hop.
// The returned slice is scratch owned by g.
func (g *Graph) walk() ([]CellID, int, error) {
	if !g.valid(g.root) {
		return nil, 0, fmt.Errorf("%w: empty window", ErrInvalidState)
	}
	order := g.order[:0]
	for id := g.root; ; {
		next := g.cells[id].left
		if next == NoCell {
			break
		}
		if !g.valid(next) || g.cells[next].right != id || len(order) >= g.live {
			return nil, 0, fmt.Errorf("%w: left of cell %d", ErrLinkSymmetry, id)
		}
		order = append(order, next)
		id = next
	}
	slices.Reverse(order)
	rootIdx := len(order)
	order = append(order, g.root)
	for id := g.root; ; {
		next := g.cells[id].right
		if next == NoCell {
			break
		}
		if !g.valid(next) || g.cells[next].left != id || len(order) >= g.live {
			return nil, 0, fmt.Errorf("%w: right of cell %d", ErrLinkSymmetry, id)
		}
		order = append(order, next)
		id = next
	}
	g.order = order
	return order, rootIdx, nil
}

func (g *Graph) mustWalk() ([]CellID, int) {
	order, rootIdx, err := g.walk()
	if err != nil {
		panic(err)
	}
	return order, rootIdx
}

func (g *Graph) neighbor(id CellID, side Side) CellID {
	if side == Left {
		return g.cells[id].left
	}
	return g.cells[id].right
}

// attach links a new cell on the given side of end, which must be a boundary
// cell on that side.
func (g *Graph) attach(end CellID, side Side, state bool) CellID {
	id := g.alloc(state)
	if side == Left {
		g.cells[end].left = id
		g.cells[id].right = end
	} else {
		g.cells[end].right = id
		g.cells[id].left = end
	}
	return id
}

func (g *Graph) alloc(state bool) CellID {
	c := cell{state: state, left: NoCell, right: NoCell, live: true}
	g.live++
	if n := len(g.free); n > 0 {
		id := g.free[n-1]
		g.free = g.free[:n-1]
		g.cells[id] = c
		return id
	}
	g.cells = append(g.cells, c)
	return CellID(len(g.cells) - 1)
}

func (g *Graph) release(id CellID) {
	g.cells[id] = cell{left: NoCell, right: NoCell}
	g.free = append(g.free, id)
	g.live--
}

func (g *Graph) valid(id CellID) bool {
	return id >= 0 && int(id) < len(g.cells) && g.cells[id].live
}
