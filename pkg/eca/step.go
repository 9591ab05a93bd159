package eca

// plan is one generation computed from a frozen snapshot of the window.
// Nothing in a plan aliases the automaton it was built from until commit.
type plan struct {
	next      []bool
	growLeft  bool
	growRight bool
}

// makePlan computes the generation following prev into buf, reusing its
// capacity. prev must be non-empty.
func makePlan(r Rule, prev []bool, buf []bool) plan {
	n := len(prev)
	if cap(buf) < n {
		buf = make([]bool, n)
	}
	buf = buf[:n]
	for i := range prev {
		var left, right bool
		if i > 0 {
			left = prev[i-1]
		}
		if i+1 < n {
			right = prev[i+1]
		}
		buf[i] = r.Apply(left, prev[i], right)
	}
	return plan{
		next:      buf,
		growLeft:  r.ExtendsLeft(prev[0]),
		growRight: r.ExtendsRight(prev[n-1]),
	}
}

// Next is the reference step: it returns the window following cur under r
// and whether a cell was materialized on either side. The result never
// aliases cur. An empty cur yields an empty result.
func Next(r Rule, cur []bool) (next []bool, grewLeft, grewRight bool) {
	if len(cur) == 0 {
		return nil, false, false
	}
	p := makePlan(r, cur, nil)
	next = make([]bool, 0, len(cur)+2)
	if p.growLeft {
		next = append(next, true)
	}
	next = append(next, p.next...)
	if p.growRight {
		next = append(next, true)
	}
	return next, p.growLeft, p.growRight
}
