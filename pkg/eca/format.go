package eca

import "strings"

// FormatStates renders states position for position using on and off.
func FormatStates(states []bool, on, off string) string {
	var b strings.Builder
	b.Grow(len(states) * max(len(on), len(off)))
	for _, s := range states {
		if s {
			b.WriteString(on)
			continue
		}
		b.WriteString(off)
	}
	return b.String()
}

// PackBits packs bits into an integer, the first bit being the most
// significant. Only the last 64 bits survive.
func PackBits(bits []bool) uint64 {
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b2u(b))
	}
	return v
}
