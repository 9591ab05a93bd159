package eca

import (
	"fmt"
	"strconv"
)

// Rule is an elementary automaton transition table encoded as a Wolfram code.
type Rule uint8

// NewRule validates code and returns the corresponding Rule.
func NewRule(code int) (Rule, error) {
	if code < 0 || code > 255 {
		return 0, fmt.Errorf("%w: %d not in [0,255]", ErrInvalidRule, code)
	}
	return Rule(code), nil
}

// MustRule is like NewRule but panics on an invalid code.
func MustRule(code int) Rule {
	r, err := NewRule(code)
	if err != nil {
		panic(err)
	}
	return r
}

// Code returns the integer Wolfram code.
func (r Rule) Code() int { return int(r) }

func (r Rule) String() string { return "rule " + strconv.Itoa(int(r)) }

// Apply returns the next state of a cell given its neighborhood.
func (r Rule) Apply(left, center, right bool) bool {
	idx := b2u(left)<<2 | b2u(center)<<1 | b2u(right)
	return (uint8(r)>>idx)&1 == 1
}

// ExtendsLeft reports whether the implicit inactive cell left of a boundary
// cell in state edge becomes active next generation.
func (r Rule) ExtendsLeft(edge bool) bool { return r.Apply(false, false, edge) }

// ExtendsRight is the mirror of ExtendsLeft.
func (r Rule) ExtendsRight(edge bool) bool { return r.Apply(edge, false, false) }

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
