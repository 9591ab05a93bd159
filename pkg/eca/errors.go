package eca

import "errors"

var (
	// ErrInvalidRule reports a rule code outside [0,255].
	ErrInvalidRule = errors.New("eca: invalid rule")
	// ErrInvalidState reports an empty or malformed window.
	ErrInvalidState = errors.New("eca: invalid state")
	// ErrLinkSymmetry reports a cell graph whose neighbor links disagree.
	// It always indicates a bug in the graph bookkeeping.
	ErrLinkSymmetry = errors.New("eca: link symmetry violation")
	// ErrSampleWidth reports a packed center-column request wider than 64 bits.
	ErrSampleWidth = errors.New("eca: sample width out of range")
)
