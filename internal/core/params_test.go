package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Automaton", Params: []Parameter{{Key: "rule", Type: ParamTypeInt, Value: "30"}}},
		{Name: "Window", Params: []Parameter{{Key: "cells", Type: ParamTypeInt, Value: "7"}}},
	}}
	p, ok := snap.Lookup("cells")
	assert.True(t, ok)
	assert.Equal(t, "7", p.Value)
	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Key: "rule", Min: 0, Max: 255, HasMin: true, HasMax: true}
	assert.Equal(t, 0, c.Clamp(-4))
	assert.Equal(t, 255, c.Clamp(300))
	assert.Equal(t, 90, c.Clamp(90))

	open := ParameterControl{Key: "x"}
	assert.Equal(t, -4, open.Clamp(-4))
}
