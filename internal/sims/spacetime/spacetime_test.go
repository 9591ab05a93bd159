package spacetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unbounded-ca/internal/core"
	"unbounded-ca/pkg/eca"
)

func row(d *Diagram, y int) []uint8 {
	w := d.Size().W
	return d.Cells()[y*w : (y+1)*w]
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w": "64", "h": "32", "rule": "90", "engine": "tape",
		"prune": "true", "pattern": "1.1", "random_width": "-3",
	})
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 32, c.Height)
	assert.Equal(t, 90, c.Rule)
	assert.Equal(t, eca.EngineTape, c.Engine)
	assert.True(t, c.Prune)
	assert.Equal(t, "1.1", c.Pattern)
	assert.Equal(t, DefaultConfig().RandomWidth, c.RandomWidth)

	bad := FromMap(map[string]string{"rule": "300", "engine": "ring", "w": "0"})
	assert.Equal(t, DefaultConfig(), bad)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	c := DefaultConfig()
	c.Rule = 256
	_, err := New(c)
	assert.ErrorIs(t, err, eca.ErrInvalidRule)

	c = DefaultConfig()
	c.Pattern = "1?1"
	_, err = New(c)
	assert.ErrorIs(t, err, eca.ErrInvalidState)

	c = DefaultConfig()
	c.Engine = "ring"
	_, err = New(c)
	assert.Error(t, err)
}

func TestDiagramScrollsHistory(t *testing.T) {
	for _, engine := range []eca.Engine{eca.EngineGraph, eca.EngineTape} {
		c := Config{Width: 7, Height: 4, Rule: 90, Engine: engine}
		d, err := New(c)
		require.NoError(t, err)
		assert.Equal(t, "eca-"+string(engine), d.Name())
		assert.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, row(d, 0))

		d.Step()
		d.Step()
		assert.Equal(t, []uint8{0, 1, 0, 0, 0, 1, 0}, row(d, 0))
		assert.Equal(t, []uint8{0, 0, 1, 0, 1, 0, 0}, row(d, 1))
		assert.Equal(t, []uint8{0, 0, 0, 1, 0, 0, 0}, row(d, 2))
		assert.Equal(t, make([]uint8, 7), row(d, 3))
	}
}

func TestDiagramClipsWideWindows(t *testing.T) {
	d, err := New(Config{Width: 3, Height: 2, Rule: 255, Engine: eca.EngineTape})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		d.Step()
	}
	assert.Equal(t, 11, d.Automaton().Len())
	assert.Equal(t, []uint8{1, 1, 1}, row(d, 0))
}

func TestDiagramPrune(t *testing.T) {
	d, err := New(Config{Width: 9, Height: 2, Rule: 1, Engine: eca.EngineGraph, Prune: true})
	require.NoError(t, err)
	d.Step()
	d.Step()
	d.Step()
	assert.Equal(t, 1, d.Automaton().Len())

	p, ok := d.Parameters().Lookup("cells")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
}

func TestDiagramRandomPatternIsSeeded(t *testing.T) {
	c := Config{Width: 40, Height: 8, Rule: 110, Engine: eca.EngineGraph, Pattern: PatternRandom, RandomWidth: 24}
	a, err := New(c)
	require.NoError(t, err)
	b, err := New(c)
	require.NoError(t, err)

	a.Reset(5)
	b.Reset(5)
	for i := 0; i < 6; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Cells(), b.Cells())
}

func TestSetIntParameterRestarts(t *testing.T) {
	d, err := New(Config{Width: 9, Height: 3, Rule: 30, Engine: eca.EngineGraph})
	require.NoError(t, err)
	d.Step()

	assert.True(t, d.SetIntParameter("rule", 255))
	assert.Zero(t, d.Automaton().Generation())
	assert.Equal(t, eca.MustRule(255), d.Automaton().Rule())

	assert.False(t, d.SetIntParameter("rule", 256))
	assert.False(t, d.SetIntParameter("width", 3))

	p, ok := d.Parameters().Lookup("rule")
	require.True(t, ok)
	assert.Equal(t, "255", p.Value)
	require.Len(t, d.ParameterControls(), 1)
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"eca-graph", "eca-tape"} {
		f, ok := core.Sims()[name]
		require.True(t, ok, name)
		sim, err := f(map[string]string{"w": "16", "h": "4"})
		require.NoError(t, err)
		assert.Equal(t, name, sim.Name())
		assert.Equal(t, core.Size{W: 16, H: 4}, sim.Size())
	}
}
