package spacetime

import (
	"fmt"
	"strconv"

	"unbounded-ca/internal/core"
	pkgcore "unbounded-ca/pkg/core"
	"unbounded-ca/pkg/eca"
)

type pruner interface {
	Prune() (int, error)
}

// Diagram projects an unbounded automaton onto a fixed viewport: the newest
// generation is drawn on the top row with the center cell in the middle
// column, and older generations scroll downwards.
type Diagram struct {
	cfg    Config
	rule   eca.Rule
	window eca.Window
	seed   int64

	auto eca.Automaton
	grid *core.ByteGrid
}

// New validates cfg and returns a diagram reset to its initial window.
func New(cfg Config) (*Diagram, error) {
	rule, err := eca.NewRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if _, err := eca.ParseEngine(string(cfg.Engine)); err != nil {
		return nil, err
	}
	d := &Diagram{cfg: cfg, rule: rule, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	if cfg.Pattern != "" && cfg.Pattern != PatternRandom {
		w, err := eca.ParseWindow(cfg.Pattern, -1)
		if err != nil {
			return nil, err
		}
		d.window = w
	}
	d.Reset(0)
	return d, nil
}

// Name returns the simulation identifier.
func (d *Diagram) Name() string { return "eca-" + string(d.cfg.Engine) }

// Size returns the viewport dimensions.
func (d *Diagram) Size() core.Size { return core.Size{W: d.grid.W, H: d.grid.H} }

// Cells exposes the render buffer.
func (d *Diagram) Cells() []uint8 { return d.grid.Cells() }

// Automaton exposes the underlying automaton.
func (d *Diagram) Automaton() eca.Automaton { return d.auto }

// Reset rebuilds the automaton from the configured initial window. The seed
// only matters for PatternRandom.
func (d *Diagram) Reset(seed int64) {
	d.seed = seed
	w := d.window
	switch {
	case d.cfg.Pattern == PatternRandom:
		w = pkgcore.NewRNG(seed).Window(d.cfg.RandomWidth)
	case d.cfg.Pattern == "":
		w = eca.SingleActive()
	}
	auto, err := eca.New(d.cfg.Engine, d.rule, w)
	if err != nil {
		panic(fmt.Sprintf("spacetime: reset: %v", err))
	}
	d.auto = auto
	d.grid.Clear()
	d.drawTop()
}

// Step computes the next generation and scrolls history downwards.
func (d *Diagram) Step() {
	if err := d.auto.Update(); err != nil {
		panic(fmt.Sprintf("spacetime: generation %d: %v", d.auto.Generation(), err))
	}
	if p, ok := d.auto.(pruner); ok && d.cfg.Prune {
		if _, err := p.Prune(); err != nil {
			panic(fmt.Sprintf("spacetime: prune: %v", err))
		}
	}
	d.grid.ScrollDown()
	d.drawTop()
}

func (d *Diagram) drawTop() {
	row := d.grid.Row(0)
	for i := range row {
		row[i] = 0
	}
	states, center := d.auto.States()
	offset := d.grid.W/2 - center
	for i, s := range states {
		x := i + offset
		if s && x >= 0 && x < len(row) {
			row[x] = 1
		}
	}
}

// Parameters reports the automaton settings and window statistics.
func (d *Diagram) Parameters() core.ParameterSnapshot {
	_, center := d.auto.States()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				intParam("rule", "Rule", d.rule.Code()),
				{Key: "engine", Label: "Engine", Type: core.ParamTypeString, Value: string(d.cfg.Engine)},
				{Key: "prune", Label: "Prune", Type: core.ParamTypeBool, Value: strconv.FormatBool(d.cfg.Prune)},
			},
		},
		{
			Name: "Window",
			Params: []core.Parameter{
				intParam("generation", "Generation", d.auto.Generation()),
				intParam("cells", "Cells", d.auto.Len()),
				intParam("center", "Center index", center),
			},
		},
	}}
}

// ParameterControls exposes the rule as a HUD control.
func (d *Diagram) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule", Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
	}
}

// SetIntParameter changes the rule and restarts from the initial window,
// since a rule is fixed for the lifetime of an automaton.
func (d *Diagram) SetIntParameter(key string, value int) bool {
	if key != "rule" {
		return false
	}
	rule, err := eca.NewRule(value)
	if err != nil {
		return false
	}
	d.rule = rule
	d.cfg.Rule = value
	d.Reset(d.seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	for _, engine := range []eca.Engine{eca.EngineGraph, eca.EngineTape} {
		core.Register("eca-"+string(engine), func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Engine = engine
			d, err := New(c)
			if err != nil {
				return nil, err
			}
			return d, nil
		})
	}
}
