package ui

import (
	"fmt"
	"strconv"

	"unbounded-ca/internal/core"
)

// panel is the text model behind the HUD: one row per adjustable control,
// a selection cursor, and the read-only parameters of the last snapshot.
type panel struct {
	controls []core.ParameterControl
	values   []int
	known    []bool
	selected int
	snapshot core.ParameterSnapshot
}

func newPanel(sim core.Sim) *panel {
	p := &panel{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		p.controls = provider.ParameterControls()
	}
	p.values = make([]int, len(p.controls))
	p.known = make([]bool, len(p.controls))
	return p
}

// refresh reads control values out of snap.
func (p *panel) refresh(snap core.ParameterSnapshot) {
	p.snapshot = snap
	for i, c := range p.controls {
		p.known[i] = false
		param, ok := snap.Lookup(c.Key)
		if !ok || param.Type != core.ParamTypeInt {
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			continue
		}
		p.values[i], p.known[i] = v, true
	}
}

// selectNext moves the cursor by delta rows, wrapping around.
func (p *panel) selectNext(delta int) {
	n := len(p.controls)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// nudge moves the selected control by direction steps through setter and
// reports whether the value changed.
func (p *panel) nudge(setter core.IntParameterSetter, direction int) bool {
	if setter == nil || direction == 0 || len(p.controls) == 0 || !p.known[p.selected] {
		return false
	}
	c := p.controls[p.selected]
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := c.Clamp(p.values[p.selected] + direction*step)
	if target == p.values[p.selected] || !setter.SetIntParameter(c.Key, target) {
		return false
	}
	p.values[p.selected] = target
	return true
}

func (p *panel) lines() []string {
	var out []string
	adjustable := map[string]bool{}
	for i, c := range p.controls {
		adjustable[c.Key] = true
		cursor := "  "
		if i == p.selected {
			cursor = "> "
		}
		value := "--"
		if p.known[i] {
			value = strconv.Itoa(p.values[i])
		}
		out = append(out, fmt.Sprintf("%s%s: %s", cursor, c.Label, value))
	}
	for _, g := range p.snapshot.Groups {
		out = append(out, g.Name)
		for _, param := range g.Params {
			if adjustable[param.Key] {
				continue
			}
			out = append(out, fmt.Sprintf("  %s: %s", param.Label, param.Value))
		}
	}
	return out
}
