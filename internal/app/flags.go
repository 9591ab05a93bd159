package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int

	Width   int
	Height  int
	Rule    int
	Prune   bool
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "eca-graph", Scale: 3, TPS: 30, Seed: 42, HUDWidth: 220, Width: 256, Height: 256, Rule: 30}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (eca-graph or eca-tape)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial windows")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "number of generations kept on screen")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram code in [0,255]")
	fs.BoolVar(&c.Prune, "prune", c.Prune, "prune inactive boundary cells every generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial window, or \"random\"")
}

// SimConfig converts the flags into the string map simulation factories take.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"rule":  strconv.Itoa(c.Rule),
		"prune": strconv.FormatBool(c.Prune),
	}
	if c.Pattern != "" {
		cfg["pattern"] = c.Pattern
	}
	return cfg
}
