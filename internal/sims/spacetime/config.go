package spacetime

import (
	"strconv"

	"unbounded-ca/pkg/eca"
)

// PatternRandom seeds the window with random states on every Reset.
const PatternRandom = "random"

// Config holds parameters for the space-time diagram.
type Config struct {
	Width  int
	Height int
	Rule   int
	Engine eca.Engine
	// Prune trims decayed boundary cells after every step (graph engine only).
	Prune bool
	// Pattern is the initial window; empty means a single active cell.
	Pattern string
	// RandomWidth is the window width used with PatternRandom.
	RandomWidth int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 30, Engine: eca.EngineGraph, RandomWidth: 32}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["engine"]; ok {
		if parsed, err := eca.ParseEngine(v); err == nil {
			c.Engine = parsed
		}
	}
	if v, ok := cfg["prune"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Prune = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["random_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RandomWidth = parsed
		}
	}
	return c
}
