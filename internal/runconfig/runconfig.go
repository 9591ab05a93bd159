// Package runconfig loads and validates the YAML run file used by the eca
// command.
package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"unbounded-ca/pkg/eca"
)

// Symbols selects the glyphs used to render active and inactive cells.
type Symbols struct {
	On  string `yaml:"on"`
	Off string `yaml:"off"`
}

// Run configures a single simulation.
type Run struct {
	Rule        int    `yaml:"rule"`
	Engine      string `yaml:"engine"`
	Generations int    `yaml:"generations"`
	// Pattern is the initial window ("" = single active cell), see eca.ParseWindow.
	Pattern string `yaml:"pattern,omitempty"`
	// Center is the index of the center cell in Pattern; negative picks the middle.
	Center int `yaml:"center"`
	// Prune trims inactive boundary runs after each generation (graph engine).
	Prune   bool    `yaml:"prune"`
	Symbols Symbols `yaml:"symbols"`
	// MaxCells stops the run once the window exceeds this many cells (0 = no cap).
	MaxCells int `yaml:"max_cells"`
}

// Verify configures the representation-equivalence sweep.
type Verify struct {
	Seed        int64 `yaml:"seed"`
	Windows     int   `yaml:"windows"`
	MaxWidth    int   `yaml:"max_width"`
	Generations int   `yaml:"generations"`
	Workers     int   `yaml:"workers"`
	// Rules limits the sweep; empty means all 256 rules.
	Rules []int `yaml:"rules,omitempty"`
}

// Config is the top-level run file.
type Config struct {
	Run    Run    `yaml:"run"`
	Verify Verify `yaml:"verify"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Run: Run{
			Rule:        30,
			Engine:      string(eca.EngineGraph),
			Generations: 16,
			Center:      -1,
			Symbols:     Symbols{On: "#", Off: "."},
		},
		Verify: Verify{
			Seed:        1,
			Windows:     8,
			MaxWidth:    16,
			Generations: 64,
			Workers:     4,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks both sections.
func (c Config) Validate() error {
	if err := c.Run.Validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := c.Verify.Validate(); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return nil
}

// Validate rejects settings no automaton can be built from.
func (r Run) Validate() error {
	if _, err := eca.NewRule(r.Rule); err != nil {
		return err
	}
	engine, err := eca.ParseEngine(r.Engine)
	if err != nil {
		return err
	}
	if r.Generations < 0 {
		return fmt.Errorf("generations must be >= 0, got %d", r.Generations)
	}
	if r.MaxCells < 0 {
		return fmt.Errorf("max_cells must be >= 0, got %d", r.MaxCells)
	}
	if r.Prune && engine != eca.EngineGraph {
		return fmt.Errorf("prune requires the %s engine", eca.EngineGraph)
	}
	if r.Symbols.On == "" || r.Symbols.Off == "" {
		return errors.New("symbols.on and symbols.off must be non-empty")
	}
	if _, err := r.Window(); err != nil {
		return err
	}
	return nil
}

// Automaton builds the configured automaton.
func (r Run) Automaton() (eca.Automaton, error) {
	rule, err := eca.NewRule(r.Rule)
	if err != nil {
		return nil, err
	}
	engine, err := eca.ParseEngine(r.Engine)
	if err != nil {
		return nil, err
	}
	w, err := r.Window()
	if err != nil {
		return nil, err
	}
	return eca.New(engine, rule, w)
}

// Window parses the initial window.
func (r Run) Window() (eca.Window, error) {
	if r.Pattern == "" {
		return eca.SingleActive(), nil
	}
	return eca.ParseWindow(r.Pattern, r.Center)
}

// Validate rejects sweeps that cannot run.
func (v Verify) Validate() error {
	if v.Windows < 1 {
		return fmt.Errorf("windows must be >= 1, got %d", v.Windows)
	}
	if v.MaxWidth < 1 {
		return fmt.Errorf("max_width must be >= 1, got %d", v.MaxWidth)
	}
	if v.Generations < 1 {
		return fmt.Errorf("generations must be >= 1, got %d", v.Generations)
	}
	if v.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", v.Workers)
	}
	for _, code := range v.Rules {
		if _, err := eca.NewRule(code); err != nil {
			return err
		}
	}
	return nil
}

// RuleSet returns the rules to sweep.
func (v Verify) RuleSet() []eca.Rule {
	if len(v.Rules) == 0 {
		rules := make([]eca.Rule, 256)
		for i := range rules {
			rules[i] = eca.Rule(i)
		}
		return rules
	}
	rules := make([]eca.Rule, len(v.Rules))
	for i, code := range v.Rules {
		rules[i] = eca.MustRule(code)
	}
	return rules
}
