// Package sweep cross-checks the graph and tape representations against the
// reference step over many rules and initial windows.
package sweep

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"unbounded-ca/pkg/core"
	"unbounded-ca/pkg/eca"
)

// Options controls a sweep.
type Options struct {
	Rules       []eca.Rule
	Seed        int64
	Windows     int
	MaxWidth    int
	Generations int
	Workers     int
}

// Mismatch records the first generation at which a representation diverged
// from the reference for one case.
type Mismatch struct {
	Rule       eca.Rule
	Window     string
	Engine     string
	Generation int
	Want       string
	Got        string
	WantCenter int
	GotCenter  int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s window %s %s gen %d: want %s@%d got %s@%d",
		m.Rule, m.Window, m.Engine, m.Generation, m.Want, m.WantCenter, m.Got, m.GotCenter)
}

// Report summarizes a sweep.
type Report struct {
	ID         uuid.UUID
	Cases      int
	Steps      int
	Mismatches []Mismatch
}

// OK reports whether every case agreed.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Windows returns the initial windows checked for rule: the single active
// cell followed by n-1 random windows. The random windows depend only on seed
// and rule, never on scheduling.
func Windows(rule eca.Rule, seed int64, n, maxWidth int) []eca.Window {
	windows := []eca.Window{eca.SingleActive()}
	rng := core.NewRNG(seed*256 + int64(rule))
	for len(windows) < n {
		windows = append(windows, rng.Window(1+rng.Source().IntN(max(maxWidth, 1))))
	}
	return windows
}

// Run checks every rule in opts concurrently. Invariant violations abort the
// sweep with an error; divergences are collected into the report.
func Run(ctx context.Context, opts Options) (Report, error) {
	report := Report{ID: uuid.New()}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for _, rule := range opts.Rules {
		g.Go(func() error {
			for _, w := range Windows(rule, opts.Seed, opts.Windows, opts.MaxWidth) {
				if err := ctx.Err(); err != nil {
					return err
				}
				mm, err := Check(rule, w, opts.Generations)
				if err != nil {
					return fmt.Errorf("%s window %s: %w", rule, eca.FormatStates(w.States, "1", "0"), err)
				}
				mu.Lock()
				report.Cases++
				report.Steps += opts.Generations
				report.Mismatches = append(report.Mismatches, mm...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	slices.SortStableFunc(report.Mismatches, func(a, b Mismatch) int {
		return int(a.Rule) - int(b.Rule)
	})
	return report, nil
}

// Check runs one case for n generations. The graph and the tape must match
// the reference exactly; for rules that keep the quiescent background
// inactive, a graph pruned after every generation must match the trimmed
// reference.
func Check(rule eca.Rule, w eca.Window, n int) ([]Mismatch, error) {
	graph, err := eca.NewGraph(rule, w)
	if err != nil {
		return nil, err
	}
	tape, err := eca.NewTape(rule, w)
	if err != nil {
		return nil, err
	}
	var pruned *eca.Graph
	if !rule.Apply(false, false, false) {
		if pruned, err = eca.NewGraph(rule, w); err != nil {
			return nil, err
		}
	}

	ref := slices.Clone(w.States)
	center := w.Center
	label := eca.FormatStates(w.States, "1", "0")
	var out []Mismatch
	done := map[string]bool{}
	compare := func(engine string, gen int, want []bool, wantCenter int, got []bool, gotCenter int) {
		if done[engine] || (slices.Equal(want, got) && wantCenter == gotCenter) {
			return
		}
		done[engine] = true
		out = append(out, Mismatch{
			Rule: rule, Window: label, Engine: engine, Generation: gen,
			Want: eca.FormatStates(want, "1", "0"), WantCenter: wantCenter,
			Got: eca.FormatStates(got, "1", "0"), GotCenter: gotCenter,
		})
	}

	for gen := 1; gen <= n; gen++ {
		next, grewLeft, _ := eca.Next(rule, ref)
		ref = next
		if grewLeft {
			center++
		}
		if err := graph.Update(); err != nil {
			return out, err
		}
		if err := graph.CheckLinks(); err != nil {
			return out, err
		}
		if err := tape.Update(); err != nil {
			return out, err
		}
		gs, gc := graph.States()
		compare(string(eca.EngineGraph), gen, ref, center, gs, gc)
		ts, tc := tape.States()
		compare(string(eca.EngineTape), gen, ref, center, ts, tc)

		if pruned == nil {
			continue
		}
		if err := pruned.Update(); err != nil {
			return out, err
		}
		if _, err := pruned.Prune(); err != nil {
			return out, err
		}
		if err := pruned.CheckLinks(); err != nil {
			return out, err
		}
		want, wantCenter := Trim(ref, center)
		ps, pc := pruned.States()
		compare("pruned-graph", gen, want, wantCenter, ps, pc)
	}
	return out, nil
}

// Trim drops the inactive runs at both ends of states, never past center,
// and returns the remaining states with the adjusted center index.
func Trim(states []bool, center int) ([]bool, int) {
	lo := 0
	for lo < center && !states[lo] {
		lo++
	}
	hi := len(states) - 1
	for hi > center && !states[hi] {
		hi--
	}
	return states[lo : hi+1], center - lo
}
