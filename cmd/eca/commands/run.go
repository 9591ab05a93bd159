package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"unbounded-ca/internal/printer"
	"unbounded-ca/internal/runconfig"
)

type pruner interface {
	Prune() (int, error)
}

func newRunCmd(a *app) *cobra.Command {
	var flags runconfig.Run
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print successive generations as a space-time diagram",
		Example: `  eca run --rule 30 --generations 16
  eca run --rule 110 --engine tape --pattern '..#.#..'
  eca run --rule 90 --prune --on '1' --off '0'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := a.cfg.Run
			overrideRun(cmd, &run, flags)
			if err := run.Validate(); err != nil {
				return err
			}
			return a.simulate(cmd, run)
		},
	}
	bindRunFlags(cmd, &flags)
	cmd.Flags().BoolVar(&flags.Prune, "prune", false, "trim inactive boundary cells after every generation (graph engine)")
	cmd.Flags().StringVar(&flags.Symbols.On, "on", "#", "symbol for active cells")
	cmd.Flags().StringVar(&flags.Symbols.Off, "off", ".", "symbol for inactive cells")
	cmd.Flags().IntVar(&flags.Generations, "generations", 16, "number of generations to print after the initial one")
	cmd.Flags().IntVar(&flags.MaxCells, "max-cells", 0, "stop once the window exceeds this many cells (0 = no cap)")
	return cmd
}

// bindRunFlags registers the flags shared by commands that build an automaton.
func bindRunFlags(cmd *cobra.Command, flags *runconfig.Run) {
	cmd.Flags().IntVar(&flags.Rule, "rule", 30, "Wolfram code in [0,255]")
	cmd.Flags().StringVar(&flags.Engine, "engine", "graph", "representation: graph or tape")
	cmd.Flags().StringVar(&flags.Pattern, "pattern", "", "initial window, e.g. '..#.#' (default single active cell)")
	cmd.Flags().IntVar(&flags.Center, "center", -1, "index of the center cell in --pattern (default middle)")
}

// overrideRun copies explicitly set flags over the configured values.
func overrideRun(cmd *cobra.Command, run *runconfig.Run, flags runconfig.Run) {
	set := cmd.Flags().Changed
	if set("rule") {
		run.Rule = flags.Rule
	}
	if set("engine") {
		run.Engine = flags.Engine
	}
	if set("pattern") {
		run.Pattern = flags.Pattern
	}
	if set("center") {
		run.Center = flags.Center
	}
	if set("prune") {
		run.Prune = flags.Prune
	}
	if set("on") {
		run.Symbols.On = flags.Symbols.On
	}
	if set("off") {
		run.Symbols.Off = flags.Symbols.Off
	}
	if set("generations") {
		run.Generations = flags.Generations
	}
	if set("max-cells") {
		run.MaxCells = flags.MaxCells
	}
}

func (a *app) simulate(cmd *cobra.Command, run runconfig.Run) error {
	auto, err := run.Automaton()
	if err != nil {
		return err
	}
	log := a.logger.With("rule", run.Rule, "engine", run.Engine)
	log.Info("starting run", "generations", run.Generations, "cells", auto.Len())

	states, center := auto.States()
	rows := printer.NewRows(cmd.OutOrStdout(), run.Symbols.On, run.Symbols.Off, center+run.Generations)
	if err := rows.Write(0, states, center); err != nil {
		return err
	}
	for gen := 1; gen <= run.Generations; gen++ {
		if err := auto.Update(); err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}
		if run.Prune {
			if p, ok := auto.(pruner); ok {
				removed, err := p.Prune()
				if err != nil {
					return fmt.Errorf("generation %d: %w", gen, err)
				}
				if removed > 0 {
					log.Debug("pruned", "generation", gen, "removed", removed)
				}
			}
		}
		states, center = auto.States()
		if err := rows.Write(gen, states, center); err != nil {
			return err
		}
		if run.MaxCells > 0 && auto.Len() > run.MaxCells {
			log.Warn("window cap reached", "generation", gen, "cells", auto.Len(), "max_cells", run.MaxCells)
			break
		}
	}
	log.Info("run finished", "generation", auto.Generation(), "cells", auto.Len())
	return nil
}
