package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"unbounded-ca/internal/printer"
	"unbounded-ca/internal/runconfig"
	"unbounded-ca/internal/sweep"
)

// errMismatch is returned when the representations disagree.
var errMismatch = errors.New("representations disagree")

func newVerifyCmd(a *app) *cobra.Command {
	var flags runconfig.Verify
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the graph and tape engines against the reference step",
		Example: `  eca verify
  eca verify --rules 30,90,110 --generations 256 --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.cfg.Verify
			set := cmd.Flags().Changed
			if set("seed") {
				v.Seed = flags.Seed
			}
			if set("windows") {
				v.Windows = flags.Windows
			}
			if set("max-width") {
				v.MaxWidth = flags.MaxWidth
			}
			if set("generations") {
				v.Generations = flags.Generations
			}
			if set("workers") {
				v.Workers = flags.Workers
			}
			if set("rules") {
				v.Rules = flags.Rules
			}
			if err := v.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rules := v.RuleSet()
			printer.Step(out, "checking %d rules × %d windows × %d generations", len(rules), v.Windows, v.Generations)
			report, err := sweep.Run(cmd.Context(), sweep.Options{
				Rules:       rules,
				Seed:        v.Seed,
				Windows:     v.Windows,
				MaxWidth:    v.MaxWidth,
				Generations: v.Generations,
				Workers:     v.Workers,
			})
			if err != nil {
				return err
			}
			a.logger.Info("sweep finished", "sweep_id", report.ID, "cases", report.Cases, "mismatches", len(report.Mismatches))
			if !report.OK() {
				details := make([]string, len(report.Mismatches))
				for i, m := range report.Mismatches {
					details[i] = m.String()
				}
				printer.Failure(out, fmt.Sprintf("%d of %d cases diverged", len(report.Mismatches), report.Cases), details)
				return errMismatch
			}
			printer.Success(out, "%d cases, %d generations: graph, tape and reference agree", report.Cases, report.Steps)
			return nil
		},
	}
	d := runconfig.Default().Verify
	cmd.Flags().Int64Var(&flags.Seed, "seed", d.Seed, "seed for random initial windows")
	cmd.Flags().IntVar(&flags.Windows, "windows", d.Windows, "initial windows per rule, the first being a single active cell")
	cmd.Flags().IntVar(&flags.MaxWidth, "max-width", d.MaxWidth, "maximum width of random windows")
	cmd.Flags().IntVar(&flags.Generations, "generations", d.Generations, "generations per case")
	cmd.Flags().IntVar(&flags.Workers, "workers", d.Workers, "rules checked concurrently")
	cmd.Flags().IntSliceVar(&flags.Rules, "rules", nil, "rules to check (default all 256)")
	return cmd
}
