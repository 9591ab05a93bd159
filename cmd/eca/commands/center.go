package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"unbounded-ca/internal/printer"
	"unbounded-ca/internal/runconfig"
)

func newCenterCmd(a *app) *cobra.Command {
	var (
		flags   runconfig.Run
		samples int
		asInt   bool
	)
	cmd := &cobra.Command{
		Use:   "center",
		Short: "Sample the center column",
		Long: `center records the state of the center cell before each of n
generations and prints the samples oldest first, either as a bit string or
packed into an integer whose most significant bit is the first sample.`,
		Example: `  eca center --rule 30 -n 64 --int`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := a.cfg.Run
			overrideRun(cmd, &run, flags)
			run.Prune = false
			if err := run.Validate(); err != nil {
				return err
			}
			auto, err := run.Automaton()
			if err != nil {
				return err
			}
			a.logger.Info("sampling center column", "rule", run.Rule, "engine", run.Engine, "samples", samples)
			out := cmd.OutOrStdout()
			if asInt {
				v, err := auto.CenterColumnValue(samples)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, v)
				return err
			}
			bits, err := auto.CenterColumn(samples)
			if err != nil {
				return err
			}
			return printer.Bits(out, bits)
		},
	}
	bindRunFlags(cmd, &flags)
	cmd.Flags().IntVarP(&samples, "samples", "n", 8, "number of generations to sample")
	cmd.Flags().BoolVar(&asInt, "int", false, "pack the samples into an integer (at most 64)")
	return cmd
}
