package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"unbounded-ca/internal/core"
	_ "unbounded-ca/internal/sims/spacetime"
)

func newSimsCmd(a *app) *cobra.Command {
	var describe bool
	cmd := &cobra.Command{
		Use:   "sims",
		Short: "List the simulations available to the viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range core.Names() {
				if !describe {
					fmt.Fprintln(out, name)
					continue
				}
				sim, err := core.Sims()[name](nil)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				provider, ok := sim.(core.ParameterProvider)
				if !ok {
					fmt.Fprintf(out, "%s: {}\n", name)
					continue
				}
				data, err := yaml.Marshal(map[string]core.ParameterSnapshot{name: provider.Parameters()})
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(data))
			}
			a.logger.Debug("listed sims", "count", len(core.Names()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "print each sim's default parameters as YAML")
	return cmd
}
