package cli

import "github.com/spf13/cobra"

func speciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List the roster's animals grouped by species",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			z, err := r.Build()
			if err != nil {
				return err
			}
			printSpecies(cmd.OutOrStdout(), z)
			return nil
		},
	}
}
