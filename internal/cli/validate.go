package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that a roster builds (steps are not run)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			z, err := r.Build()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d animals, %d enclosures, %d staff, %d steps)\n",
				z.Name(), len(z.Animals()), len(z.Enclosures()), len(z.Staff()), len(r.Steps))
			return nil
		},
	}
}
