package cli

import "github.com/spf13/cobra"

// rosterCmd prints the effective roster, which makes the built-in demo a
// starting point for custom roster files.
func rosterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the roster as YAML (the built-in demo unless --roster is set)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			raw, err := r.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
