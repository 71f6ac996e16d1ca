package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"zoocore/internal/archive"
)

func historyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history [date]",
		Short: "List archived report days, or show the report archived on date (YYYY-MM-DD)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			store, err := archive.Open(cmd.Context(), a.cfg.Archive)
			if err != nil {
				return err
			}
			p := archive.NewPublisher(store, a.logger)
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				days, err := p.History(cmd.Context(), r.Zoo)
				if err != nil {
					return err
				}
				if len(days) == 0 {
					fmt.Fprintf(out, "No archived reports for %s\n", r.Zoo)
					return nil
				}
				for _, day := range days {
					fmt.Fprintln(out, day)
				}
				return nil
			}

			report, err := p.Fetch(cmd.Context(), r.Zoo, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s report generated %s\n", report.Zoo, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
			for _, line := range report.Enclosures {
				fmt.Fprintln(out, "  "+line)
			}
			for _, line := range report.Health {
				fmt.Fprintln(out, "  "+line)
			}
			return nil
		},
	}
}
