package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zoocore/internal/archive"
	"zoocore/internal/config"
	"zoocore/internal/core"
	"zoocore/internal/logging"
	"zoocore/internal/roster"
)

func runCmd(a *app) *cobra.Command {
	var publish bool
	var metricsFile string
	var cleanlinessWarn int

	c := &cobra.Command{
		Use:   "run",
		Short: "Build the zoo, play the roster script, run the daily routine and print reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.loadRoster()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cleanliness-warn") {
				a.cfg.CleanlinessWarn = cleanlinessWarn
			}

			reg := prometheus.NewRegistry()
			metrics, err := core.NewPrometheusMetricsRecorder(reg)
			if err != nil {
				return err
			}
			audit := core.NewAuditLog()
			zooOpts := []core.Option{
				core.WithLogger(logging.NewAdapter(a.logger)),
				core.WithAuditRecorder(audit),
				core.WithMetricsRecorder(metrics),
			}
			if a.cfg.CleanlinessWarn > 0 {
				zooOpts = append(zooOpts, core.WithRules(core.NewCleanlinessRule(a.cfg.CleanlinessWarn)))
			}

			z, err := r.Build(roster.WithClock(a.deps.now), roster.WithZooOptions(zooOpts...))
			if err != nil {
				return err
			}
			outcomes, err := r.Apply(z)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOutcomes(out, outcomes)
			for _, animal := range z.Animals() {
				fmt.Fprintln(out, animal.MakeSound())
				fmt.Fprintln(out, animal.Eat())
				fmt.Fprintln(out, animal.Sleep())
			}

			routine := slices.Collect(z.DailyRoutine())
			fmt.Fprintln(out, "Daily routine:")
			for _, line := range routine {
				fmt.Fprintln(out, "  "+line)
			}
			printReports(out, z)

			if publish {
				if err := a.publish(cmd, z.Report(routine), audit); err != nil {
					return err
				}
			}
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			a.logger.Info("run complete",
				zap.String("zoo", z.Name()),
				zap.Int("steps", len(outcomes)),
				zap.Int("audit_failures", len(audit.Failures())))
			return nil
		},
	}
	c.Flags().BoolVar(&publish, "archive", false, "archive the report bundle to the store selected by "+config.EnvArchiveDriver)
	c.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	c.Flags().IntVar(&cleanlinessWarn, "cleanliness-warn", 0, "warn when admitting animals to enclosures below this cleanliness (overrides "+config.EnvCleanlinessWarn+")")
	return c
}

func (a *app) publish(cmd *cobra.Command, report core.Report, audit *core.AuditLog) error {
	store, err := archive.Open(cmd.Context(), a.cfg.Archive)
	if err != nil {
		return err
	}
	m, err := archive.NewPublisher(store, a.logger).Publish(cmd.Context(), report, audit)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Archived %d documents to %s (%s)\n", len(m.Objects), m.Prefix, store.Driver())
	return nil
}

func printOutcomes(out io.Writer, outcomes []roster.Outcome) {
	for _, o := range outcomes {
		fmt.Fprintln(out, o.String())
	}
}

func printSpecies(out io.Writer, z *core.Zoo) {
	fmt.Fprintln(out, "Animals by species:")
	for _, g := range z.AnimalsBySpecies() {
		fmt.Fprintf(out, "  %s (%d): %s\n", g.Species, g.Count(), strings.Join(g.Names, ", "))
	}
}

func printReports(out io.Writer, z *core.Zoo) {
	printSpecies(out, z)
	fmt.Fprintln(out, "Enclosures:")
	for _, line := range z.EnclosureStatusReport() {
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out, "Health:")
	health := z.HealthReport()
	if len(health) == 0 {
		fmt.Fprintln(out, "  No animals under treatment")
	}
	for _, line := range health {
		fmt.Fprintln(out, "  "+line)
	}
}
