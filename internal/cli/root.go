// Package cli implements the zoo command line: run a roster through a
// simulated day, validate rosters, and browse archived reports.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zoocore/internal/config"
	"zoocore/internal/logging"
	"zoocore/internal/roster"
)

const serviceName = "zoo"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		os.Exit(1)
	}
}

// deps holds the process-level collaborators so tests can replace them.
type deps struct {
	getenv    func(string) string
	newLogger func(level, format string) (*zap.Logger, error)
	now       func() time.Time
}

func defaultDeps() deps {
	return deps{
		getenv: os.Getenv,
		newLogger: func(level, format string) (*zap.Logger, error) {
			return logging.New(level, format, serviceName)
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// app is the state shared by subcommands once flags and environment are
// resolved.
type app struct {
	deps       deps
	rosterPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d}
	cmd := &cobra.Command{
		Use:          "zoo",
		Short:        "Run a zoo roster through a simulated day",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&a.rosterPath, "roster", "r", "", "roster YAML file (default: built-in demo)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides "+config.EnvLogLevel+")")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "json|console (overrides "+config.EnvLogFormat+")")

	cmd.AddCommand(runCmd(a), validateCmd(a), speciesCmd(a), rosterCmd(a), historyCmd(a))
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.FromLookup(a.deps.getenv)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	logger, err := a.deps.newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) loadRoster() (*roster.Roster, error) {
	if a.rosterPath == "" {
		return roster.Demo(), nil
	}
	return roster.Load(a.rosterPath)
}
