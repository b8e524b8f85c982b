package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/config"
	"github.com/rpgo/fire-planner/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags that are not settings keys.
type RootOptions struct {
	SettingsPath string
	Out          string
}

// app carries the initialized dependencies through the command tree.
type app struct {
	opts     RootOptions
	v        *viper.Viper
	settings *config.Settings
	logger   *zap.SugaredLogger
	engine   *calculation.PlanEngine
	parser   *config.InputParser
}

// NewRootCommand creates the root command with all global flags and subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper(), parser: config.NewInputParser()}

	cmd := &cobra.Command{
		Use:   "fireplan",
		Short: "FIRE corpus planner",
		Long: `fireplan projects a retirement corpus for financial independence.

It finds the corpus needed to fund inflation-adjusted withdrawals until the
planning horizon (optionally leaving an inheritance), the monthly investment
required to reach it, and a year-by-year simulation of both phases.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.SettingsPath, "settings", "", "settings file (YAML) for solver, logging and output defaults")
	pf.StringVarP(&a.opts.Out, "out", "o", "", "write output to this file instead of stdout (a directory for --format all)")
	pf.String("format", "", "output format (console, console-lite, json, csv, detailed-csv, html, pdf, all)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log encoding (console, json)")
	pf.String("corpus-step", "", "corpus search increment")
	pf.String("contribution-step", "", "monthly contribution search increment")
	pf.Int("max-iterations", 0, "iteration cap for each search (0 derives it from the plan)")
	pf.String("contribution-method", "", "contribution search method (step, closed_form)")

	for key, flag := range map[string]string{
		"output.format":       "format",
		"log.level":           "log-level",
		"log.format":          "log-format",
		"corpus_step":         "corpus-step",
		"contribution_step":   "contribution-step",
		"max_iterations":      "max-iterations",
		"contribution_method": "contribution-method",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(
		newPlanCmd(a),
		newFireCmd(a),
		newSimulateCmd(a),
		newExampleCmd(a),
		newServeCmd(a),
	)
	return cmd
}

// init loads settings, then builds the logger and the engine from them.
func (a *app) init() error {
	s, err := config.LoadSettings(a.v, a.opts.SettingsPath)
	if err != nil {
		return err
	}
	a.settings = s

	logger, err := logging.New(logging.Config{Level: s.Log.Level, Format: s.Log.Format})
	if err != nil {
		return err
	}
	a.logger = logger

	es, err := s.Engine()
	if err != nil {
		return err
	}
	engine, err := calculation.NewPlanEngineWithSettings(es)
	if err != nil {
		return err
	}
	engine.SetLogger(logger)
	a.engine = engine
	return nil
}

// write sends data to --out when given, otherwise to the command's stdout.
func (a *app) write(cmd *cobra.Command, data []byte) error {
	if a.opts.Out == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(a.opts.Out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.opts.Out, err)
	}
	a.logger.Infof("wrote %s", a.opts.Out)
	return nil
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// printf is a small helper so subcommands write to the configured stdout.
func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
