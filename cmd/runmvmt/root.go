package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/config"
	"github.com/TheABX/runmvmtquiz-sub001/internal/logging"
	"github.com/TheABX/runmvmtquiz-sub001/internal/observability"
	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/report"
)

// pdfPrinter turns rendered report HTML into a PDF.
type pdfPrinter interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// app holds state shared by every command, filled in before a command runs.
type app struct {
	configPath string
	verbose    bool

	cfg     config.Config
	logger  *logging.Logger
	printer *observability.Printer
	pdf     pdfPrinter
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&app{})
}

func newRootCmdWith(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "runmvmt",
		Short: "Score self-insight quizzes and generate running, nutrition and movement plans",
		Long: `runmvmt scores the dating self-insight quiz, builds 12-week running plans
with matching nutrition plans, scores movement screenings and renders reports.
It also serves the same operations over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print detailed progress to stderr")

	rootCmd.AddCommand(
		newScoreCmd(a),
		newPlanCmd(a),
		newNutritionCmd(a),
		newScreenCmd(a),
		newJourneyCmd(a),
		newReportCmd(a),
		newBatchCmd(a),
		newServeCmd(a),
		newMigrateCmd(a),
		newResultsCmd(a),
	)
	return rootCmd
}

// setup resolves configuration and, in verbose mode, the logger and printer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Verbose {
		a.verbose = true
	}

	if a.logger == nil {
		a.logger = logging.Nop()
		if a.verbose {
			logger, err := logging.New(cfg.LogMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			a.logger = logger
		}
	}
	if a.verbose && a.printer == nil {
		a.printer = observability.NewPrinter(cmd.ErrOrStderr())
	}
	if a.pdf == nil {
		a.pdf = report.PDFPrinter{ChromePath: cfg.ChromePath, Timeout: cfg.ReportTimeoutDuration()}
	}
	return nil
}

// options builds pipeline options; seed overrides the configured mindset seed when non-zero.
func (a *app) options(seed uint64) pipeline.Options {
	if seed == 0 {
		seed = a.cfg.MindsetSeed
	}
	opts := pipeline.Options{Permuter: pipeline.SeededPermuter(seed)}
	if a.printer != nil {
		opts.OnProgress = a.printer.PrintProgress
	}
	return opts
}
