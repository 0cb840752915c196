package main

import (
	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
)

func newJourneyCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Run every quiz in one document concurrently",
		Long: `Reads a document with any of dating, running, nutrition, training_load and
screening, runs each step that has input and writes the combined result.
Nutrition needs running answers or an explicit training_load.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in pipeline.JourneyInput
			if _, err := readDocument(cmd, inputPath, "", &in); err != nil {
				return err
			}
			a.logger.Debug("running journey", "steps", in.Steps())

			result, err := pipeline.RunJourney(cmd.Context(), in, a.options(seed))
			if err != nil {
				return err
			}
			if a.printer != nil {
				a.printer.PrintProfile(result.Dating)
				a.printer.PrintTrainingPlan(result.Training)
				a.printer.PrintNutritionPlan(result.Nutrition)
				a.printer.PrintScreening(result.Screening)
			}
			return writeJSON(cmd, outputPath, result)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the journey JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the combined result JSON (default stdout)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for mindset shift selection (0 uses the configured seed)")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}
