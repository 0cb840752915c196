package main

import (
	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a 12-week running plan from running quiz answers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc answersFile
			if _, err := readDocument(cmd, inputPath, schemadocs.QuizAnswers, &doc); err != nil {
				return err
			}

			result, err := pipeline.PlanRun(doc.Answers, a.options(0))
			if err != nil {
				return err
			}
			a.logger.Debug("running plan generated", "persona", result.Persona.ID, "weeks", len(result.Plan.Weeks))
			if a.printer != nil {
				a.printer.PrintTrainingPlan(&result)
			}
			return writeJSON(cmd, outputPath, result)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the running answers JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the plan JSON (default stdout)")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}
