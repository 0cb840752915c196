package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/training"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

// nutritionFile is the nutrition request document.
type nutritionFile struct {
	UserID    string                  `json:"user_id,omitempty"`
	Nutrition types.NutritionData     `json:"nutrition"`
	Load      *types.TrainingLoadData `json:"training_load,omitempty"`
}

func newNutritionCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		planPath   string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "nutrition",
		Short: "Generate a nutrition plan matched to a training load",
		Long: `Generates calorie targets, macros, meal suggestions and guidelines.
The training load comes from training_load in the input, or from the plan
written by the plan command.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc nutritionFile
			if _, err := readDocument(cmd, inputPath, schemadocs.NutritionRequest, &doc); err != nil {
				return err
			}

			load, err := resolveLoad(cmd, doc.Load, planPath)
			if err != nil {
				return err
			}

			plan, err := pipeline.PlanNutrition(doc.Nutrition, load, a.options(0))
			if err != nil {
				return err
			}
			a.logger.Debug("nutrition plan generated", "daily_calories", plan.DailyCalories)
			if a.printer != nil {
				a.printer.PrintNutritionPlan(&plan)
			}
			return writeJSON(cmd, outputPath, plan)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the nutrition request JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "Path to a training plan JSON file written by the plan command")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the nutrition plan JSON (default stdout)")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}

// resolveLoad prefers an explicit load, then the load stored in the plan file.
func resolveLoad(cmd *cobra.Command, explicit *types.TrainingLoadData, planPath string) (types.TrainingLoadData, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if planPath == "" {
		return types.TrainingLoadData{}, errors.New("either training_load in the input or --plan is required")
	}

	var result types.TrainingResult
	if _, err := readDocument(cmd, planPath, schemadocs.TrainingPlan, &result); err != nil {
		return types.TrainingLoadData{}, err
	}
	if result.Load == (types.TrainingLoadData{}) {
		return training.DeriveTrainingLoad(result.Plan), nil
	}
	return result.Load, nil
}
