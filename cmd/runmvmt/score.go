package main

import (
	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

// answersFile is the quiz answers document accepted by score and plan.
type answersFile struct {
	UserID  string         `json:"user_id,omitempty"`
	Answers []types.Answer `json:"answers"`
}

func newScoreCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score dating quiz answers into a self-insight profile",
		Long: `Scores the dating self-insight quiz and builds the profile with its growth
priorities, plan blocks and mindset shifts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc answersFile
			if _, err := readDocument(cmd, inputPath, schemadocs.QuizAnswers, &doc); err != nil {
				return err
			}

			result, err := pipeline.ScoreDating(doc.Answers, a.options(seed))
			if err != nil {
				return err
			}
			a.logger.Debug("dating quiz scored", "attachment_style", result.Profile.AttachmentStyle)
			if a.printer != nil {
				a.printer.PrintProfile(&result)
			}
			return writeJSON(cmd, outputPath, result)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the answers JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the profile JSON (default stdout)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for mindset shift selection (0 uses the configured seed)")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}
