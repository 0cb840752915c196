package main

import (
	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

type scoresFile struct {
	UserID string                    `json:"user_id,omitempty"`
	Scores []types.MovementTestScore `json:"scores"`
}

func newScreenCmd(a *app) *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Score a movement screening and pick the training pathway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc scoresFile
			if _, err := readDocument(cmd, inputPath, schemadocs.MovementScores, &doc); err != nil {
				return err
			}

			result, err := pipeline.Screen(doc.Scores, a.options(0))
			if err != nil {
				return err
			}
			a.logger.Debug("movement screening scored", "total", result.Total, "pathway", result.Pathway)
			if a.printer != nil {
				a.printer.PrintScreening(&result)
			}
			return writeJSON(cmd, outputPath, result)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the movement scores JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the screening result JSON (default stdout)")

	if err := cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	return cmd
}
