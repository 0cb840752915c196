package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheABX/runmvmtquiz-sub001/internal/report"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		kindName      string
		inputPath     string
		outputPath    string
		format        string
		nutritionPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a result document as an HTML or PDF report",
		Long: `Renders a profile, training or screening result as HTML. PDF output is
printed through headless Chrome and is chosen by --format pdf or a .pdf output path.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := report.ParseKind(kindName)
			if err != nil {
				return err
			}
			if format == "" {
				format = formatFor(outputPath)
			}
			if format != "html" && format != "pdf" {
				return fmt.Errorf("format must be html or pdf, got %q", format)
			}

			doc, err := readDocument(cmd, inputPath, kind.Schema(), nil)
			if err != nil {
				return err
			}

			var html string
			if nutritionPath != "" && kind == report.KindTraining {
				html, err = renderTrainingWithNutrition(cmd, doc, nutritionPath)
			} else {
				html, err = report.RenderHTML(kind, doc)
			}
			if err != nil {
				return err
			}

			if format == "html" {
				return writeOutput(cmd, outputPath, []byte(html))
			}
			a.logger.Debug("printing PDF report", "kind", kind, "timeout", a.cfg.ReportTimeoutDuration())
			pdf, err := a.pdf.Print(cmd.Context(), html)
			if err != nil {
				return err
			}
			return writeOutput(cmd, outputPath, pdf)
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "Report kind: profile, training or screening (required)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the result JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the report (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: html or pdf (default from the output extension)")
	cmd.Flags().StringVar(&nutritionPath, "nutrition", "", "Nutrition plan JSON to include in a training report")

	for _, name := range []string{"kind", "input"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	return cmd
}

// formatFor picks pdf for .pdf paths and html otherwise.
func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "pdf"
	}
	return "html"
}

func renderTrainingWithNutrition(cmd *cobra.Command, doc []byte, nutritionPath string) (string, error) {
	var r report.TrainingReport
	if err := json.Unmarshal(doc, &r); err != nil {
		return "", &report.RenderError{Message: "failed to decode training result", Cause: err}
	}
	var plan types.NutritionPlan
	if _, err := readDocument(cmd, nutritionPath, "", &plan); err != nil {
		return "", err
	}
	r.Nutrition = &plan
	return report.RenderTraining(r)
}
