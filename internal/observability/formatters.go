// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", fit(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// fit truncates or pads line to width runes.
func fit(line string, width int) string {
	n := utf8.RuneCountInString(line)
	if n > width {
		runes := []rune(line)
		return string(runes[:width-3]) + "..."
	}
	return line + strings.Repeat(" ", width-n)
}

// wrap breaks text into lines of at most width runes at word boundaries.
func wrap(text string, width int) string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// PrintProgress outputs a single pipeline progress event.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProgress(e pipeline.ProgressEvent) {
	fmt.Fprintf(p.out, "[%s] %s\n", e.Step, e.Message)
}

// PrintProfile outputs the subscale scores, attachment style and growth priorities.
func (p *Printer) PrintProfile(result *types.DatingResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Attachment: %s\n\n", result.Profile.AttachmentStyle))

	for _, sub := range types.AllSubscales {
		sb.WriteString(fmt.Sprintf("  %-28s %.2f  %s\n", sub, result.Profile.Scores.Get(sub), result.Profile.Levels[sub]))
	}

	if len(result.Priorities) > 0 {
		sb.WriteString("\nGrowth priorities:\n")
		for _, priority := range result.Priorities {
			sb.WriteString(fmt.Sprintf("  • %s\n", priority))
		}
	}

	if len(result.Shifts) > 0 {
		sb.WriteString(fmt.Sprintf("\nMindset shifts: %d\n", len(result.Shifts)))
		count := min(len(result.Shifts), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Shifts[i].New))
		}
		if len(result.Shifts) > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Shifts)-count))
		}
	}

	p.printBox("DATING SELF-INSIGHT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrainingPlan outputs the persona, training load and week-by-week volume.
func (p *Printer) PrintTrainingPlan(result *types.TrainingResult) {
	if result == nil || len(result.Plan.Weeks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Persona:  %s\n", result.Persona.Label))
	sb.WriteString(fmt.Sprintf("Goal:     %s (%s)\n", result.Plan.DistanceGoal, result.Plan.GoalType))
	sb.WriteString(fmt.Sprintf("Load:     avg %.1f km, peak %.1f km, %d days/week\n\n",
		result.Load.AverageWeeklyKm, result.Load.PeakWeeklyKm, result.Load.TrainingDaysPerWeek))

	for _, week := range result.Plan.Weeks {
		sessions := make([]string, 0, len(week.KeySessions))
		for _, s := range week.KeySessions {
			sessions = append(sessions, s.Type)
		}
		sb.WriteString(fmt.Sprintf("W%02d %5.1f km  %s\n", week.Week, week.TargetKm, strings.Join(sessions, ", ")))
	}

	p.printBox("12-WEEK TRAINING PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNutritionPlan outputs energy targets, macros and the first guidelines.
func (p *Printer) PrintNutritionPlan(plan *types.NutritionPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("BMR:      %d kcal\n", plan.BMR))
	sb.WriteString(fmt.Sprintf("TDEE:     %d kcal\n", plan.TDEE))
	sb.WriteString(fmt.Sprintf("Target:   %d kcal\n\n", plan.DailyCalories))

	m := plan.Macros
	sb.WriteString(fmt.Sprintf("Protein:  %4d g  (%.1f%%)\n", m.ProteinGrams, m.ProteinPercent))
	sb.WriteString(fmt.Sprintf("Carbs:    %4d g  (%.1f%%)\n", m.CarbsGrams, m.CarbsPercent))
	sb.WriteString(fmt.Sprintf("Fats:     %4d g  (%.1f%%)\n", m.FatsGrams, m.FatsPercent))

	if len(plan.Guidelines.Daily) > 0 {
		sb.WriteString("\nGuidelines:\n")
		count := min(len(plan.Guidelines.Daily), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", plan.Guidelines.Daily[i]))
		}
		if len(plan.Guidelines.Daily) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(plan.Guidelines.Daily)-maxItemsToShow))
		}
	}

	p.printBox("NUTRITION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScreening outputs the movement screening total and pathway.
func (p *Printer) PrintScreening(result *types.MovementScreeningResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:    %d / %d\n", result.Total, result.MaxTotal))
	sb.WriteString(fmt.Sprintf("Pathway:  %s\n", result.Pathway))
	if result.Description != "" {
		sb.WriteString("\n" + wrap(result.Description, boxWidth-4) + "\n")
	}

	p.printBox("MOVEMENT SCREENING", strings.TrimSuffix(sb.String(), "\n"))
}
