package pipeline

import (
	"fmt"
	"slices"
)

// Step names
const (
	StepScoreDating   = "score_dating"
	StepPlanRun       = "plan_run"
	StepPlanNutrition = "plan_nutrition"
	StepScreen        = "screen_movement"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Dependencies []string
}

// StepOrder is the order steps are reported in.
var StepOrder = []string{StepScoreDating, StepPlanRun, StepPlanNutrition, StepScreen}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	StepScoreDating: {
		Name: StepScoreDating,
	},
	StepPlanRun: {
		Name: StepPlanRun,
	},
	StepPlanNutrition: {
		Name:         StepPlanNutrition,
		Dependencies: []string{StepPlanRun},
	},
	StepScreen: {
		Name: StepScreen,
	},
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s is missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed.
func ValidateDependencies(stepName string, completed []string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !slices.Contains(completed, dep) {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}
