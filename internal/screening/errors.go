// Package screening aggregates the movement screening battery into a strength pathway.
package screening

import "fmt"

// ScoreError represents an invalid set of movement test scores
type ScoreError struct {
	TestID  string
	Message string
}

func (e *ScoreError) Error() string {
	if e.TestID != "" {
		return fmt.Sprintf("movement score error: %s: %s", e.TestID, e.Message)
	}
	return fmt.Sprintf("movement score error: %s", e.Message)
}

// ConfigError represents an invalid battery configuration
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("battery config error: %s", e.Message)
}

// StateError is returned when a flow action is not allowed in the current state
type StateError struct {
	State  State
	Action string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while flow is in state %q", e.Action, e.State)
}
