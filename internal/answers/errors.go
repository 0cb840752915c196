// Package answers validates raw quiz answers and shapes them into typed answer maps.
package answers

import "fmt"

// ValidationError represents an answer that cannot be accepted
type ValidationError struct {
	QuestionID int
	Message    string
	Cause      error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid answer for question %d: %s: %v", e.QuestionID, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid answer for question %d: %s", e.QuestionID, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
