// Package training classifies runner personas and generates 12-week running plans.
package training

import "fmt"

// Error represents invalid running quiz input
type Error struct {
	QuestionID int
	Message    string
}

func (e *Error) Error() string {
	if e.QuestionID > 0 {
		return fmt.Sprintf("training plan error: question %d: %s", e.QuestionID, e.Message)
	}
	return fmt.Sprintf("training plan error: %s", e.Message)
}
