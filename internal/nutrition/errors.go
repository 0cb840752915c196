// Package nutrition computes calorie and macro targets and templated meal guidance for runners.
package nutrition

import "fmt"

// MissingFieldError is returned when a required body metric is absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required nutrition field: %s", e.Field)
}

// InvalidFieldError is returned when a body metric is present but unusable
type InvalidFieldError struct {
	Field   string
	Message string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid nutrition field %s: %s", e.Field, e.Message)
}
