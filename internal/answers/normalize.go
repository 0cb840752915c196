package answers

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Likert scale bounds
const (
	LikertMin = 1
	LikertMax = 5
)

// Normalize converts raw answers into an AnswerMap.
// Null values are dropped, strings are trimmed, and empty strings are treated as absent.
// Duplicate or non-positive question ids are rejected.
func Normalize(raw []types.Answer) (types.AnswerMap, error) {
	result := make(types.AnswerMap, len(raw))
	seen := make(map[int]struct{}, len(raw))

	for _, answer := range raw {
		if answer.QuestionID <= 0 {
			return nil, &ValidationError{QuestionID: answer.QuestionID, Message: "question id must be positive"}
		}
		if _, dup := seen[answer.QuestionID]; dup {
			return nil, &ValidationError{QuestionID: answer.QuestionID, Message: "duplicate answer"}
		}
		seen[answer.QuestionID] = struct{}{}

		value, present, err := normalizeValue(answer.Value)
		if err != nil {
			return nil, &ValidationError{QuestionID: answer.QuestionID, Message: "unsupported value", Cause: err}
		}
		if present {
			result[answer.QuestionID] = value
		}
	}

	return result, nil
}

func normalizeValue(v any) (types.AnswerValue, bool, error) {
	switch val := v.(type) {
	case nil:
		return types.AnswerValue{}, false, nil
	case float64:
		return types.NumberValue(val), true, nil
	case float32:
		return types.NumberValue(float64(val)), true, nil
	case int:
		return types.NumberValue(float64(val)), true, nil
	case int64:
		return types.NumberValue(float64(val)), true, nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return types.AnswerValue{}, false, err
		}
		return types.NumberValue(f), true, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return types.AnswerValue{}, false, nil
		}
		return types.TextValue(trimmed), true, nil
	case []string:
		return listValue(val), true, nil
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return types.AnswerValue{}, false, fmt.Errorf("list items must be strings, got %T", item)
			}
			items = append(items, s)
		}
		return listValue(items), true, nil
	default:
		return types.AnswerValue{}, false, fmt.Errorf("unsupported type %T", v)
	}
}

func listValue(items []string) types.AnswerValue {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return types.ListValue(cleaned)
}

// FromLikert builds an AnswerMap from scored answers. Duplicate ids are rejected.
func FromLikert(raw []types.LikertAnswer) (types.AnswerMap, error) {
	result := make(types.AnswerMap, len(raw))
	for _, answer := range raw {
		if _, dup := result[answer.ID]; dup {
			return nil, &ValidationError{QuestionID: answer.ID, Message: "duplicate answer"}
		}
		result[answer.ID] = types.NumberValue(float64(answer.Value))
	}
	return result, nil
}

// ValidateLikert checks that every answer present for the given ids is an integer in 1..5.
// Missing ids are allowed.
func ValidateLikert(m types.AnswerMap, ids []int) error {
	for _, id := range ids {
		v, ok := m[id]
		if !ok {
			continue
		}
		if v.Kind != types.KindNumber {
			return &ValidationError{QuestionID: id, Message: "likert answer must be a number"}
		}
		if v.Number != math.Trunc(v.Number) {
			return &ValidationError{QuestionID: id, Message: fmt.Sprintf("likert answer must be an integer, got %v", v.Number)}
		}
		if v.Number < LikertMin || v.Number > LikertMax {
			return &ValidationError{QuestionID: id, Message: fmt.Sprintf("likert answer must be between %d and %d, got %v", LikertMin, LikertMax, v.Number)}
		}
	}
	return nil
}
