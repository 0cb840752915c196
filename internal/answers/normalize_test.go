package answers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DecodedJSON(t *testing.T) {
	var raw []types.Answer
	input := `[
		{"question_id": 1, "value": 4},
		{"question_id": 2, "value": "  marathon "},
		{"question_id": 3, "value": ["hills", " ", "intervals"]},
		{"question_id": 4, "value": null},
		{"question_id": 5, "value": ""}
	]`
	require.NoError(t, json.Unmarshal([]byte(input), &raw))

	m, err := Normalize(raw)
	require.NoError(t, err)

	n, ok := m.Number(1)
	assert.True(t, ok)
	assert.Equal(t, 4.0, n)

	s, ok := m.Text(2)
	assert.True(t, ok)
	assert.Equal(t, "marathon", s)

	assert.Equal(t, []string{"hills", "intervals"}, m.List(3))

	_, present := m[4]
	assert.False(t, present, "null answers are treated as absent")
	_, present = m[5]
	assert.False(t, present, "empty strings are treated as absent")
}

func TestNormalize_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  []types.Answer
	}{
		{"duplicate id", []types.Answer{{QuestionID: 1, Value: 1.0}, {QuestionID: 1, Value: 2.0}}},
		{"zero id", []types.Answer{{QuestionID: 0, Value: 1.0}}},
		{"object value", []types.Answer{{QuestionID: 1, Value: map[string]any{"a": 1}}}},
		{"mixed list", []types.Answer{{QuestionID: 1, Value: []any{"a", 2.0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Normalize(tt.raw)
			assert.Nil(t, m)
			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestFromLikert_Duplicate(t *testing.T) {
	_, err := FromLikert([]types.LikertAnswer{{ID: 3, Value: 2}, {ID: 3, Value: 4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestValidateLikert(t *testing.T) {
	tests := []struct {
		name    string
		value   types.AnswerValue
		wantErr bool
	}{
		{"min", types.NumberValue(1), false},
		{"max", types.NumberValue(5), false},
		{"below range", types.NumberValue(0), true},
		{"above range", types.NumberValue(6), true},
		{"fractional", types.NumberValue(2.5), true},
		{"text", types.TextValue("agree"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLikert(types.AnswerMap{7: tt.value}, []int{7})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLikert_IgnoresMissingAndUnlisted(t *testing.T) {
	m := types.AnswerMap{100: types.TextValue("free text")}
	assert.NoError(t, ValidateLikert(m, []int{1, 2, 3}))
}
