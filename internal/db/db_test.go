package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidQuiz(t *testing.T) {
	for _, q := range Quizzes {
		assert.True(t, ValidQuiz(q), q)
	}
	assert.False(t, ValidQuiz("astrology"))
	assert.False(t, ValidQuiz(""))
}

func TestSubmission_JSON(t *testing.T) {
	s := Submission{
		UserID:  uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		Quiz:    QuizRunning,
		Answers: json.RawMessage(`[{"question_id":3,"value":"10k"}]`),
		Result:  json.RawMessage(`{"persona":{"id":"steady_improver"}}`),
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", decoded["user_id"])
	assert.Equal(t, "running", decoded["quiz"])
	assert.IsType(t, []any{}, decoded["answers"], "raw answers should embed as JSON, not a string")
}

func TestUpsertSubmission_UnknownQuiz(t *testing.T) {
	// rejected before touching the pool
	db := &DB{}
	_, err := db.UpsertSubmission(context.Background(), uuid.New(), "astrology", nil, nil)
	assert.ErrorContains(t, err, "unknown quiz")
}

func TestUpsertSubmission_UnmarshalableAnswers(t *testing.T) {
	db := &DB{}
	_, err := db.UpsertSubmission(context.Background(), uuid.New(), QuizDating, make(chan int), nil)
	assert.ErrorContains(t, err, "failed to marshal answers")
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}
