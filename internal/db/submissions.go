package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Quiz names
const (
	QuizDating    = "dating"
	QuizRunning   = "running"
	QuizNutrition = "nutrition"
	QuizScreening = "screening"
)

// Quizzes lists every quiz name a submission can be stored under.
var Quizzes = []string{QuizDating, QuizRunning, QuizNutrition, QuizScreening}

// ValidQuiz reports whether name is a known quiz.
func ValidQuiz(name string) bool {
	return slices.Contains(Quizzes, name)
}

// Submission is the latest answers and computed result for one user and quiz.
type Submission struct {
	UserID    uuid.UUID       `json:"user_id"`
	Quiz      string          `json:"quiz"`
	Answers   json.RawMessage `json:"answers"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UpsertSubmission stores answers and result for a user, replacing any earlier submission for the quiz
func (db *DB) UpsertSubmission(ctx context.Context, userID uuid.UUID, quiz string, answers, result any) (*Submission, error) {
	if !ValidQuiz(quiz) {
		return nil, fmt.Errorf("unknown quiz %q", quiz)
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	s := Submission{UserID: userID, Quiz: quiz, Answers: answersJSON, Result: resultJSON}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO quiz_submissions (user_id, quiz, answers, result)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, quiz) DO UPDATE SET answers = $3, result = $4, updated_at = NOW()
		 RETURNING created_at, updated_at`,
		userID, quiz, answersJSON, resultJSON,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s submission: %w", quiz, err)
	}
	return &s, nil
}

// GetSubmission retrieves the stored submission for a user and quiz, or nil if there is none
func (db *DB) GetSubmission(ctx context.Context, userID uuid.UUID, quiz string) (*Submission, error) {
	s := Submission{UserID: userID, Quiz: quiz}
	err := db.pool.QueryRow(ctx,
		`SELECT answers, result, created_at, updated_at
		 FROM quiz_submissions WHERE user_id = $1 AND quiz = $2`,
		userID, quiz,
	).Scan(&s.Answers, &s.Result, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s submission: %w", quiz, err)
	}
	return &s, nil
}

// ListSubmissions returns every submission for a user, most recently updated first
func (db *DB) ListSubmissions(ctx context.Context, userID uuid.UUID) ([]Submission, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT quiz, answers, result, created_at, updated_at
		 FROM quiz_submissions WHERE user_id = $1
		 ORDER BY updated_at DESC, quiz`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		s := Submission{UserID: userID}
		if err := rows.Scan(&s.Quiz, &s.Answers, &s.Result, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return out, nil
}

// DeleteSubmissions removes every submission for a user and returns how many were deleted
func (db *DB) DeleteSubmissions(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM quiz_submissions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete submissions: %w", err)
	}
	return tag.RowsAffected(), nil
}
