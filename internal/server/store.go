package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
)

// Store persists the latest submission per user and quiz. *db.DB satisfies it.
type Store interface {
	UpsertSubmission(ctx context.Context, userID uuid.UUID, quiz string, answers, result any) (*db.Submission, error)
	GetSubmission(ctx context.Context, userID uuid.UUID, quiz string) (*db.Submission, error)
	ListSubmissions(ctx context.Context, userID uuid.UUID) ([]db.Submission, error)
	DeleteSubmissions(ctx context.Context, userID uuid.UUID) (int64, error)
}

// save stores a submission when persistence is configured and the request named a user.
func (s *Server) save(ctx context.Context, userID uuid.UUID, quiz string, answers, result any) (bool, error) {
	if s.store == nil || userID == uuid.Nil {
		return false, nil
	}
	if _, err := s.store.UpsertSubmission(ctx, userID, quiz, answers, result); err != nil {
		return false, fmt.Errorf("failed to save %s submission: %w", quiz, err)
	}
	return true, nil
}

// loadResult decodes the stored result of quiz for userID into dst.
func (s *Server) loadResult(ctx context.Context, userID uuid.UUID, quiz string, dst any) error {
	if s.store == nil {
		return ErrPersistenceDisabled
	}
	sub, err := s.store.GetSubmission(ctx, userID, quiz)
	if err != nil {
		return fmt.Errorf("failed to load %s submission: %w", quiz, err)
	}
	if sub == nil {
		return &ErrNotFound{Resource: fmt.Sprintf("%s result for user %s", quiz, userID)}
	}
	if err := json.Unmarshal(sub.Result, dst); err != nil {
		return fmt.Errorf("failed to decode stored %s result: %w", quiz, err)
	}
	return nil
}
