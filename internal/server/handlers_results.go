package server

import (
	"fmt"
	"net/http"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
)

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUser(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.store == nil {
		s.writeError(w, r, ErrPersistenceDisabled)
		return
	}

	subs, err := s.store.ListSubmissions(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to list submissions: %w", err))
		return
	}
	if subs == nil {
		subs = []db.Submission{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id": userID,
		"results": subs,
	})
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUser(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	quiz := r.PathValue("quiz")
	if !db.ValidQuiz(quiz) {
		s.writeError(w, r, &ErrValidation{Field: "quiz", Message: fmt.Sprintf("must be one of %v", db.Quizzes)})
		return
	}
	if s.store == nil {
		s.writeError(w, r, ErrPersistenceDisabled)
		return
	}

	sub, err := s.store.GetSubmission(r.Context(), userID, quiz)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to get submission: %w", err))
		return
	}
	if sub == nil {
		s.writeError(w, r, &ErrNotFound{Resource: fmt.Sprintf("%s result for user %s", quiz, userID)})
		return
	}
	s.jsonResponse(w, http.StatusOK, sub)
}

func (s *Server) handleDeleteResults(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUser(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if s.store == nil {
		s.writeError(w, r, ErrPersistenceDisabled)
		return
	}

	n, err := s.store.DeleteSubmissions(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to delete submissions: %w", err))
		return
	}
	s.logger.Info("deleted submissions", "user_id", userID.String(), "count", n)
	s.jsonResponse(w, http.StatusOK, map[string]any{"deleted": n})
}
