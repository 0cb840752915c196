package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/TheABX/runmvmtquiz-sub001/internal/answers"
	"github.com/TheABX/runmvmtquiz-sub001/internal/nutrition"
	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/schemas"
	"github.com/TheABX/runmvmtquiz-sub001/internal/screening"
	"github.com/TheABX/runmvmtquiz-sub001/internal/training"
)

// ErrNotFound indicates a stored resource does not exist
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrPersistenceDisabled is returned by routes that need a database when none is configured.
var ErrPersistenceDisabled = errors.New("persistence is not configured")

// HTTPStatus returns the appropriate HTTP status code for an error.
// Malformed requests map to 400 and well-formed input the quiz logic rejects maps to 422.
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		invalid    *ErrValidation
		schemaErr  *schemas.ValidationError
		answerErr  *answers.ValidationError
		trainErr   *training.Error
		missing    *nutrition.MissingFieldError
		badField   *nutrition.InvalidFieldError
		scoreErr   *screening.ScoreError
		dependency *pipeline.DependencyError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &answerErr), errors.As(err, &trainErr),
		errors.As(err, &missing), errors.As(err, &badField),
		errors.As(err, &scoreErr), errors.As(err, &dependency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

// writeError maps err to a status and writes it. Internal errors are logged and their
// message is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	body := errorBody{Error: err.Error()}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		body.Error = "request does not match schema"
		body.Details = schemaErr.Errors
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		body.Error = "internal server error"
	}

	s.jsonResponse(w, status, body)
}
