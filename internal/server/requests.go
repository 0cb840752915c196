package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/schemas"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/middleware"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// QuizRequest is the body of the dating and running quiz routes.
type QuizRequest struct {
	UserID  string         `json:"user_id" validate:"omitempty,uuid"`
	Answers []types.Answer `json:"answers" validate:"required,min=1"`
}

// NutritionRequest is the body of POST /nutrition/plan. Without TrainingLoad the
// load of the user's stored running plan is used.
type NutritionRequest struct {
	UserID       string                  `json:"user_id" validate:"omitempty,uuid"`
	Nutrition    types.NutritionData     `json:"nutrition"`
	TrainingLoad *types.TrainingLoadData `json:"training_load,omitempty"`
}

// ScreeningRequest is the body of POST /screening/score.
type ScreeningRequest struct {
	UserID string                    `json:"user_id" validate:"omitempty,uuid"`
	Scores []types.MovementTestScore `json:"scores" validate:"required,min=1,dive"`
}

// JourneyRequest is the body of POST /journey.
type JourneyRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	pipeline.JourneyInput
}

// ResultResponse wraps a computed result.
type ResultResponse struct {
	UserID string `json:"user_id,omitempty"`
	Saved  bool   `json:"saved"`
	Result any    `json:"result"`
}

// readRaw reads the request body and checks it against schemaName when set.
func (s *Server) readRaw(w http.ResponseWriter, r *http.Request, schemaName string) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrValidation{Field: "body", Message: fmt.Sprintf("exceeds %d bytes", tooLarge.Limit)}
		}
		return nil, &ErrValidation{Field: "body", Message: "could not be read"}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &ErrValidation{Field: "body", Message: "is required"}
	}
	if !json.Valid(body) {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON"}
	}

	if schemaName != "" {
		if err := schemas.ValidateDocument(schemaName, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// readBody reads the body with readRaw, then decodes and validates it into dst,
// which must point to a struct.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request, schemaName string, dst any) error {
	body, err := s.readRaw(w, r, schemaName)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validator.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError converts the first validator failure into an ErrValidation.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{Field: fe.Namespace(), Message: "failed " + fe.Tag()}
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// resolveUser picks the user id from the body or the X-User-ID header. When both are
// set they must agree. uuid.Nil means the request is anonymous.
func resolveUser(r *http.Request, bodyID string) (uuid.UUID, error) {
	headerID, hasHeader := middleware.GetUserID(r)
	if bodyID == "" {
		if hasHeader {
			return headerID, nil
		}
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(bodyID)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "user_id", Message: "must be a UUID"}
	}
	if hasHeader && headerID != id {
		return uuid.Nil, &ErrValidation{Field: "user_id", Message: "does not match " + middleware.UserIDHeader}
	}
	return id, nil
}

// pathUser parses the {id} path value.
func pathUser(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

func userString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
