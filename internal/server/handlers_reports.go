package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
	"github.com/TheABX/runmvmtquiz-sub001/internal/report"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Report formats
const (
	formatHTML = "html"
	formatPDF  = "pdf"
)


// handleReport renders a result as HTML or PDF. The result comes from the request body,
// or from storage when ?user_id= is set.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(r.PathValue("kind"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "kind", Message: fmt.Sprintf("must be one of %v", report.Kinds)})
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatHTML
	}
	if format != formatHTML && format != formatPDF {
		s.writeError(w, r, &ErrValidation{Field: "format", Message: "must be html or pdf"})
		return
	}

	doc, err := s.reportDocument(w, r, kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	html, err := report.RenderHTML(kind, doc)
	if err != nil {
		var renderErr *report.RenderError
		if errors.As(err, &renderErr) {
			err = &ErrValidation{Field: "body", Message: renderErr.Error()}
		}
		s.writeError(w, r, err)
		return
	}

	if format == formatHTML {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ReportTimeoutDuration())
	defer cancel()
	pdf, err := s.printer.Print(ctx, html)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to print %s report: %w", kind, err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-report.pdf"`, kind))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// reportDocument returns the JSON result document to render.
func (s *Server) reportDocument(w http.ResponseWriter, r *http.Request, kind report.Kind) ([]byte, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return s.readRaw(w, r, kind.Schema())
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, &ErrValidation{Field: "user_id", Message: "must be a UUID"}
	}
	return s.storedReportDocument(r.Context(), userID, kind)
}

// storedReportDocument assembles a result document from stored submissions.
// Training reports include the stored nutrition plan when there is one.
func (s *Server) storedReportDocument(ctx context.Context, userID uuid.UUID, kind report.Kind) ([]byte, error) {
	var doc any
	switch kind {
	case report.KindProfile:
		var result types.DatingResult
		if err := s.loadResult(ctx, userID, db.QuizDating, &result); err != nil {
			return nil, err
		}
		doc = result
	case report.KindTraining:
		var result report.TrainingReport
		if err := s.loadResult(ctx, userID, db.QuizRunning, &result.TrainingResult); err != nil {
			return nil, err
		}
		var plan types.NutritionPlan
		err := s.loadResult(ctx, userID, db.QuizNutrition, &plan)
		var notFound *ErrNotFound
		switch {
		case err == nil:
			result.Nutrition = &plan
		case !errors.As(err, &notFound):
			return nil, err
		}
		doc = result
	case report.KindScreening:
		var result types.MovementScreeningResult
		if err := s.loadResult(ctx, userID, db.QuizScreening, &result); err != nil {
			return nil, err
		}
		doc = result
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s report document: %w", kind, err)
	}
	return data, nil
}
