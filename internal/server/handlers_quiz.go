package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/TheABX/runmvmtquiz-sub001/internal/db"
	"github.com/TheABX/runmvmtquiz-sub001/internal/pipeline"
	"github.com/TheABX/runmvmtquiz-sub001/internal/server/middleware"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	schemadocs "github.com/TheABX/runmvmtquiz-sub001/schemas"
)

// pipelineOptions builds per-request options. A fixed seed gives every request the
// same mindset shifts; the seeded source is not shared between requests.
func (s *Server) pipelineOptions(r *http.Request) pipeline.Options {
	log := s.logger.With("request_id", middleware.GetRequestID(r))
	return pipeline.Options{
		Permuter: pipeline.SeededPermuter(s.cfg.MindsetSeed),
		OnProgress: func(e pipeline.ProgressEvent) {
			log.Debug(e.Message, "step", e.Step)
		},
	}
}

func (s *Server) handleDatingScore(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := s.readBody(w, r, schemadocs.QuizAnswers, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	userID, err := resolveUser(r, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := pipeline.ScoreDating(req.Answers, s.pipelineOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSaved(w, r, userID, db.QuizDating, req.Answers, result)
}

func (s *Server) handleRunPlan(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := s.readBody(w, r, schemadocs.QuizAnswers, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	userID, err := resolveUser(r, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := pipeline.PlanRun(req.Answers, s.pipelineOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSaved(w, r, userID, db.QuizRunning, req.Answers, result)
}

func (s *Server) handleNutritionPlan(w http.ResponseWriter, r *http.Request) {
	var req NutritionRequest
	if err := s.readBody(w, r, schemadocs.NutritionRequest, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	userID, err := resolveUser(r, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	load, err := s.trainingLoad(r, userID, req.TrainingLoad)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	plan, err := pipeline.PlanNutrition(req.Nutrition, load, s.pipelineOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSaved(w, r, userID, db.QuizNutrition, req.Nutrition, plan)
}

// trainingLoad returns the explicit load, or the load of the user's stored running plan.
func (s *Server) trainingLoad(r *http.Request, userID uuid.UUID, explicit *types.TrainingLoadData) (types.TrainingLoadData, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if userID == uuid.Nil {
		return types.TrainingLoadData{}, &ErrValidation{Field: "training_load", Message: "is required without a user_id"}
	}

	var stored types.TrainingResult
	if err := s.loadResult(r.Context(), userID, db.QuizRunning, &stored); err != nil {
		return types.TrainingLoadData{}, err
	}
	return stored.Load, nil
}

func (s *Server) handleScreeningScore(w http.ResponseWriter, r *http.Request) {
	var req ScreeningRequest
	if err := s.readBody(w, r, schemadocs.MovementScores, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	userID, err := resolveUser(r, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := pipeline.Screen(req.Scores, s.pipelineOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.respondSaved(w, r, userID, db.QuizScreening, req.Scores, result)
}

// handleJourney runs every submitted quiz at once and stores each result.
func (s *Server) handleJourney(w http.ResponseWriter, r *http.Request) {
	var req JourneyRequest
	if err := s.readBody(w, r, "", &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	userID, err := resolveUser(r, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Steps()) == 0 {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "no quiz submissions"})
		return
	}

	result, err := pipeline.RunJourney(r.Context(), req.JourneyInput, s.pipelineOptions(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	saved := false
	parts := []struct {
		quiz    string
		answers any
		result  any
		ok      bool
	}{
		{db.QuizDating, req.Dating, result.Dating, result.Dating != nil},
		{db.QuizRunning, req.Running, result.Training, result.Training != nil},
		{db.QuizNutrition, req.Nutrition, result.Nutrition, result.Nutrition != nil},
		{db.QuizScreening, req.Screening, result.Screening, result.Screening != nil},
	}
	for _, p := range parts {
		if !p.ok {
			continue
		}
		ok, err := s.save(r.Context(), userID, p.quiz, p.answers, p.result)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		saved = saved || ok
	}

	s.jsonResponse(w, http.StatusOK, ResultResponse{UserID: userString(userID), Saved: saved, Result: result})
}

// respondSaved stores the submission when possible and writes the result.
func (s *Server) respondSaved(w http.ResponseWriter, r *http.Request, userID uuid.UUID, quiz string, answers, result any) {
	saved, err := s.save(r.Context(), userID, quiz, answers, result)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ResultResponse{UserID: userString(userID), Saved: saved, Result: result})
}
