// Package pipeline runs raw quiz submissions through normalization, scoring and plan generation.
package pipeline

import (
	"fmt"
	"math/rand/v2"

	"github.com/TheABX/runmvmtquiz-sub001/internal/answers"
	"github.com/TheABX/runmvmtquiz-sub001/internal/feedback"
	"github.com/TheABX/runmvmtquiz-sub001/internal/nutrition"
	"github.com/TheABX/runmvmtquiz-sub001/internal/scoring"
	"github.com/TheABX/runmvmtquiz-sub001/internal/screening"
	"github.com/TheABX/runmvmtquiz-sub001/internal/training"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options configures a pipeline run. The zero value samples mindset shifts from
// feedback.DefaultPermuter and screens against screening.DefaultBattery.
type Options struct {
	Permuter   feedback.Permuter
	Battery    screening.Battery
	OnProgress ProgressCallback
}

// SeededPermuter returns a deterministic permuter for seed, or the default source when seed is 0.
// The returned value is not safe for concurrent use.
func SeededPermuter(seed uint64) feedback.Permuter {
	if seed == 0 {
		return feedback.DefaultPermuter
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func (o Options) permuter() feedback.Permuter {
	if o.Permuter == nil {
		return feedback.DefaultPermuter
	}
	return o.Permuter
}

func (o Options) battery() screening.Battery {
	if len(o.Battery) == 0 {
		return screening.DefaultBattery
	}
	return o.Battery
}

// emitProgress calls the progress callback if configured
func emitProgress(opts Options, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// ScoreDating normalizes dating quiz answers, scores the subscales and builds the profile result.
func ScoreDating(raw []types.Answer, opts Options) (types.DatingResult, error) {
	m, err := answers.Normalize(raw)
	if err != nil {
		return types.DatingResult{}, err
	}
	if err := answers.ValidateLikert(m, scoring.LikertQuestionIDs()); err != nil {
		return types.DatingResult{}, err
	}

	if missing := scoring.Unanswered(m); len(missing) > 0 {
		emitProgress(opts, StepScoreDating, fmt.Sprintf("%d subscales have no answers and score 0", len(missing)), missing)
	}

	scores := scoring.ScoreAnswers(m)
	emitProgress(opts, StepScoreDating, "subscales scored", scores)

	result := feedback.BuildResult(scores, opts.permuter())
	emitProgress(opts, StepScoreDating, "profile built", result.Profile.AttachmentStyle)
	return result, nil
}

// PlanRun classifies the runner and generates the 12-week plan with its training load.
func PlanRun(raw []types.Answer, opts Options) (types.TrainingResult, error) {
	m, err := answers.Normalize(raw)
	if err != nil {
		return types.TrainingResult{}, err
	}

	persona, err := training.ClassifyPersona(m)
	if err != nil {
		return types.TrainingResult{}, err
	}
	emitProgress(opts, StepPlanRun, "persona classified", persona.Label)

	plan, err := training.GenerateTrainingPlan(m, persona)
	if err != nil {
		return types.TrainingResult{}, err
	}
	load := training.DeriveTrainingLoad(plan)
	emitProgress(opts, StepPlanRun, fmt.Sprintf("%d-week plan generated", len(plan.Weeks)), load)

	return types.TrainingResult{Persona: persona, Plan: plan, Load: load}, nil
}

// PlanNutrition generates a nutrition plan for data under the given training load.
func PlanNutrition(data types.NutritionData, load types.TrainingLoadData, opts Options) (types.NutritionPlan, error) {
	plan, err := nutrition.GenerateNutritionPlan(data, load)
	if err != nil {
		return types.NutritionPlan{}, err
	}
	emitProgress(opts, StepPlanNutrition, fmt.Sprintf("%d kcal target", plan.DailyCalories), plan.Macros)
	return plan, nil
}

// Screen aggregates movement test scores against the configured battery.
func Screen(scores []types.MovementTestScore, opts Options) (types.MovementScreeningResult, error) {
	result, err := screening.Aggregate(opts.battery(), scores)
	if err != nil {
		return types.MovementScreeningResult{}, err
	}
	emitProgress(opts, StepScreen, fmt.Sprintf("%d/%d points", result.Total, result.MaxTotal), result.Pathway)
	return result, nil
}
