package pipeline

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// JourneyInput holds every submission for one user. Empty fields skip their step.
// Load replaces the derived training load when Running is empty.
type JourneyInput struct {
	Dating    []types.Answer            `json:"dating,omitempty"`
	Running   []types.Answer            `json:"running,omitempty"`
	Nutrition *types.NutritionData      `json:"nutrition,omitempty"`
	Load      *types.TrainingLoadData   `json:"training_load,omitempty"`
	Screening []types.MovementTestScore `json:"screening,omitempty"`
}

// JourneyResult holds the output of each step that ran.
type JourneyResult struct {
	Dating    *types.DatingResult            `json:"dating,omitempty"`
	Training  *types.TrainingResult          `json:"training,omitempty"`
	Nutrition *types.NutritionPlan           `json:"nutrition,omitempty"`
	Screening *types.MovementScreeningResult `json:"screening,omitempty"`
}

// Steps returns the steps in that in would run, in StepOrder.
func (in JourneyInput) Steps() []string {
	var steps []string
	if len(in.Dating) > 0 {
		steps = append(steps, StepScoreDating)
	}
	if len(in.Running) > 0 {
		steps = append(steps, StepPlanRun)
	}
	if in.Nutrition != nil {
		steps = append(steps, StepPlanNutrition)
	}
	if len(in.Screening) > 0 {
		steps = append(steps, StepScreen)
	}
	return steps
}

// RunJourney runs every requested step. The dating, running and screening branches run
// concurrently; nutrition waits on the running branch for its training load.
// The first failing step cancels the others.
func RunJourney(ctx context.Context, in JourneyInput, opts Options) (*JourneyResult, error) {
	if in.Nutrition != nil && len(in.Running) == 0 && in.Load == nil {
		if err := ValidateDependencies(StepPlanNutrition, nil); err != nil {
			return nil, err
		}
	}

	if opts.OnProgress != nil {
		var mu sync.Mutex
		cb := opts.OnProgress
		opts.OnProgress = func(e ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			cb(e)
		}
	}
	result := &JourneyResult{}
	g, gctx := errgroup.WithContext(ctx)

	if len(in.Dating) > 0 {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := ScoreDating(in.Dating, opts)
			if err != nil {
				return err
			}
			result.Dating = &r
			return nil
		})
	}

	if len(in.Running) > 0 || in.Nutrition != nil {
		g.Go(func() error {
			var load types.TrainingLoadData
			if in.Load != nil {
				load = *in.Load
			}
			if len(in.Running) > 0 {
				if err := gctx.Err(); err != nil {
					return err
				}
				r, err := PlanRun(in.Running, opts)
				if err != nil {
					return err
				}
				result.Training = &r
				load = r.Load
			}
			if in.Nutrition == nil {
				return nil
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := PlanNutrition(*in.Nutrition, load, opts)
			if err != nil {
				return err
			}
			result.Nutrition = &p
			return nil
		})
	}

	if len(in.Screening) > 0 {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Screen(in.Screening, opts)
			if err != nil {
				return err
			}
			result.Screening = &r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
