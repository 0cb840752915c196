package training

import (
	"fmt"
	"math"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// longRunCapKm bounds the long run per goal distance.
var longRunCapKm = map[string]float64{
	Distance5K:       12,
	Distance10K:      16,
	DistanceHalf:     21,
	DistanceMarathon: 32,
}

// longRunGrowthKm is how far the long run may grow past the longest recent run each week.
const longRunGrowthKm = 1.5

// GenerateTrainingPlan builds the 12-week plan for a persona. The result depends
// only on the answers and persona, so a stored answer map always regenerates the
// same plan.
func GenerateTrainingPlan(m types.AnswerMap, persona types.Persona) (types.TrainingPlan, error) {
	p, err := parseProfile(m)
	if err != nil {
		return types.TrainingPlan{}, err
	}
	shape, ok := personaShapes[persona.ID]
	if !ok {
		return types.TrainingPlan{}, &Error{Message: fmt.Sprintf("unknown persona %q", persona.ID)}
	}
	goal := goalShapes[p.GoalDistance]

	start := max(p.WeeklyKm, shape.StartFloorKm)
	peak := max(start, min(goal.PeakKm*shape.PeakScale, start*shape.MaxGrowth))

	plan := types.TrainingPlan{
		DistanceGoal:  p.GoalDistance,
		GoalType:      p.GoalType,
		DurationWeeks: PlanWeeks,
		DaysPerWeek:   p.DaysPerWeek,
		Persona:       persona,
		Weeks:         make([]types.WeeklyStructure, 0, PlanWeeks),
	}

	for week := 1; week <= PlanWeeks; week++ {
		phase := phaseByWeek[week]
		target := weekTarget(week, phase, start, peak, goal.TaperFactor)
		plan.Weeks = append(plan.Weeks, types.WeeklyStructure{
			Week:        week,
			TargetKm:    target,
			Focus:       phaseFocus[phase],
			KeySessions: keySessions(p, persona.ID, shape, goal, week, phase, target),
		})
	}
	return plan, nil
}

func weekTarget(week int, phase Phase, start, peak, taper float64) float64 {
	switch phase {
	case PhaseTaper:
		return roundHalf(peak * taper)
	case PhaseRecovery:
		return roundHalf(ramp(week, start, peak) * recoveryFactor)
	default:
		return roundHalf(ramp(week, start, peak))
	}
}

// ramp grows linearly from start in week 1 to peak in week 11.
func ramp(week int, start, peak float64) float64 {
	return start + (peak-start)*float64(week-1)/float64(PlanWeeks-2)
}

func keySessions(p runnerProfile, personaID string, shape personaShape, goal goalShape, week int, phase Phase, target float64) []types.KeySession {
	days := dayLayouts[p.DaysPerWeek]
	sessions := make([]types.KeySession, 0, 3)

	quality := qualityByPersona[personaID][phase]
	if phase == PhaseBuild && p.prefers("hills") {
		quality = hillSession
	}
	sessions = append(sessions, sessionOn(days[0], quality))

	if len(days) >= 3 && (shape.Strength || p.Strength != "never") {
		sessions = append(sessions, sessionOn(days[1], strengthSession[phase]))
	}

	last := days[len(days)-1]
	if phase == PhaseTaper {
		sessions = append(sessions, types.KeySession{
			Day:         last,
			Type:        "race",
			Description: fmt.Sprintf("Race day: %s", goal.RaceLabel),
			Intensity:   "race",
		})
		return sessions
	}

	km := longRunKm(p, shape, week, target)
	sessions = append(sessions, types.KeySession{
		Day:             last,
		Type:            "long_run",
		Description:     fmt.Sprintf("Long run %.1f km at easy effort", km),
		DurationMinutes: int(math.Round(km * shape.EasyPace)),
		Intensity:       "easy",
	})
	return sessions
}

func longRunKm(p runnerProfile, shape personaShape, week int, target float64) float64 {
	km := min(target*shape.LongRunShare, longRunCapKm[p.GoalDistance])
	if p.LongestRunKm > 0 {
		km = min(km, p.LongestRunKm+longRunGrowthKm*float64(week))
	}
	return roundHalf(km)
}

func sessionOn(day string, t sessionTemplate) types.KeySession {
	return types.KeySession{
		Day:             day,
		Type:            t.Type,
		Description:     t.Description,
		DurationMinutes: t.DurationMinutes,
		Intensity:       t.Intensity,
	}
}

func roundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
