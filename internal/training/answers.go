package training

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Running onboarding quiz question ids
const (
	QuestionExperience        = 1
	QuestionWeeklyKm          = 2
	QuestionGoalDistance      = 3
	QuestionGoalType          = 4
	QuestionDaysPerWeek       = 5
	QuestionLongestRunKm      = 6
	QuestionInjuryHistory     = 7
	QuestionStrengthHabit     = 8
	QuestionPreferredSessions = 9
)

// Goal distances
const (
	Distance5K       = "5k"
	Distance10K      = "10k"
	DistanceHalf     = "half_marathon"
	DistanceMarathon = "marathon"
)

// Goal types
const (
	GoalFinish           = "finish"
	GoalImproveTime      = "improve_time"
	GoalGetFit           = "get_fit"
	GoalReturnFromInjury = "return_from_injury"
)

// Experience levels
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

const (
	minDaysPerWeek     = 2
	maxDaysPerWeek     = 6
	defaultDaysPerWeek = 3

	maxWeeklyKm     = 400
	maxLongestRunKm = 250
)

// runnerProfile is the parsed form of a running quiz answer map.
type runnerProfile struct {
	Experience   string
	WeeklyKm     float64
	GoalDistance string
	GoalType     string
	DaysPerWeek  int
	LongestRunKm float64
	Injury       string
	Strength     string
	Preferences  []string
}

var (
	validExperience = []string{ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced}
	validDistances  = []string{Distance5K, Distance10K, DistanceHalf, DistanceMarathon}
	validGoalTypes  = []string{GoalFinish, GoalImproveTime, GoalGetFit, GoalReturnFromInjury}
	validInjury     = []string{"none", "minor", "recurring"}
	validStrength   = []string{"never", "sometimes", "regularly"}
)

// parseProfile reads the running quiz answers. The goal distance is required;
// other answers fall back to conservative defaults when absent.
func parseProfile(m types.AnswerMap) (runnerProfile, error) {
	p := runnerProfile{
		Experience:  ExperienceBeginner,
		GoalType:    GoalFinish,
		DaysPerWeek: defaultDaysPerWeek,
		Injury:      "none",
		Strength:    "never",
	}

	var err error
	if p.GoalDistance, err = requiredChoice(m, QuestionGoalDistance, validDistances); err != nil {
		return runnerProfile{}, err
	}
	if p.Experience, err = optionalChoice(m, QuestionExperience, validExperience, p.Experience); err != nil {
		return runnerProfile{}, err
	}
	if p.GoalType, err = optionalChoice(m, QuestionGoalType, validGoalTypes, p.GoalType); err != nil {
		return runnerProfile{}, err
	}
	if p.Injury, err = optionalChoice(m, QuestionInjuryHistory, validInjury, p.Injury); err != nil {
		return runnerProfile{}, err
	}
	if p.Strength, err = optionalChoice(m, QuestionStrengthHabit, validStrength, p.Strength); err != nil {
		return runnerProfile{}, err
	}

	if p.WeeklyKm, err = distanceAnswer(m, QuestionWeeklyKm, "weekly km", maxWeeklyKm); err != nil {
		return runnerProfile{}, err
	}
	if p.LongestRunKm, err = distanceAnswer(m, QuestionLongestRunKm, "longest run", maxLongestRunKm); err != nil {
		return runnerProfile{}, err
	}
	if days, ok := m.Number(QuestionDaysPerWeek); ok {
		p.DaysPerWeek = clampDays(int(math.Round(days)))
	}

	for _, pref := range m.List(QuestionPreferredSessions) {
		p.Preferences = append(p.Preferences, strings.ToLower(pref))
	}

	return p, nil
}

// distanceAnswer reads an optional km answer, which must lie in 0..limit.
func distanceAnswer(m types.AnswerMap, id int, name string, limit float64) (float64, error) {
	km, ok := m.Number(id)
	if !ok {
		return 0, nil
	}
	if km < 0 {
		return 0, &Error{QuestionID: id, Message: name + " cannot be negative"}
	}
	if km > limit {
		return 0, &Error{QuestionID: id, Message: fmt.Sprintf("%s cannot exceed %g km", name, limit)}
	}
	return km, nil
}

func clampDays(days int) int {
	return max(minDaysPerWeek, min(maxDaysPerWeek, days))
}

func requiredChoice(m types.AnswerMap, id int, valid []string) (string, error) {
	if _, ok := m[id]; !ok {
		return "", &Error{QuestionID: id, Message: "answer is required"}
	}
	return optionalChoice(m, id, valid, "")
}

func optionalChoice(m types.AnswerMap, id int, valid []string, fallback string) (string, error) {
	v, ok := m[id]
	if !ok {
		return fallback, nil
	}
	if v.Kind != types.KindText {
		return "", &Error{QuestionID: id, Message: "answer must be text"}
	}
	choice := strings.ToLower(v.Text)
	if !slices.Contains(valid, choice) {
		return "", &Error{QuestionID: id, Message: fmt.Sprintf("unrecognized answer %q", v.Text)}
	}
	return choice, nil
}

func (p runnerProfile) prefers(session string) bool {
	return slices.Contains(p.Preferences, session)
}
