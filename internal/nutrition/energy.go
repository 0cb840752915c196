package nutrition

import (
	"math"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Goals
const (
	GoalLoseFat     = "lose_fat"
	GoalGainMuscle  = "gain_muscle"
	GoalPerformance = "performance"
	GoalMaintain    = "maintain"
)

// Mifflin-St Jeor sex constants. Unspecified sex uses the midpoint.
const (
	maleOffset   = 5
	femaleOffset = -161
	otherOffset  = -78
)

// CalculateBMR returns basal metabolic rate in kcal using Mifflin-St Jeor.
func CalculateBMR(weightKg, heightCm float64, age int, sex string) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch strings.ToLower(sex) {
	case "male":
		bmr += maleOffset
	case "female":
		bmr += femaleOffset
	default:
		bmr += otherOffset
	}
	return int(math.Round(bmr))
}

// activityStep is one row of the running volume multiplier table.
// Volumes below UnderKm use Low when days <= SplitDays and High otherwise.
type activityStep struct {
	UnderKm   float64
	SplitDays int
	Low       float64
	High      float64
}

var activitySteps = []activityStep{
	{UnderKm: 20, SplitDays: 3, Low: 1.375, High: 1.4},
	{UnderKm: 40, SplitDays: 4, Low: 1.5, High: 1.6},
	{UnderKm: 60, SplitDays: 5, Low: 1.7, High: 1.75},
}

const highVolumeMultiplier = 1.9

// ActivityMultiplier picks the TDEE multiplier for a training load.
func ActivityMultiplier(load types.TrainingLoadData) float64 {
	for _, step := range activitySteps {
		if load.AverageWeeklyKm < step.UnderKm {
			if load.TrainingDaysPerWeek <= step.SplitDays {
				return step.Low
			}
			return step.High
		}
	}
	return highVolumeMultiplier
}

// CalculateTDEE scales BMR by the training load multiplier.
func CalculateTDEE(bmr int, load types.TrainingLoadData) int {
	return int(math.Round(float64(bmr) * ActivityMultiplier(load)))
}

// AdjustCaloriesForGoal shifts TDEE toward the stated goal. The fat loss deficit
// is capped at 15% of TDEE. weightKg is accepted for callers that pass it but
// does not affect the result.
func AdjustCaloriesForGoal(tdee int, goal string, weightKg float64) int {
	switch strings.ToLower(goal) {
	case GoalLoseFat:
		return max(tdee-400, int(math.Round(float64(tdee)*0.85)))
	case GoalGainMuscle:
		return tdee + 300
	case GoalPerformance:
		return tdee + 100
	default:
		return tdee
	}
}
