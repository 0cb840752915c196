package training

import (
	"math"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// DeriveTrainingLoad summarizes a plan's volume. Plans without a recorded
// days-per-week get an estimate from the average volume.
func DeriveTrainingLoad(plan types.TrainingPlan) types.TrainingLoadData {
	if len(plan.Weeks) == 0 {
		return types.TrainingLoadData{TrainingDaysPerWeek: plan.DaysPerWeek}
	}

	var total, peak float64
	for _, w := range plan.Weeks {
		total += w.TargetKm
		peak = max(peak, w.TargetKm)
	}
	avg := math.Round(total/float64(len(plan.Weeks))*10) / 10

	days := plan.DaysPerWeek
	if days == 0 {
		days = estimateDays(avg)
	}
	return types.TrainingLoadData{
		AverageWeeklyKm:     avg,
		PeakWeeklyKm:        peak,
		TrainingDaysPerWeek: days,
	}
}

func estimateDays(avgKm float64) int {
	switch {
	case avgKm < 15:
		return 3
	case avgKm < 30:
		return 4
	case avgKm < 50:
		return 5
	default:
		return 6
	}
}
