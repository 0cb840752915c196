package nutrition

import (
	"math"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

const (
	proteinPerKg        = 1.8
	proteinPerKgGain    = 2.0
	fatPercent          = 28.0
	fatPercentLoseFat   = 25.0
	caloriesPerGramProt = 4
	caloriesPerGramCarb = 4
	caloriesPerGramFat  = 9
)

// CalculateMacros splits daily calories into protein, fat and carbohydrate.
// Protein is set per kg of body weight, fat as a share of daily calories and
// carbohydrate takes the remainder after protein and the unrounded fat share.
// Reported calories and percentages come from the rounded gram values, so they
// can differ from dailyCalories by a few kcal. Carbohydrate is floored at 0 g
// when protein and fat alone exceed dailyCalories; the sum then overshoots.
func CalculateMacros(dailyCalories int, goal string, weightKg float64) types.MacroBreakdown {
	goal = strings.ToLower(goal)

	perKg := proteinPerKg
	if goal == GoalGainMuscle {
		perKg = proteinPerKgGain
	}
	proteinGrams := int(math.Round(weightKg * perKg))
	proteinCalories := proteinGrams * caloriesPerGramProt

	pct := fatPercent
	if goal == GoalLoseFat {
		pct = fatPercentLoseFat
	}
	fatCalories := float64(dailyCalories) * pct / 100
	fatGrams := int(math.Round(fatCalories / caloriesPerGramFat))

	carbCalories := float64(dailyCalories-proteinCalories) - fatCalories
	carbGrams := max(0, int(math.Round(carbCalories/caloriesPerGramCarb)))

	m := types.MacroBreakdown{
		ProteinGrams:    proteinGrams,
		CarbsGrams:      carbGrams,
		FatsGrams:       fatGrams,
		ProteinCalories: proteinCalories,
		CarbsCalories:   carbGrams * caloriesPerGramCarb,
		FatsCalories:    fatGrams * caloriesPerGramFat,
	}
	m.ProteinPercent = percentOf(m.ProteinCalories, dailyCalories)
	m.CarbsPercent = percentOf(m.CarbsCalories, dailyCalories)
	m.FatsPercent = percentOf(m.FatsCalories, dailyCalories)
	return m
}

func percentOf(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
