package nutrition

import (
	"fmt"
	"slices"
	"strings"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// GenerateNutritionPlan computes energy targets, macros and templated guidance.
// Weight, height, age and sex are required.
func GenerateNutritionPlan(data types.NutritionData, load types.TrainingLoadData) (types.NutritionPlan, error) {
	if err := checkRequired(data); err != nil {
		return types.NutritionPlan{}, err
	}

	weight := *data.WeightKg
	bmr := CalculateBMR(weight, *data.HeightCm, *data.Age, data.Sex)
	tdee := CalculateTDEE(bmr, load)
	daily := AdjustCaloriesForGoal(tdee, data.Goal, weight)

	return types.NutritionPlan{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: daily,
		Macros:        CalculateMacros(daily, data.Goal, weight),
		Meals:         BuildMealSuggestions(data, load),
		Guidelines:    BuildGuidelines(data, load),
	}, nil
}

func checkRequired(data types.NutritionData) error {
	switch {
	case data.WeightKg == nil:
		return &MissingFieldError{Field: "weight_kg"}
	case data.HeightCm == nil:
		return &MissingFieldError{Field: "height_cm"}
	case data.Age == nil:
		return &MissingFieldError{Field: "age"}
	case strings.TrimSpace(data.Sex) == "":
		return &MissingFieldError{Field: "sex"}
	}
	switch {
	case *data.WeightKg <= 0:
		return &InvalidFieldError{Field: "weight_kg", Message: "must be positive"}
	case *data.HeightCm <= 0:
		return &InvalidFieldError{Field: "height_cm", Message: "must be positive"}
	case *data.Age <= 0:
		return &InvalidFieldError{Field: "age", Message: "must be positive"}
	}
	return nil
}

// BuildMealSuggestions selects meal templates by diet, training time and fueling preference.
// Unknown diets use the standard templates.
func BuildMealSuggestions(data types.NutritionData, load types.TrainingLoadData) types.MealSuggestions {
	diet := mealsByDiet[normalizeDiet(data.DietaryPreference)]
	during := slices.Clone(duringRunByFueling[fuelingKey(data.FuelingPreference)])
	if load.AverageWeeklyKm > highVolumeKm {
		during = append(during, "Practice race-day fueling on every long run")
	}
	return types.MealSuggestions{
		Breakfast: slices.Clone(diet.Breakfast),
		Lunch:     slices.Clone(diet.Lunch),
		Dinner:    slices.Clone(diet.Dinner),
		Snacks:    slices.Clone(diet.Snacks),
		PreRun:    slices.Clone(preRunByTime[normalizeTrainingTime(data.TrainingTime)]),
		PostRun:   slices.Clone(diet.PostRun),
		DuringRun: during,
	}
}

// BuildGuidelines selects guideline templates for the runner's goal, schedule and volume.
func BuildGuidelines(data types.NutritionData, load types.TrainingLoadData) types.Guidelines {
	daily := slices.Clone(dailyGuidelines)
	if g, ok := goalGuidelines[strings.ToLower(data.Goal)]; ok {
		daily = append(daily, g)
	} else {
		daily = append(daily, goalGuidelines[GoalMaintain])
	}
	if len(data.Restrictions) > 0 {
		daily = append(daily, fmt.Sprintf("Check labels and swap ingredients for: %s", strings.Join(data.Restrictions, ", ")))
	}
	if data.MealsPerDay > 0 {
		daily = append(daily, fmt.Sprintf("Split intake across your %d daily meals", data.MealsPerDay))
	}

	training := slices.Clone(trainingGuidelinesByTime[normalizeTrainingTime(data.TrainingTime)])
	fueling := slices.Clone(fuelingGuidelines[fuelingKey(data.FuelingPreference)])
	if load.AverageWeeklyKm > highVolumeKm {
		training = append(training, highVolumeGuidelines...)
	}
	if len(data.CurrentFuelingProducts) > 0 {
		fueling = append(fueling, fmt.Sprintf("Keep using what already works for you: %s", strings.Join(data.CurrentFuelingProducts, ", ")))
	}

	return types.Guidelines{
		Daily:     daily,
		Training:  training,
		Fueling:   fueling,
		Lifestyle: lifestyle(data),
	}
}

// lifestyle builds the sleep, alcohol, caffeine and tracking lines from the stated habits.
func lifestyle(data types.NutritionData) []string {
	lines := []string{
		sleepGuideline,
		alcoholGuidelines[habitKey(alcoholGuidelines, data.AlcoholTolerance)],
		caffeineGuidelines[habitKey(caffeineGuidelines, data.CaffeineTolerance)],
	}
	if line, ok := trackingGuidelines[habitKey(trackingGuidelines, data.TrackingHabit)]; ok {
		lines = append(lines, line)
	}
	return lines
}
