package types

// NutritionData holds body metrics and eating preferences.
// Required fields are pointers so that absence is distinguishable from zero.
type NutritionData struct {
	Sex                    string   `json:"sex"`
	Age                    *int     `json:"age"`
	WeightKg               *float64 `json:"weight_kg"`
	HeightCm               *float64 `json:"height_cm"`
	BodyFatPercent         *float64 `json:"body_fat_percent,omitempty"`
	Goal                   string   `json:"goal"`
	DietaryPreference      string   `json:"dietary_preference"`
	Restrictions           []string `json:"restrictions,omitempty"`
	FuelingPreference      string   `json:"fueling_preference"`
	TrainingTime           string   `json:"training_time"`
	MealsPerDay            int      `json:"meals_per_day,omitempty"`
	TrackingHabit          string   `json:"tracking_habit,omitempty"`
	AlcoholTolerance       string   `json:"alcohol_tolerance,omitempty"`
	CaffeineTolerance      string   `json:"caffeine_tolerance,omitempty"`
	CurrentFuelingProducts []string `json:"current_fueling_products,omitempty"`
}

// MacroBreakdown is the daily macro split. Calories are derived from the rounded gram values.
type MacroBreakdown struct {
	ProteinGrams    int     `json:"protein_grams"`
	CarbsGrams      int     `json:"carbs_grams"`
	FatsGrams       int     `json:"fats_grams"`
	ProteinCalories int     `json:"protein_calories"`
	CarbsCalories   int     `json:"carbs_calories"`
	FatsCalories    int     `json:"fats_calories"`
	ProteinPercent  float64 `json:"protein_percent"`
	CarbsPercent    float64 `json:"carbs_percent"`
	FatsPercent     float64 `json:"fats_percent"`
}

// MealSuggestions groups templated meal ideas by slot.
type MealSuggestions struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
	PreRun    []string `json:"pre_run"`
	PostRun   []string `json:"post_run"`
	DuringRun []string `json:"during_run"`
}

// Guidelines groups templated advice by theme.
type Guidelines struct {
	Daily     []string `json:"daily"`
	Training  []string `json:"training"`
	Fueling   []string `json:"fueling"`
	Lifestyle []string `json:"lifestyle"`
}

// NutritionPlan is the computed nutrition plan.
type NutritionPlan struct {
	BMR           int             `json:"bmr"`
	TDEE          int             `json:"tdee"`
	DailyCalories int             `json:"daily_calories"`
	Macros        MacroBreakdown  `json:"macros"`
	Meals         MealSuggestions `json:"meals"`
	Guidelines    Guidelines      `json:"guidelines"`
}
