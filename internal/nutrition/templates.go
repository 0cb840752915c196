package nutrition

import "strings"

// Dietary preferences
const (
	DietStandard   = "standard"
	DietVegetarian = "vegetarian"
	DietVegan      = "vegan"
)

// Training times
const (
	TrainingMorning = "morning"
	TrainingEvening = "evening"
	TrainingOther   = "other"
)

// FuelingWholeFood selects whole food fueling templates. Any other value uses
// the sports product templates.
const FuelingWholeFood = "whole_food"

// highVolumeKm is the weekly volume above which high-volume guidance applies.
const highVolumeKm = 40

type dietMeals struct {
	Breakfast []string
	Lunch     []string
	Dinner    []string
	Snacks    []string
	PostRun   []string
}

var mealsByDiet = map[string]dietMeals{
	DietStandard: {
		Breakfast: []string{
			"Porridge oats with banana, honey and Greek yogurt",
			"Scrambled eggs on wholegrain toast with spinach",
			"Overnight oats with berries and a scoop of whey",
		},
		Lunch: []string{
			"Chicken, rice and roasted vegetable bowl",
			"Tuna wholegrain wrap with mixed salad",
			"Turkey and avocado sandwich with a piece of fruit",
		},
		Dinner: []string{
			"Salmon with sweet potato and greens",
			"Lean beef stir-fry with noodles and peppers",
			"Chicken pasta with tomato sauce and a side salad",
		},
		Snacks: []string{
			"Greek yogurt with granola",
			"Apple with peanut butter",
			"Rice cakes with cottage cheese",
		},
		PostRun: []string{
			"Chocolate milk and a banana",
			"Eggs on toast within an hour of finishing",
			"Greek yogurt with fruit and honey",
		},
	},
	DietVegetarian: {
		Breakfast: []string{
			"Porridge oats with banana, honey and Greek yogurt",
			"Veggie omelette with wholegrain toast",
			"Overnight oats with berries and chia seeds",
		},
		Lunch: []string{
			"Halloumi, quinoa and roasted vegetable bowl",
			"Egg salad wholegrain wrap",
			"Lentil soup with crusty bread and cheese",
		},
		Dinner: []string{
			"Bean chilli with rice and yogurt",
			"Paneer tikka with rice and spinach",
			"Vegetable lasagne with a side salad",
		},
		Snacks: []string{
			"Greek yogurt with granola",
			"Boiled eggs and a piece of fruit",
			"Hummus with wholegrain crackers",
		},
		PostRun: []string{
			"Chocolate milk and a banana",
			"Cottage cheese on toast",
			"Smoothie with milk, oats and berries",
		},
	},
	DietVegan: {
		Breakfast: []string{
			"Porridge oats with soy milk, banana and peanut butter",
			"Tofu scramble on wholegrain toast",
			"Overnight oats with berries, chia and pea protein",
		},
		Lunch: []string{
			"Chickpea, quinoa and roasted vegetable bowl",
			"Falafel wholegrain wrap with hummus",
			"Lentil and vegetable soup with bread",
		},
		Dinner: []string{
			"Tofu stir-fry with noodles and greens",
			"Black bean burrito bowl with rice and salsa",
			"Tempeh curry with rice",
		},
		Snacks: []string{
			"Soy yogurt with granola",
			"Trail mix with nuts and dried fruit",
			"Edamame beans",
		},
		PostRun: []string{
			"Soy milk smoothie with banana and pea protein",
			"Peanut butter and jam bagel",
			"Oat bar and a soy latte",
		},
	},
}

var preRunByTime = map[string][]string{
	TrainingMorning: {
		"Banana or toast with honey 30-60 minutes before",
		"Small glass of juice or water with a rice cake",
	},
	TrainingEvening: {
		"Balanced lunch 4 hours before",
		"Carb-based snack such as a bagel or fruit 1-2 hours before",
	},
	TrainingOther: {
		"Light carb-based meal 2-3 hours before",
		"Top up with fruit 30-60 minutes before if hungry",
	},
}

var duringRunByFueling = map[string][]string{
	FuelingWholeFood: {
		"Dates or dried fruit on runs over 75 minutes",
		"Banana or honey sachet for longer efforts",
		"Water with a pinch of salt in warm conditions",
	},
	"": {
		"Energy gel every 30-40 minutes on runs over 75 minutes",
		"Sports drink with electrolytes on long runs",
		"Chews or bars as an alternative to gels",
	},
}

var trainingGuidelinesByTime = map[string][]string{
	TrainingMorning: {
		"Eat a carb-rich dinner the night before key sessions",
		"Have breakfast or a recovery snack soon after your run",
	},
	TrainingEvening: {
		"Keep lunch carb-focused on quality session days",
		"Finish with a balanced dinner so recovery starts before sleep",
	},
	TrainingOther: {
		"Plan a carb-based meal 2-3 hours before key sessions",
		"Eat a protein and carb snack within an hour after training",
	},
}

var dailyGuidelines = []string{
	"Build each meal around a protein source, a carb source and vegetables",
	"Drink water regularly through the day and check urine colour",
	"Spread protein across meals rather than one large serving",
}

var goalGuidelines = map[string]string{
	GoalLoseFat:     "Keep the deficit modest and never cut carbs around key sessions",
	GoalGainMuscle:  "Add a protein-rich snack before bed to support muscle gain",
	GoalPerformance: "Prioritize carbohydrate on hard and long days",
	GoalMaintain:    "Match intake to training: more on big days, less on rest days",
}

var fuelingGuidelines = map[string][]string{
	FuelingWholeFood: {
		"Test whole food options in training before using them on race day",
	},
	"": {
		"Test gels and drinks in training before using them on race day",
	},
}

var highVolumeGuidelines = []string{
	"Aim for 30-60 g of carbohydrate per hour on runs over 90 minutes",
	"Increase daily carbohydrate in peak weeks to cover higher volume",
}

const sleepGuideline = "Aim for 7-9 hours of sleep to support recovery"

// Lifestyle lines keyed by the stated habit or tolerance. The "" entry covers
// unset and unrecognized values; tracking has no line for them.
var (
	alcoholGuidelines = map[string]string{
		"":     "Limit alcohol, especially the night before long runs",
		"none": "Staying alcohol free helps recovery and sleep quality",
		"high": "Keep alcohol to one or two drinks and skip it the night before long runs",
	}
	caffeineGuidelines = map[string]string{
		"":     "Keep caffeine to the morning and before key sessions",
		"none": "Hydrate well before key sessions in place of caffeine",
		"high": "Cap caffeine at about 400 mg a day and stop by early afternoon",
	}
	trackingGuidelines = map[string]string{
		"never":     "Use the meal suggestions as a template instead of counting",
		"sometimes": "Log intake on key session days to check you are fueling enough",
		"daily":     "Review your log weekly against the calorie target rather than day by day",
	}
)

// habitKey lowercases a habit answer, mapping unknown values to "".
func habitKey(table map[string]string, v string) string {
	k := strings.ToLower(strings.TrimSpace(v))
	if _, ok := table[k]; ok {
		return k
	}
	return ""
}

func normalizeDiet(diet string) string {
	d := strings.ToLower(strings.TrimSpace(diet))
	if _, ok := mealsByDiet[d]; ok {
		return d
	}
	return DietStandard
}

func normalizeTrainingTime(t string) string {
	switch tt := strings.ToLower(strings.TrimSpace(t)); tt {
	case TrainingMorning, TrainingEvening:
		return tt
	default:
		return TrainingOther
	}
}

func fuelingKey(pref string) string {
	if strings.ToLower(strings.TrimSpace(pref)) == FuelingWholeFood {
		return FuelingWholeFood
	}
	return ""
}
