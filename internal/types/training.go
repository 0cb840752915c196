package types

// Persona is a runner archetype derived from the running onboarding quiz.
type Persona struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// KeySession is a notable session within a training week.
type KeySession struct {
	Day             string `json:"day"`
	Type            string `json:"type"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Intensity       string `json:"intensity,omitempty"`
}

// WeeklyStructure describes one week of a training plan.
type WeeklyStructure struct {
	Week        int          `json:"week"`
	TargetKm    float64      `json:"target_km"`
	Focus       string       `json:"focus"`
	KeySessions []KeySession `json:"key_sessions"`
}

// TrainingPlan is a 12-week structured running plan.
type TrainingPlan struct {
	DistanceGoal  string            `json:"distance_goal"`
	GoalType      string            `json:"goal_type"`
	DurationWeeks int               `json:"duration_weeks"`
	DaysPerWeek   int               `json:"days_per_week"`
	Persona       Persona           `json:"persona"`
	Weeks         []WeeklyStructure `json:"weeks"`
}

// TrainingLoadData summarizes a training plan for nutrition planning.
type TrainingLoadData struct {
	AverageWeeklyKm     float64 `json:"average_weekly_km"`
	PeakWeeklyKm        float64 `json:"peak_weekly_km"`
	TrainingDaysPerWeek int     `json:"training_days_per_week"`
}

// TrainingResult is the full output of the running onboarding flow.
type TrainingResult struct {
	Persona Persona          `json:"persona"`
	Plan    TrainingPlan     `json:"plan"`
	Load    TrainingLoadData `json:"training_load"`
}
