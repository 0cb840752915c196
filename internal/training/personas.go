package training

import "github.com/TheABX/runmvmtquiz-sub001/internal/types"

// Persona ids
const (
	PersonaComeback    = "comeback_runner"
	PersonaFoundation  = "foundation_builder"
	PersonaPerformance = "performance_chaser"
	PersonaSteady      = "steady_improver"
)

var personas = map[string]types.Persona{
	PersonaComeback: {
		ID:          PersonaComeback,
		Label:       "Comeback Runner",
		Description: "You're rebuilding after time out or dealing with niggles. The plan prioritizes consistency, gradual load and strength work over speed.",
	},
	PersonaFoundation: {
		ID:          PersonaFoundation,
		Label:       "Foundation Builder",
		Description: "You're early in your running journey. The plan builds an aerobic base and running habit with plenty of easy miles and recovery.",
	},
	PersonaPerformance: {
		ID:          PersonaPerformance,
		Label:       "Performance Chaser",
		Description: "You have a solid base and want a faster time. The plan adds structured speed and threshold work on top of higher volume.",
	},
	PersonaSteady: {
		ID:          PersonaSteady,
		Label:       "Steady Improver",
		Description: "You run regularly and want to go further or feel stronger. The plan balances volume growth with one quality session a week.",
	},
}

// personaRules are evaluated in order; the first match wins.
var personaRules = []struct {
	ID      string
	Matches func(p runnerProfile) bool
}{
	{PersonaComeback, func(p runnerProfile) bool {
		return p.Injury == "recurring" || p.GoalType == GoalReturnFromInjury
	}},
	{PersonaFoundation, func(p runnerProfile) bool {
		return p.Experience == ExperienceBeginner || p.WeeklyKm < 10
	}},
	{PersonaPerformance, func(p runnerProfile) bool {
		return p.GoalType == GoalImproveTime && (p.Experience == ExperienceAdvanced || p.WeeklyKm >= 40)
	}},
	{PersonaSteady, func(runnerProfile) bool { return true }},
}

// ClassifyPersona derives the runner persona from running quiz answers.
func ClassifyPersona(m types.AnswerMap) (types.Persona, error) {
	p, err := parseProfile(m)
	if err != nil {
		return types.Persona{}, err
	}
	return personas[classify(p)], nil
}

func classify(p runnerProfile) string {
	for _, rule := range personaRules {
		if rule.Matches(p) {
			return rule.ID
		}
	}
	return PersonaSteady
}

// LookupPersona returns the built-in persona with the given id.
func LookupPersona(id string) (types.Persona, bool) {
	p, ok := personas[id]
	return p, ok
}
