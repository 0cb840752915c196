package feedback

import (
	"slices"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// MaxGrowthBlocks caps the number of focus areas in a growth plan.
const MaxGrowthBlocks = 3

// Growth block keys in priority order
const (
	GrowthFrame             = "frame"
	GrowthAnxiety           = "anxiety"
	GrowthAvoidance         = "avoidance"
	GrowthNeuroticism       = "neuroticism"
	GrowthLeadership        = "leadership"
	GrowthConscientiousness = "conscientiousness"
	GrowthGoals             = "goals"
)

// trigger fires when a subscale score crosses a threshold in the given direction.
type trigger struct {
	Subscale  types.Subscale
	Threshold float64
	Above     bool
}

func (t trigger) fires(scores types.SubscaleScores) bool {
	v := scores.Get(t.Subscale)
	if t.Above {
		return v > t.Threshold
	}
	return v < t.Threshold
}

type growthRule struct {
	Trigger trigger
	Block   types.GrowthBlock
}

// growthRules is ordered by priority.
var growthRules = []growthRule{
	{
		Trigger: trigger{Subscale: types.SubscaleSelfFrame, Threshold: 3},
		Block: types.GrowthBlock{
			Key:   GrowthFrame,
			Title: "Strengthen your frame",
			Why:   "Your sense of worth shifts with how dates go. A stable frame makes every other change easier.",
			Actions: []string{
				"Write three personal standards you won't bend for attraction alone.",
				"After each date, rate how you showed up, not how they responded.",
				"Schedule one activity a week that is purely for you.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleAnxiety, Threshold: 3.5, Above: true},
		Block: types.GrowthBlock{
			Key:   GrowthAnxiety,
			Title: "Calm the reassurance loop",
			Why:   "High relationship anxiety drives over-checking and over-texting, which can push good matches away.",
			Actions: []string{
				"Wait 20 minutes before replying when you feel a spike of worry.",
				"Keep a short list of facts about the connection to review instead of guessing.",
				"Ask for clarity once, directly, rather than hunting for signals.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleAvoidance, Threshold: 3.5, Above: true},
		Block: types.GrowthBlock{
			Key:   GrowthAvoidance,
			Title: "Let people in gradually",
			Why:   "Keeping distance protects you but also keeps relationships from deepening.",
			Actions: []string{
				"Share one personal story on each date that you'd normally keep back.",
				"When you want space, say so and say when you'll reconnect.",
				"Notice the moment you start finding faults and pause before acting on it.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleNeuroticism, Threshold: 3.5, Above: true},
		Block: types.GrowthBlock{
			Key:   GrowthNeuroticism,
			Title: "Steady your baseline",
			Why:   "Strong emotional swings make dating feel like a rollercoaster and cloud your judgement.",
			Actions: []string{
				"Protect seven hours of sleep before dates.",
				"Use a two-minute breathing routine before difficult conversations.",
				"Move your body daily. It is the fastest mood regulator you have.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleTransformationalLeadership, Threshold: 3},
		Block: types.GrowthBlock{
			Key:   GrowthLeadership,
			Title: "Take the lead",
			Why:   "Holding back on direction can read as low interest. Leading with warmth builds attraction.",
			Actions: []string{
				"Propose a specific plan with a day and time for the next date.",
				"Share one thing you're excited about in your life right now.",
				"Offer encouragement when your date talks about their goals.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleConscientiousness, Threshold: 3},
		Block: types.GrowthBlock{
			Key:   GrowthConscientiousness,
			Title: "Follow through",
			Why:   "Reliability is one of the strongest predictors of long-term attraction.",
			Actions: []string{
				"Confirm plans the day before, every time.",
				"Put dates in your calendar the moment you agree to them.",
				"Keep one small promise to yourself each day.",
			},
		},
	},
	{
		Trigger: trigger{Subscale: types.SubscaleGoalOrientation, Threshold: 3},
		Block: types.GrowthBlock{
			Key:   GrowthGoals,
			Title: "Set a direction",
			Why:   "Without a clear goal it's easy to drift into connections that don't fit what you want.",
			Actions: []string{
				"Write one sentence describing the relationship you want.",
				"List three dealbreakers and three must-haves.",
				"Review your matches against that list once a week.",
			},
		},
	},
}

// triggeredRules returns the triggered growth rules in priority order, capped at MaxGrowthBlocks.
func triggeredRules(scores types.SubscaleScores) []growthRule {
	var out []growthRule
	for _, rule := range growthRules {
		if !rule.Trigger.fires(scores) {
			continue
		}
		out = append(out, rule)
		if len(out) == MaxGrowthBlocks {
			break
		}
	}
	return out
}

// GetGrowthPriorities returns the titles of up to three focus areas in priority order.
func GetGrowthPriorities(scores types.SubscaleScores) []string {
	rules := triggeredRules(scores)
	titles := make([]string, 0, len(rules))
	for _, rule := range rules {
		titles = append(titles, rule.Block.Title)
	}
	return titles
}

// BuildPlanBlocks returns up to three growth blocks in priority order.
// The returned blocks do not share memory with the built-in table.
func BuildPlanBlocks(scores types.SubscaleScores) []types.GrowthBlock {
	rules := triggeredRules(scores)
	blocks := make([]types.GrowthBlock, 0, len(rules))
	for _, rule := range rules {
		b := rule.Block
		b.Actions = slices.Clone(b.Actions)
		blocks = append(blocks, b)
	}
	return blocks
}
