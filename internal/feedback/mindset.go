package feedback

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

const (
	maxMindsetCategories = 3
	maxShiftsPerCategory = 3
	maxMindsetShifts     = 8
	neutralScore         = 3.0
)

// Permuter returns a random permutation of [0, n). *rand.Rand satisfies it.
type Permuter interface {
	Perm(n int) []int
}

type globalPermuter struct{}

func (globalPermuter) Perm(n int) []int { return rand.Perm(n) }

// DefaultPermuter draws from the process-wide random source.
var DefaultPermuter Permuter = globalPermuter{}

type mindsetCategory struct {
	Key     string
	Trigger trigger
	Shifts  []types.MindsetShift
}

// mindsetCategories shares keys, triggers and priority order with growthRules.
var mindsetCategories = []mindsetCategory{
	{
		Key:     GrowthFrame,
		Trigger: trigger{Subscale: types.SubscaleSelfFrame, Threshold: 3},
		Shifts: []types.MindsetShift{
			{Old: "If they lose interest, something is wrong with me.", New: "Their interest is information about fit, not a verdict on my worth."},
			{Old: "I need to impress them.", New: "I'm here to find out whether they fit my life."},
			{Old: "I should adjust to what they like.", New: "My standards are part of what makes me attractive."},
			{Old: "A bad date means I failed.", New: "A bad date is a fast answer."},
			{Old: "I have to be chosen.", New: "I am also choosing."},
		},
	},
	{
		Key:     GrowthAnxiety,
		Trigger: trigger{Subscale: types.SubscaleAnxiety, Threshold: 3.5, Above: true},
		Shifts: []types.MindsetShift{
			{Old: "A slow reply means they're pulling away.", New: "People have lives. I'll judge by patterns, not single messages."},
			{Old: "I need to know where this is going right now.", New: "Clarity comes with time and direct conversation."},
			{Old: "If I don't hold on tight, I'll lose them.", New: "The right person stays without being chased."},
			{Old: "Their mood is my responsibility.", New: "I can care about their mood without owning it."},
			{Old: "Feeling anxious means something is wrong.", New: "Anxiety is a signal to slow down, not a fact."},
		},
	},
	{
		Key:     GrowthAvoidance,
		Trigger: trigger{Subscale: types.SubscaleAvoidance, Threshold: 3.5, Above: true},
		Shifts: []types.MindsetShift{
			{Old: "Needing someone is weakness.", New: "Letting someone matter is a strength."},
			{Old: "If I open up, I'll lose my freedom.", New: "Closeness and independence can coexist."},
			{Old: "They're too much.", New: "Maybe this is a need I can meet halfway."},
			{Old: "I'm better on my own.", New: "I'm good on my own and can be good with someone too."},
			{Old: "Feelings complicate things.", New: "Feelings are how people know where they stand with me."},
		},
	},
	{
		Key:     GrowthNeuroticism,
		Trigger: trigger{Subscale: types.SubscaleNeuroticism, Threshold: 3.5, Above: true},
		Shifts: []types.MindsetShift{
			{Old: "This feeling will last forever.", New: "Strong feelings pass. I can wait before deciding."},
			{Old: "Everything is going wrong.", New: "One thing went wrong. Most things are fine."},
			{Old: "I can't handle rejection.", New: "Rejection stings and I recover every time."},
			{Old: "I need to fix this feeling now.", New: "I can let this feeling be here while I act on my values."},
		},
	},
	{
		Key:     GrowthLeadership,
		Trigger: trigger{Subscale: types.SubscaleTransformationalLeadership, Threshold: 3},
		Shifts: []types.MindsetShift{
			{Old: "I'll let them decide.", New: "I'll suggest a plan and stay open to theirs."},
			{Old: "Taking the lead is pushy.", New: "Clear direction is generous."},
			{Old: "My ideas aren't interesting.", New: "Sharing my ideas lets people know me."},
			{Old: "Leaders have it all figured out.", New: "Leading means going first, not being perfect."},
		},
	},
	{
		Key:     GrowthConscientiousness,
		Trigger: trigger{Subscale: types.SubscaleConscientiousness, Threshold: 3},
		Shifts: []types.MindsetShift{
			{Old: "I'll figure it out when the time comes.", New: "A little planning makes space for the fun parts."},
			{Old: "Rescheduling is no big deal.", New: "Keeping plans is how trust gets built."},
			{Old: "Structure kills spontaneity.", New: "Structure gives spontaneity somewhere to happen."},
			{Old: "Small promises don't matter.", New: "Small promises are how people measure reliability."},
		},
	},
	{
		Key:     GrowthGoals,
		Trigger: trigger{Subscale: types.SubscaleGoalOrientation, Threshold: 3},
		Shifts: []types.MindsetShift{
			{Old: "I'll know it when I see it.", New: "Knowing what I want helps me see it."},
			{Old: "Having goals makes dating feel like work.", New: "Goals save me from wasting time on poor fits."},
			{Old: "I'll just see what happens.", New: "I'll decide what I want and let that guide what happens."},
			{Old: "Wanting something specific is too picky.", New: "Being specific is being honest."},
		},
	},
}

// selectCategories picks up to three triggered categories in priority order.
// When none trigger, it falls back to the categories farthest from the neutral score.
func selectCategories(scores types.SubscaleScores) []mindsetCategory {
	var picked []mindsetCategory
	for _, c := range mindsetCategories {
		if c.Trigger.fires(scores) {
			picked = append(picked, c)
			if len(picked) == maxMindsetCategories {
				return picked
			}
		}
	}
	if len(picked) > 0 {
		return picked
	}

	byDistance := make([]mindsetCategory, len(mindsetCategories))
	copy(byDistance, mindsetCategories)
	sort.SliceStable(byDistance, func(i, j int) bool {
		di := math.Abs(scores.Get(byDistance[i].Trigger.Subscale) - neutralScore)
		dj := math.Abs(scores.Get(byDistance[j].Trigger.Subscale) - neutralScore)
		return di > dj
	})
	return byDistance[:maxMindsetCategories]
}

// SelectMindsetShifts draws up to three shifts from each selected category without replacement,
// capped at eight in total. src controls the draw.
func SelectMindsetShifts(scores types.SubscaleScores, src Permuter) []types.MindsetShift {
	if src == nil {
		src = DefaultPermuter
	}

	shifts := make([]types.MindsetShift, 0, maxMindsetShifts)
	for _, c := range selectCategories(scores) {
		order := src.Perm(len(c.Shifts))
		take := min(maxShiftsPerCategory, len(order))
		for _, idx := range order[:take] {
			if len(shifts) == maxMindsetShifts {
				return shifts
			}
			shifts = append(shifts, c.Shifts[idx])
		}
	}
	return shifts
}

// GetMindsetShifts selects mindset shifts using the default random source.
func GetMindsetShifts(scores types.SubscaleScores) []types.MindsetShift {
	return SelectMindsetShifts(scores, DefaultPermuter)
}
