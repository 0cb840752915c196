// Package scoring computes subscale scores from dating quiz answers and classifies them into levels and styles.
package scoring

import (
	"slices"

	"github.com/TheABX/runmvmtquiz-sub001/internal/answers"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// SubscaleDefinition lists the questions contributing to a subscale and which of them are reverse-scored.
type SubscaleDefinition struct {
	Subscale types.Subscale
	Items    []int
	Reversed []int
}

// subscaleTable is the question inventory of the dating self-insight quiz.
var subscaleTable = []SubscaleDefinition{
	{Subscale: types.SubscaleNeuroticism, Items: []int{1, 2, 3, 4}, Reversed: []int{3}},
	{Subscale: types.SubscaleConscientiousness, Items: []int{5, 6, 7, 8}, Reversed: []int{7}},
	{Subscale: types.SubscaleTransformationalLeadership, Items: []int{9, 10, 11, 12}},
	{Subscale: types.SubscaleAnxiety, Items: []int{13, 14, 15, 16, 17, 18}, Reversed: []int{17}},
	{Subscale: types.SubscaleAvoidance, Items: []int{19, 20, 21, 22, 23, 24}, Reversed: []int{22, 24}},
	{Subscale: types.SubscaleSelfFrame, Items: []int{25, 26, 27, 28, 29}, Reversed: []int{27}},
	{Subscale: types.SubscaleGoalOrientation, Items: []int{30, 31, 32, 33}, Reversed: []int{33}},
}

// SubscaleDefinitions returns a copy of the question inventory.
func SubscaleDefinitions() []SubscaleDefinition {
	out := make([]SubscaleDefinition, len(subscaleTable))
	for i, def := range subscaleTable {
		out[i] = SubscaleDefinition{
			Subscale: def.Subscale,
			Items:    slices.Clone(def.Items),
			Reversed: slices.Clone(def.Reversed),
		}
	}
	return out
}

// LikertQuestionIDs returns every scored question id in ascending order.
func LikertQuestionIDs() []int {
	var ids []int
	for _, def := range subscaleTable {
		ids = append(ids, def.Items...)
	}
	slices.Sort(ids)
	return ids
}

// reverse maps a Likert value onto the opposite end of the scale.
func reverse(value float64) float64 {
	return float64(answers.LikertMax+answers.LikertMin) - value
}

// LevelThresholds are the upper bounds of the low and medium bands used for trait levels.
var LevelThresholds = struct {
	LowMax    float64
	MediumMax float64
}{
	LowMax:    2.5,
	MediumMax: 3.5,
}

// AttachmentThresholds bound the low and high bands used on the anxiety and avoidance axes.
// These differ from LevelThresholds on purpose; content selection depends on both tables.
var AttachmentThresholds = struct {
	LowMax  float64
	HighMin float64
}{
	LowMax:  2.5,
	HighMin: 3.6,
}

type axisBand int

const (
	bandLow axisBand = iota
	bandMid
	bandHigh
)

// attachmentTable is indexed by [anxiety band][avoidance band].
// Mid-range scores never classify as secure.
var attachmentTable = [3][3]types.AttachmentStyle{
	bandLow: {
		bandLow:  types.AttachmentSecure,
		bandMid:  types.AttachmentDismissiveAvoidant,
		bandHigh: types.AttachmentDismissiveAvoidant,
	},
	bandMid: {
		bandLow:  types.AttachmentAnxiousPreoccupied,
		bandMid:  types.AttachmentFearfulAvoidant,
		bandHigh: types.AttachmentDismissiveAvoidant,
	},
	bandHigh: {
		bandLow:  types.AttachmentAnxiousPreoccupied,
		bandMid:  types.AttachmentAnxiousPreoccupied,
		bandHigh: types.AttachmentFearfulAvoidant,
	},
}
