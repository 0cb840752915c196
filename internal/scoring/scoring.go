package scoring

import (
	"slices"

	"github.com/TheABX/runmvmtquiz-sub001/internal/answers"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Score is a subscale mean. Valid is false when no contributing answer was present.
type Score struct {
	Value float64
	Valid bool
}

// ScoreDetailed scores every subscale, keeping unanswered subscales distinguishable from low scores.
// Answers for ids outside the inventory are ignored.
func ScoreDetailed(m types.AnswerMap) map[types.Subscale]Score {
	result := make(map[types.Subscale]Score, len(subscaleTable))
	for _, def := range subscaleTable {
		result[def.Subscale] = computeSubscaleScore(def, m)
	}
	return result
}

// computeSubscaleScore averages the present answers of a subscale, reversing flagged items.
// Absent items are left out of both the sum and the count.
func computeSubscaleScore(def SubscaleDefinition, m types.AnswerMap) Score {
	total := 0.0
	count := 0
	for _, id := range def.Items {
		value, ok := m.Number(id)
		if !ok {
			continue
		}
		if slices.Contains(def.Reversed, id) {
			value = reverse(value)
		}
		total += value
		count++
	}

	if count == 0 {
		return Score{}
	}
	return Score{Value: total / float64(count), Valid: true}
}

// ScoreAnswers scores an answer map. Unanswered subscales are reported as 0.
func ScoreAnswers(m types.AnswerMap) types.SubscaleScores {
	var scores types.SubscaleScores
	for sub, score := range ScoreDetailed(m) {
		scores = scores.With(sub, score.Value)
	}
	return scores
}

// CalculateScores validates Likert answers and scores them.
func CalculateScores(raw []types.LikertAnswer) (types.SubscaleScores, error) {
	m, err := answers.FromLikert(raw)
	if err != nil {
		return types.SubscaleScores{}, err
	}
	if err := answers.ValidateLikert(m, LikertQuestionIDs()); err != nil {
		return types.SubscaleScores{}, err
	}
	return ScoreAnswers(m), nil
}

// Unanswered lists the subscales that received no answers, in report order.
func Unanswered(m types.AnswerMap) []types.Subscale {
	detailed := ScoreDetailed(m)
	var missing []types.Subscale
	for _, sub := range types.AllSubscales {
		if !detailed[sub].Valid {
			missing = append(missing, sub)
		}
	}
	return missing
}
