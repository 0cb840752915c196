package screening

import (
	"fmt"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// Aggregate validates the scores against the battery, sums them and picks a pathway.
// Every test must be scored exactly once. Result scores follow battery order.
func Aggregate(b Battery, scores []types.MovementTestScore) (types.MovementScreeningResult, error) {
	byID := make(map[string]types.MovementTestScore, len(scores))
	for _, s := range scores {
		if _, ok := b.Lookup(s.TestID); !ok {
			return types.MovementScreeningResult{}, &ScoreError{TestID: s.TestID, Message: "unknown test"}
		}
		if _, dup := byID[s.TestID]; dup {
			return types.MovementScreeningResult{}, &ScoreError{TestID: s.TestID, Message: "scored more than once"}
		}
		byID[s.TestID] = s
	}

	result := types.MovementScreeningResult{
		Scores: make([]types.MovementTestScore, 0, len(b)),
	}
	for _, t := range b {
		s, ok := byID[t.ID]
		if !ok {
			return types.MovementScreeningResult{}, &ScoreError{TestID: t.ID, Message: "missing score"}
		}
		points, err := testPoints(t, s)
		if err != nil {
			return types.MovementScreeningResult{}, err
		}
		result.Total += points
		result.MaxTotal += t.MaxScore * t.Slots()
		result.Scores = append(result.Scores, s)
	}

	result.Pathway = GetPathway(result.Total)
	result.Description = GetPathwayDescription(result.Pathway)
	return result, nil
}

func testPoints(t Test, s types.MovementTestScore) (int, error) {
	if !t.Bilateral {
		if s.Left != nil || s.Right != nil {
			return 0, &ScoreError{TestID: t.ID, Message: "single test cannot have sides"}
		}
		if s.Score == nil {
			return 0, &ScoreError{TestID: t.ID, Message: "score is required"}
		}
		return checkPoints(t, "score", *s.Score)
	}

	if s.Score != nil {
		return 0, &ScoreError{TestID: t.ID, Message: "bilateral test needs left and right, not score"}
	}
	if s.Left == nil || s.Right == nil {
		return 0, &ScoreError{TestID: t.ID, Message: "left and right scores are required"}
	}
	left, err := checkPoints(t, "left", *s.Left)
	if err != nil {
		return 0, err
	}
	right, err := checkPoints(t, "right", *s.Right)
	if err != nil {
		return 0, err
	}
	return left + right, nil
}

func checkPoints(t Test, field string, v int) (int, error) {
	if v < 0 || v > t.MaxScore {
		return 0, &ScoreError{TestID: t.ID, Message: fmt.Sprintf("%s %d outside 0..%d", field, v, t.MaxScore)}
	}
	return v, nil
}
