package types

// Pathway is a strength-training track selected from a movement screening total.
type Pathway string

// Pathways
const (
	PathwayFoundation       Pathway = "Foundation Pathway"
	PathwayBalancedStrength Pathway = "Balanced Strength Pathway"
	PathwayPerformance      Pathway = "Performance Pathway"
)

// MovementTestScore is the score for one test of the battery.
// Single tests set Score; bilateral tests set Left and Right.
type MovementTestScore struct {
	TestID string `json:"test_id"`
	Score  *int   `json:"score,omitempty"`
	Left   *int   `json:"left,omitempty"`
	Right  *int   `json:"right,omitempty"`
}

// MovementScreeningResult is the aggregated movement screening.
type MovementScreeningResult struct {
	Total       int                 `json:"total"`
	MaxTotal    int                 `json:"max_total"`
	Pathway     Pathway             `json:"pathway"`
	Description string              `json:"description"`
	Scores      []MovementTestScore `json:"scores"`
}
