package types

// ContentBlock is a canned narrative block selected by classification.
type ContentBlock struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Growth string `json:"growth"`
}

// TraitFeedback is the feedback for one subscale.
type TraitFeedback struct {
	Subscale Subscale     `json:"subscale"`
	Score    float64      `json:"score"`
	Level    Level        `json:"level"`
	Content  ContentBlock `json:"content"`
}

// Profile bundles scores, levels and the selected feedback content for a dating quiz result.
type Profile struct {
	Scores          SubscaleScores     `json:"scores"`
	Levels          map[Subscale]Level `json:"levels"`
	AttachmentStyle AttachmentStyle    `json:"attachment_style"`
	Attachment      ContentBlock       `json:"attachment"`
	Traits          []TraitFeedback    `json:"traits"`
}

// GrowthBlock is one focus area of the growth plan.
type GrowthBlock struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Why     string   `json:"why"`
	Actions []string `json:"actions"`
}

// MindsetShift pairs an unhelpful belief with its replacement.
type MindsetShift struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// DatingResult is the full output of scoring a dating quiz submission.
type DatingResult struct {
	Profile    Profile        `json:"profile"`
	Priorities []string       `json:"priorities"`
	PlanBlocks []GrowthBlock  `json:"plan_blocks"`
	Shifts     []MindsetShift `json:"mindset_shifts"`
}
