package types

// Subscale names a scored trait of the dating self-insight quiz.
type Subscale string

// Subscales in report order
const (
	SubscaleAnxiety                    Subscale = "anxiety"
	SubscaleAvoidance                  Subscale = "avoidance"
	SubscaleNeuroticism                Subscale = "neuroticism"
	SubscaleConscientiousness          Subscale = "conscientiousness"
	SubscaleTransformationalLeadership Subscale = "transformational_leadership"
	SubscaleSelfFrame                  Subscale = "self_frame"
	SubscaleGoalOrientation            Subscale = "goal_orientation"
)

// AllSubscales lists every subscale in report order.
var AllSubscales = []Subscale{
	SubscaleAnxiety,
	SubscaleAvoidance,
	SubscaleNeuroticism,
	SubscaleConscientiousness,
	SubscaleTransformationalLeadership,
	SubscaleSelfFrame,
	SubscaleGoalOrientation,
}

// SubscaleScores holds the mean Likert score of every subscale.
// A subscale with no contributing answers is reported as 0.
type SubscaleScores struct {
	Anxiety                    float64 `json:"anxiety"`
	Avoidance                  float64 `json:"avoidance"`
	Neuroticism                float64 `json:"neuroticism"`
	Conscientiousness          float64 `json:"conscientiousness"`
	TransformationalLeadership float64 `json:"transformational_leadership"`
	SelfFrame                  float64 `json:"self_frame"`
	GoalOrientation            float64 `json:"goal_orientation"`
}

// Get returns the score of the named subscale. Unknown names return 0.
func (s SubscaleScores) Get(sub Subscale) float64 {
	switch sub {
	case SubscaleAnxiety:
		return s.Anxiety
	case SubscaleAvoidance:
		return s.Avoidance
	case SubscaleNeuroticism:
		return s.Neuroticism
	case SubscaleConscientiousness:
		return s.Conscientiousness
	case SubscaleTransformationalLeadership:
		return s.TransformationalLeadership
	case SubscaleSelfFrame:
		return s.SelfFrame
	case SubscaleGoalOrientation:
		return s.GoalOrientation
	default:
		return 0
	}
}

// With returns a copy of s with the named subscale set to value.
func (s SubscaleScores) With(sub Subscale, value float64) SubscaleScores {
	switch sub {
	case SubscaleAnxiety:
		s.Anxiety = value
	case SubscaleAvoidance:
		s.Avoidance = value
	case SubscaleNeuroticism:
		s.Neuroticism = value
	case SubscaleConscientiousness:
		s.Conscientiousness = value
	case SubscaleTransformationalLeadership:
		s.TransformationalLeadership = value
	case SubscaleSelfFrame:
		s.SelfFrame = value
	case SubscaleGoalOrientation:
		s.GoalOrientation = value
	}
	return s
}

// Level is a coarse banding of a subscale score.
type Level string

// Levels
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// AttachmentStyle is the composite style derived from anxiety and avoidance.
type AttachmentStyle string

// Attachment styles
const (
	AttachmentSecure             AttachmentStyle = "secure"
	AttachmentAnxiousPreoccupied AttachmentStyle = "anxious_preoccupied"
	AttachmentDismissiveAvoidant AttachmentStyle = "dismissive_avoidant"
	AttachmentFearfulAvoidant    AttachmentStyle = "fearful_avoidant"
)
