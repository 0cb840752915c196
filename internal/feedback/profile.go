package feedback

import (
	"github.com/TheABX/runmvmtquiz-sub001/internal/scoring"
	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
)

// BuildProfile classifies scores and attaches the matching content blocks.
func BuildProfile(scores types.SubscaleScores) types.Profile {
	levels := scoring.ClassifyLevels(scores)
	style := scoring.ClassifyAttachment(scores)
	attachment, _ := AttachmentContent(style)

	traits := make([]types.TraitFeedback, 0, len(types.AllSubscales))
	for _, sub := range types.AllSubscales {
		content, _ := TraitContent(sub, levels[sub])
		traits = append(traits, types.TraitFeedback{
			Subscale: sub,
			Score:    scores.Get(sub),
			Level:    levels[sub],
			Content:  content,
		})
	}

	return types.Profile{
		Scores:          scores,
		Levels:          levels,
		AttachmentStyle: style,
		Attachment:      attachment,
		Traits:          traits,
	}
}

// BuildResult assembles the full dating quiz result using src for mindset sampling.
func BuildResult(scores types.SubscaleScores, src Permuter) types.DatingResult {
	return types.DatingResult{
		Profile:    BuildProfile(scores),
		Priorities: GetGrowthPriorities(scores),
		PlanBlocks: BuildPlanBlocks(scores),
		Shifts:     SelectMindsetShifts(scores, src),
	}
}
