package scoring

import "github.com/TheABX/runmvmtquiz-sub001/internal/types"

// ClassifyLevel bands a subscale score: ≤2.5 low, ≤3.5 medium, otherwise high.
func ClassifyLevel(score float64) types.Level {
	switch {
	case score <= LevelThresholds.LowMax:
		return types.LevelLow
	case score <= LevelThresholds.MediumMax:
		return types.LevelMedium
	default:
		return types.LevelHigh
	}
}

// ClassifyLevels bands every subscale.
func ClassifyLevels(scores types.SubscaleScores) map[types.Subscale]types.Level {
	levels := make(map[types.Subscale]types.Level, len(types.AllSubscales))
	for _, sub := range types.AllSubscales {
		levels[sub] = ClassifyLevel(scores.Get(sub))
	}
	return levels
}

func attachmentBand(score float64) axisBand {
	switch {
	case score <= AttachmentThresholds.LowMax:
		return bandLow
	case score >= AttachmentThresholds.HighMin:
		return bandHigh
	default:
		return bandMid
	}
}

// ClassifyAttachment derives the attachment style from the anxiety and avoidance scores.
func ClassifyAttachment(scores types.SubscaleScores) types.AttachmentStyle {
	return attachmentTable[attachmentBand(scores.Anxiety)][attachmentBand(scores.Avoidance)]
}
