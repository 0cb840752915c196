package screening

import "github.com/TheABX/runmvmtquiz-sub001/internal/types"

// pathwayThresholds are checked in order; the first minimum the total reaches wins.
var pathwayThresholds = []struct {
	Min     int
	Pathway types.Pathway
}{
	{12, types.PathwayPerformance},
	{8, types.PathwayBalancedStrength},
	{0, types.PathwayFoundation},
}

var pathwayDescriptions = map[types.Pathway]string{
	types.PathwayFoundation:       "Build control and range before adding load. Sessions focus on mobility, balance and bodyweight strength so running stays pain-free.",
	types.PathwayBalancedStrength: "You move well with a few gaps. Sessions mix single-leg strength, core stability and moderate loading to close them.",
	types.PathwayPerformance:      "You have a solid movement base. Sessions add heavier compound lifts and plyometrics to build power and running economy.",
}

// GetPathway maps a battery total to a strength pathway.
func GetPathway(total int) types.Pathway {
	for _, t := range pathwayThresholds {
		if total >= t.Min {
			return t.Pathway
		}
	}
	return types.PathwayFoundation
}

// GetPathwayDescription returns the summary text for a pathway, or "" if unknown.
func GetPathwayDescription(p types.Pathway) string {
	return pathwayDescriptions[p]
}
