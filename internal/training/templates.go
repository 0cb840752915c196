package training

// Phase is a block of the 12-week plan.
type Phase string

// Phases
const (
	PhaseBase     Phase = "base"
	PhaseRecovery Phase = "recovery"
	PhaseBuild    Phase = "build"
	PhasePeak     Phase = "peak"
	PhaseTaper    Phase = "taper"
)

// PlanWeeks is the fixed plan length.
const PlanWeeks = 12

// phaseByWeek maps week number (index 1..12) to its phase.
var phaseByWeek = [PlanWeeks + 1]Phase{
	1: PhaseBase, 2: PhaseBase, 3: PhaseBase,
	4: PhaseRecovery,
	5: PhaseBuild, 6: PhaseBuild, 7: PhaseBuild,
	8: PhaseRecovery,
	9: PhasePeak, 10: PhasePeak, 11: PhasePeak,
	12: PhaseTaper,
}

var phaseFocus = map[Phase]string{
	PhaseBase:     "Aerobic base",
	PhaseRecovery: "Recovery week",
	PhaseBuild:    "Build endurance and strength",
	PhasePeak:     "Race-specific sharpening",
	PhaseTaper:    "Taper and race",
}

const recoveryFactor = 0.8

// goalShape holds the distance-dependent plan parameters.
type goalShape struct {
	PeakKm      float64
	TaperFactor float64
	RaceLabel   string
}

var goalShapes = map[string]goalShape{
	Distance5K:       {PeakKm: 25, TaperFactor: 0.7, RaceLabel: "5K"},
	Distance10K:      {PeakKm: 35, TaperFactor: 0.65, RaceLabel: "10K"},
	DistanceHalf:     {PeakKm: 45, TaperFactor: 0.6, RaceLabel: "half marathon"},
	DistanceMarathon: {PeakKm: 60, TaperFactor: 0.5, RaceLabel: "marathon"},
}

// personaShape holds the persona-dependent plan parameters.
type personaShape struct {
	StartFloorKm float64
	PeakScale    float64
	MaxGrowth    float64
	LongRunShare float64
	EasyPace     float64 // minutes per km
	Strength     bool
}

var personaShapes = map[string]personaShape{
	PersonaFoundation:  {StartFloorKm: 8, PeakScale: 0.8, MaxGrowth: 2.0, LongRunShare: 0.35, EasyPace: 7.5, Strength: true},
	PersonaComeback:    {StartFloorKm: 10, PeakScale: 0.75, MaxGrowth: 1.6, LongRunShare: 0.33, EasyPace: 7.0, Strength: true},
	PersonaSteady:      {StartFloorKm: 15, PeakScale: 1.0, MaxGrowth: 1.8, LongRunShare: 0.3, EasyPace: 6.25},
	PersonaPerformance: {StartFloorKm: 30, PeakScale: 1.2, MaxGrowth: 1.6, LongRunShare: 0.28, EasyPace: 5.25},
}

// sessionTemplate is the quality session for a phase.
type sessionTemplate struct {
	Type            string
	Description     string
	DurationMinutes int
	Intensity       string
}

var gentleQuality = map[Phase]sessionTemplate{
	PhaseBase:     {Type: "strides", Description: "Easy run finishing with 4 x 20 s relaxed strides", DurationMinutes: 30, Intensity: "easy"},
	PhaseRecovery: {Type: "easy", Description: "Easy run, fully conversational", DurationMinutes: 25, Intensity: "easy"},
	PhaseBuild:    {Type: "fartlek", Description: "6 x 1 min steady / 2 min easy", DurationMinutes: 35, Intensity: "moderate"},
	PhasePeak:     {Type: "tempo", Description: "2 x 8 min comfortably hard with 3 min jog", DurationMinutes: 40, Intensity: "moderate"},
	PhaseTaper:    {Type: "strides", Description: "Easy run with 4 x 20 s strides to stay sharp", DurationMinutes: 25, Intensity: "easy"},
}

var standardQuality = map[Phase]sessionTemplate{
	PhaseBase:     {Type: "strides", Description: "Easy run finishing with 6 x 20 s strides", DurationMinutes: 40, Intensity: "easy"},
	PhaseRecovery: {Type: "easy", Description: "Easy run with 4 x 20 s strides", DurationMinutes: 35, Intensity: "easy"},
	PhaseBuild:    {Type: "tempo", Description: "20 min continuous tempo at comfortably hard effort", DurationMinutes: 45, Intensity: "moderate"},
	PhasePeak:     {Type: "intervals", Description: "5 x 1 km at goal race effort with 2 min jog", DurationMinutes: 50, Intensity: "hard"},
	PhaseTaper:    {Type: "sharpener", Description: "3 x 1 km at race effort, full recovery", DurationMinutes: 35, Intensity: "moderate"},
}

var performanceQuality = map[Phase]sessionTemplate{
	PhaseBase:     {Type: "threshold", Description: "3 x 10 min at threshold with 2 min jog", DurationMinutes: 55, Intensity: "moderate"},
	PhaseRecovery: {Type: "strides", Description: "Easy run with 8 x 20 s strides", DurationMinutes: 40, Intensity: "easy"},
	PhaseBuild:    {Type: "intervals", Description: "6 x 1 km at 10K effort with 90 s jog", DurationMinutes: 60, Intensity: "hard"},
	PhasePeak:     {Type: "race_pace", Description: "3 x 3 km at goal race pace with 3 min jog", DurationMinutes: 65, Intensity: "hard"},
	PhaseTaper:    {Type: "sharpener", Description: "4 x 800 m at race pace, full recovery", DurationMinutes: 40, Intensity: "moderate"},
}

var hillSession = sessionTemplate{Type: "hills", Description: "8 x 60 s uphill at strong effort, jog down", DurationMinutes: 45, Intensity: "hard"}

var qualityByPersona = map[string]map[Phase]sessionTemplate{
	PersonaFoundation:  gentleQuality,
	PersonaComeback:    gentleQuality,
	PersonaSteady:      standardQuality,
	PersonaPerformance: performanceQuality,
}

// dayLayouts lists training days by number of days per week.
var dayLayouts = map[int][]string{
	2: {"Tuesday", "Saturday"},
	3: {"Tuesday", "Thursday", "Sunday"},
	4: {"Tuesday", "Wednesday", "Friday", "Sunday"},
	5: {"Monday", "Tuesday", "Thursday", "Saturday", "Sunday"},
	6: {"Monday", "Tuesday", "Wednesday", "Thursday", "Saturday", "Sunday"},
}

var strengthSession = map[Phase]sessionTemplate{
	PhaseBase:     {Type: "strength", Description: "Full-body strength: squats, lunges, calf raises, planks", DurationMinutes: 30},
	PhaseRecovery: {Type: "strength", Description: "Mobility and light core circuit", DurationMinutes: 20},
	PhaseBuild:    {Type: "strength", Description: "Single-leg strength and hip stability work", DurationMinutes: 30},
	PhasePeak:     {Type: "strength", Description: "Maintenance strength, low volume", DurationMinutes: 20},
	PhaseTaper:    {Type: "strength", Description: "Mobility only", DurationMinutes: 15},
}
