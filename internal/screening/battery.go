package screening

import "fmt"

// MaxPointsPerSlot is the best score for one test side.
const MaxPointsPerSlot = 2

// MaxTotal is the best possible battery total.
const MaxTotal = 14

// Test is one movement test in the battery.
type Test struct {
	ID           string
	Name         string
	Instructions string
	Bilateral    bool
	MaxScore     int
	// Criteria describes what earns 0, 1 and 2 points.
	Criteria [MaxPointsPerSlot + 1]string
}

// Slots is the number of scored sides.
func (t Test) Slots() int {
	if t.Bilateral {
		return 2
	}
	return 1
}

// Battery is an ordered set of movement tests.
type Battery []Test

// DefaultBattery is the standard seven-slot screening.
var DefaultBattery = Battery{
	{
		ID:           "deep_squat",
		Name:         "Deep Squat",
		Instructions: "Feet shoulder-width apart, arms overhead. Squat as deep as you can with heels down.",
		MaxScore:     MaxPointsPerSlot,
		Criteria: [3]string{
			"Unable to reach parallel or heels lift",
			"Reaches parallel with some compensation",
			"Full depth, heels down, torso upright",
		},
	},
	{
		ID:           "hip_hinge",
		Name:         "Hip Hinge",
		Instructions: "Hold a stick along your spine and hinge forward at the hips keeping three points of contact.",
		MaxScore:     MaxPointsPerSlot,
		Criteria: [3]string{
			"Back rounds or stick loses contact",
			"Hinges with minor loss of position",
			"Clean hinge with neutral spine throughout",
		},
	},
	{
		ID:           "push_up_hold",
		Name:         "Push-Up Hold",
		Instructions: "Hold the bottom of a push-up, chest a fist above the floor, for up to 30 seconds.",
		MaxScore:     MaxPointsPerSlot,
		Criteria: [3]string{
			"Under 10 seconds or hips sag",
			"10 to 29 seconds with a straight body",
			"Full 30 seconds with a straight body",
		},
	},
	{
		ID:           "single_leg_balance",
		Name:         "Single-Leg Balance",
		Instructions: "Stand on one leg with eyes closed for up to 30 seconds.",
		Bilateral:    true,
		MaxScore:     MaxPointsPerSlot,
		Criteria: [3]string{
			"Under 10 seconds",
			"10 to 29 seconds",
			"Full 30 seconds without touching down",
		},
	},
	{
		ID:           "split_squat",
		Name:         "Split Squat",
		Instructions: "Perform 10 slow split squats, back knee lightly touching the floor.",
		Bilateral:    true,
		MaxScore:     MaxPointsPerSlot,
		Criteria: [3]string{
			"Loses balance or knee collapses inward",
			"Completes with minor wobble",
			"Controlled reps with knee tracking over toes",
		},
	},
}

// Validate checks that the battery has unique ids and sums to MaxTotal.
func (b Battery) Validate() error {
	if len(b) == 0 {
		return &ConfigError{Message: "battery has no tests"}
	}
	seen := make(map[string]bool, len(b))
	total := 0
	for _, t := range b {
		if t.ID == "" {
			return &ConfigError{Message: "test id is required"}
		}
		if seen[t.ID] {
			return &ConfigError{Message: fmt.Sprintf("duplicate test id %q", t.ID)}
		}
		seen[t.ID] = true
		if t.MaxScore != MaxPointsPerSlot {
			return &ConfigError{Message: fmt.Sprintf("test %q max score %d, want %d", t.ID, t.MaxScore, MaxPointsPerSlot)}
		}
		total += t.MaxScore * t.Slots()
	}
	if total != MaxTotal {
		return &ConfigError{Message: fmt.Sprintf("battery max total %d, want %d", total, MaxTotal)}
	}
	return nil
}

// Lookup returns the test with the given id.
func (b Battery) Lookup(id string) (Test, bool) {
	for _, t := range b {
		if t.ID == id {
			return t, true
		}
	}
	return Test{}, false
}
