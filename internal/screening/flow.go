package screening

import "github.com/TheABX/runmvmtquiz-sub001/internal/types"

// State is a step of the screening flow.
type State string

// Flow states
const (
	StateIntro    State = "intro"
	StateTest     State = "test"
	StateResults  State = "results"
	StateSaving   State = "saving"
	StateComplete State = "complete"
)

// Side selects the scored side of a bilateral test.
type Side string

// Sides
const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Step is the test and side currently being scored.
type Step struct {
	Index int
	Test  Test
	Side  Side
}

// Flow walks a battery one test side at a time:
// intro, then each test (left before right on bilateral tests), then results,
// saving and complete. Back steps to the previous side or test.
type Flow struct {
	battery Battery
	state   State
	index   int
	side    Side
	single  map[string]int
	left    map[string]int
	right   map[string]int
}

// NewFlow returns a flow at the intro state. The battery is validated first.
func NewFlow(b Battery) (*Flow, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &Flow{
		battery: b,
		state:   StateIntro,
		single:  make(map[string]int),
		left:    make(map[string]int),
		right:   make(map[string]int),
	}, nil
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// Current returns the step being scored. ok is false outside the test state.
func (f *Flow) Current() (step Step, ok bool) {
	if f.state != StateTest {
		return Step{}, false
	}
	return Step{Index: f.index, Test: f.battery[f.index], Side: f.side}, true
}

// Start moves from intro to the first test.
func (f *Flow) Start() error {
	if f.state != StateIntro {
		return &StateError{State: f.state, Action: "start"}
	}
	f.enterTest(0, true)
	return nil
}

// Record scores the current step and advances. The last side of the last test moves to results.
func (f *Flow) Record(points int) error {
	if f.state != StateTest {
		return &StateError{State: f.state, Action: "record a score"}
	}
	t := f.battery[f.index]
	if _, err := checkPoints(t, sideField(f.side), points); err != nil {
		return err
	}

	switch f.side {
	case SideLeft:
		f.left[t.ID] = points
		f.side = SideRight
		return nil
	case SideRight:
		f.right[t.ID] = points
	default:
		f.single[t.ID] = points
	}

	if f.index == len(f.battery)-1 {
		f.state = StateResults
		return nil
	}
	f.enterTest(f.index+1, true)
	return nil
}

// Back steps to the previous side or test. From the first step it returns to intro.
// From results it returns to the last step. Recorded scores are kept.
func (f *Flow) Back() error {
	switch f.state {
	case StateResults:
		f.enterTest(len(f.battery)-1, false)
		return nil
	case StateTest:
	default:
		return &StateError{State: f.state, Action: "go back"}
	}

	if f.side == SideRight {
		f.side = SideLeft
		return nil
	}
	if f.index == 0 {
		f.state = StateIntro
		return nil
	}
	f.enterTest(f.index-1, false)
	return nil
}

// Result aggregates the recorded scores. Only valid in results or later.
func (f *Flow) Result() (types.MovementScreeningResult, error) {
	switch f.state {
	case StateResults, StateSaving, StateComplete:
	default:
		return types.MovementScreeningResult{}, &StateError{State: f.state, Action: "read the result"}
	}
	return Aggregate(f.battery, f.Scores())
}

// BeginSave moves from results to saving.
func (f *Flow) BeginSave() error {
	if f.state != StateResults {
		return &StateError{State: f.state, Action: "save"}
	}
	f.state = StateSaving
	return nil
}

// FinishSave completes the flow, or returns to results when the save failed.
func (f *Flow) FinishSave(saveErr error) error {
	if f.state != StateSaving {
		return &StateError{State: f.state, Action: "finish saving"}
	}
	if saveErr != nil {
		f.state = StateResults
		return saveErr
	}
	f.state = StateComplete
	return nil
}

// Scores returns the recorded scores in battery order. Unscored tests are omitted.
func (f *Flow) Scores() []types.MovementTestScore {
	out := make([]types.MovementTestScore, 0, len(f.battery))
	for _, t := range f.battery {
		s := types.MovementTestScore{TestID: t.ID}
		if t.Bilateral {
			l, lok := f.left[t.ID]
			r, rok := f.right[t.ID]
			if !lok && !rok {
				continue
			}
			if lok {
				s.Left = &l
			}
			if rok {
				s.Right = &r
			}
		} else {
			v, ok := f.single[t.ID]
			if !ok {
				continue
			}
			s.Score = &v
		}
		out = append(out, s)
	}
	return out
}

// enterTest positions the flow on test i, on its first side when forward is true
// and its last side otherwise.
func (f *Flow) enterTest(i int, forward bool) {
	f.state = StateTest
	f.index = i
	switch {
	case !f.battery[i].Bilateral:
		f.side = SideNone
	case forward:
		f.side = SideLeft
	default:
		f.side = SideRight
	}
}

func sideField(s Side) string {
	if s == SideNone {
		return "score"
	}
	return string(s)
}
