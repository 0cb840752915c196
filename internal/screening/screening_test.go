package screening

import (
	"errors"
	"testing"

	"github.com/TheABX/runmvmtquiz-sub001/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(v int) *int { return &v }

func fullScores(single, side int) []types.MovementTestScore {
	return []types.MovementTestScore{
		{TestID: "deep_squat", Score: p(single)},
		{TestID: "hip_hinge", Score: p(single)},
		{TestID: "push_up_hold", Score: p(single)},
		{TestID: "single_leg_balance", Left: p(side), Right: p(side)},
		{TestID: "split_squat", Left: p(side), Right: p(side)},
	}
}

func TestDefaultBatteryValid(t *testing.T) {
	require.NoError(t, DefaultBattery.Validate())
	slots := 0
	for _, test := range DefaultBattery {
		slots += test.Slots()
		for i, c := range test.Criteria {
			assert.NotEmpty(t, c, "%s criteria %d", test.ID, i)
		}
	}
	assert.Equal(t, 7, slots)
}

func TestBatteryValidate(t *testing.T) {
	single := Test{ID: "a", MaxScore: 2}
	bilateral := Test{ID: "b", Bilateral: true, MaxScore: 2}

	tests := []struct {
		name    string
		battery Battery
		wantMsg string
	}{
		{"empty", Battery{}, "no tests"},
		{"missing id", Battery{{MaxScore: 2}}, "id is required"},
		{"duplicate", Battery{single, single}, "duplicate"},
		{"wrong max score", Battery{{ID: "a", MaxScore: 3}}, "max score"},
		{"wrong total", Battery{single, bilateral}, "max total 6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.battery.Validate()
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Contains(t, cerr.Message, tt.wantMsg)
		})
	}
}

func TestGetPathway(t *testing.T) {
	tests := []struct {
		total int
		want  types.Pathway
	}{
		{0, types.PathwayFoundation},
		{7, types.PathwayFoundation},
		{8, types.PathwayBalancedStrength},
		{11, types.PathwayBalancedStrength},
		{12, types.PathwayPerformance},
		{14, types.PathwayPerformance},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPathway(tt.total), "total=%d", tt.total)
	}
}

func TestGetPathwayDescription(t *testing.T) {
	for _, pw := range []types.Pathway{types.PathwayFoundation, types.PathwayBalancedStrength, types.PathwayPerformance} {
		assert.NotEmpty(t, GetPathwayDescription(pw))
	}
	assert.Empty(t, GetPathwayDescription("Unknown Pathway"))
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		scores  []types.MovementTestScore
		total   int
		pathway types.Pathway
	}{
		{"all zero", fullScores(0, 0), 0, types.PathwayFoundation},
		{"all one", fullScores(1, 1), 7, types.PathwayFoundation},
		{"balanced", fullScores(2, 1), 10, types.PathwayBalancedStrength},
		{"perfect", fullScores(2, 2), 14, types.PathwayPerformance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Aggregate(DefaultBattery, tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, MaxTotal, res.MaxTotal)
			assert.Equal(t, tt.pathway, res.Pathway)
			assert.Equal(t, GetPathwayDescription(tt.pathway), res.Description)
			assert.Len(t, res.Scores, len(DefaultBattery))
		})
	}

	t.Run("result follows battery order", func(t *testing.T) {
		scores := fullScores(1, 1)
		scores[0], scores[4] = scores[4], scores[0]
		res, err := Aggregate(DefaultBattery, scores)
		require.NoError(t, err)
		assert.Equal(t, "deep_squat", res.Scores[0].TestID)
		assert.Equal(t, "split_squat", res.Scores[4].TestID)
	})
}

func TestAggregate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]types.MovementTestScore) []types.MovementTestScore
		testID string
	}{
		{"missing test", func(s []types.MovementTestScore) []types.MovementTestScore { return s[1:] }, "deep_squat"},
		{"unknown test", func(s []types.MovementTestScore) []types.MovementTestScore {
			return append(s, types.MovementTestScore{TestID: "plank", Score: p(1)})
		}, "plank"},
		{"duplicate test", func(s []types.MovementTestScore) []types.MovementTestScore { return append(s, s[0]) }, "deep_squat"},
		{"score too high", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[1].Score = p(3)
			return s
		}, "hip_hinge"},
		{"negative side", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[3].Right = p(-1)
			return s
		}, "single_leg_balance"},
		{"missing side", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[4].Left = nil
			return s
		}, "split_squat"},
		{"sides on single test", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[2].Left = p(1)
			return s
		}, "push_up_hold"},
		{"score on bilateral test", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[3].Score = p(1)
			return s
		}, "single_leg_balance"},
		{"missing single score", func(s []types.MovementTestScore) []types.MovementTestScore {
			s[0].Score = nil
			return s
		}, "deep_squat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(DefaultBattery, tt.mutate(fullScores(1, 1)))
			var serr *ScoreError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.testID, serr.TestID)
		})
	}
}

func TestFlow_ForwardToComplete(t *testing.T) {
	f, err := NewFlow(DefaultBattery)
	require.NoError(t, err)
	assert.Equal(t, StateIntro, f.State())
	_, ok := f.Current()
	assert.False(t, ok)

	require.NoError(t, f.Start())

	var visited []Step
	for f.State() == StateTest {
		step, ok := f.Current()
		require.True(t, ok)
		visited = append(visited, step)
		require.NoError(t, f.Record(2))
	}
	require.Len(t, visited, 7)
	assert.Equal(t, SideNone, visited[0].Side)
	assert.Equal(t, "single_leg_balance", visited[3].Test.ID)
	assert.Equal(t, SideLeft, visited[3].Side)
	assert.Equal(t, SideRight, visited[4].Side)
	assert.Equal(t, "split_squat", visited[6].Test.ID)

	assert.Equal(t, StateResults, f.State())
	res, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 14, res.Total)
	assert.Equal(t, types.PathwayPerformance, res.Pathway)

	require.NoError(t, f.BeginSave())
	assert.Equal(t, StateSaving, f.State())

	saveErr := errors.New("network down")
	assert.ErrorIs(t, f.FinishSave(saveErr), saveErr)
	assert.Equal(t, StateResults, f.State())

	require.NoError(t, f.BeginSave())
	require.NoError(t, f.FinishSave(nil))
	assert.Equal(t, StateComplete, f.State())

	res, err = f.Result()
	require.NoError(t, err)
	assert.Equal(t, 14, res.Total)
}

func TestFlow_Back(t *testing.T) {
	f, err := NewFlow(DefaultBattery)
	require.NoError(t, err)
	require.NoError(t, f.Start())

	require.NoError(t, f.Back())
	assert.Equal(t, StateIntro, f.State())

	require.NoError(t, f.Start())
	for range 4 {
		require.NoError(t, f.Record(1))
	}
	step, _ := f.Current()
	assert.Equal(t, "single_leg_balance", step.Test.ID)
	assert.Equal(t, SideRight, step.Side)

	require.NoError(t, f.Back())
	step, _ = f.Current()
	assert.Equal(t, SideLeft, step.Side)

	require.NoError(t, f.Back())
	step, _ = f.Current()
	assert.Equal(t, "push_up_hold", step.Test.ID)
	assert.Equal(t, SideNone, step.Side)

	// re-recording overwrites and moves forward again
	require.NoError(t, f.Record(0))
	step, _ = f.Current()
	assert.Equal(t, "single_leg_balance", step.Test.ID)
	assert.Equal(t, SideLeft, step.Side)

	for f.State() == StateTest {
		require.NoError(t, f.Record(1))
	}
	require.NoError(t, f.Back())
	step, _ = f.Current()
	assert.Equal(t, "split_squat", step.Test.ID)
	assert.Equal(t, SideRight, step.Side)

	require.NoError(t, f.Record(1))
	res, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
}

func TestFlow_InvalidTransitions(t *testing.T) {
	f, err := NewFlow(DefaultBattery)
	require.NoError(t, err)

	var serr *StateError
	require.ErrorAs(t, f.Record(1), &serr)
	assert.Equal(t, StateIntro, serr.State)
	require.ErrorAs(t, f.Back(), &serr)
	require.ErrorAs(t, f.BeginSave(), &serr)
	require.ErrorAs(t, f.FinishSave(nil), &serr)
	_, err = f.Result()
	require.ErrorAs(t, err, &serr)

	require.NoError(t, f.Start())
	require.ErrorAs(t, f.Start(), &serr)

	var scoreErr *ScoreError
	require.ErrorAs(t, f.Record(3), &scoreErr)
	step, _ := f.Current()
	assert.Equal(t, 0, step.Index)
	assert.Empty(t, f.Scores())
}

func TestNewFlow_InvalidBattery(t *testing.T) {
	_, err := NewFlow(Battery{})
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}
