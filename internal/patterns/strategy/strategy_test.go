package strategy

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotDelegatesToAssignedBehavior(t *testing.T) {
	r := NewCompanionRobot("buddy")

	assert.Equal(t, "walking normally", r.Walk())
	assert.Equal(t, "talking normally", r.Talk())
	assert.Equal(t, "cannot fly", r.Fly())
	assert.Equal(t, "displaying friendly companion features", r.Projection())
}

func TestRobotSwapBehaviorTakesEffectOnNextCall(t *testing.T) {
	r := NewWorkerRobot("atlas")
	require.Equal(t, "flying normally", r.Fly())

	r.SetFly(JetFly{})
	assert.Equal(t, "flying with jet boosters", r.Fly())

	r.SetTalk(NormalTalk{})
	assert.Equal(t, "talking normally", r.Talk())
}

func TestRobotNilBehaviorFallsBackToNo(t *testing.T) {
	r := NewRobot("blank", "", nil, nil, nil)
	assert.Equal(t, "cannot walk", r.Walk())
	assert.Equal(t, "cannot talk", r.Talk())
	assert.Equal(t, "cannot fly", r.Fly())

	r.SetWalk(NormalWalk{})
	r.SetWalk(nil)
	assert.Equal(t, "cannot walk", r.Walk())
}

func TestSortStrategies(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	input := make([]int, 200)
	for i := range input {
		input[i] = rnd.Intn(100) - 50
	}
	original := slices.Clone(input)
	want := slices.Clone(input)
	slices.Sort(want)

	for _, s := range []SortStrategy{BubbleSort{}, MergeSort{}, QuickSort{}} {
		t.Run(s.Name(), func(t *testing.T) {
			assert.Equal(t, want, s.Sort(input))
			assert.Equal(t, original, input, "input must not be mutated")
			assert.Empty(t, s.Sort(nil))
			assert.Equal(t, []int{1}, s.Sort([]int{1}))
		})
	}
}

func TestSorterSwapStrategy(t *testing.T) {
	s := NewSorter(nil)
	assert.Equal(t, "merge", s.Strategy())

	s.SetStrategy(QuickSort{})
	assert.Equal(t, "quick", s.Strategy())
	assert.Equal(t, []int{1, 2, 3}, s.Sort([]int{3, 1, 2}))

	s.SetStrategy(nil)
	assert.Equal(t, "quick", s.Strategy())
}
