package input

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_Scenario(t *testing.T) {
	tr := NewTracker(100)

	assert.Equal(t, DirectionDecrease, tr.Update(97))
	assert.Equal(t, 97, tr.Last())

	assert.Equal(t, DirectionNone, tr.Update(97))
	assert.Equal(t, 97, tr.Last())
}

func TestTracker_Increase(t *testing.T) {
	tr := NewTracker(-2)
	assert.Equal(t, DirectionIncrease, tr.Update(-1))
	assert.Equal(t, DirectionIncrease, tr.Update(0))
	assert.Equal(t, DirectionDecrease, tr.Update(-5))
}

// Several detents gained between two polls produce one event, not one per detent.
func TestTracker_MultiDetentCollapses(t *testing.T) {
	tr := NewTracker(0)

	assert.Equal(t, DirectionIncrease, tr.Update(5))
	assert.Equal(t, DirectionNone, tr.Update(5))
	assert.Equal(t, DirectionDecrease, tr.Update(-3))
	assert.Equal(t, -3, tr.Last())
}

func TestTracker_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := NewTracker(0)

	for i := 0; i < 2000; i++ {
		prev := tr.Last()
		cur := prev + rng.Intn(7) - 3

		got := tr.Update(cur)
		switch {
		case cur < prev:
			require.Equal(t, DirectionDecrease, got)
		case cur > prev:
			require.Equal(t, DirectionIncrease, got)
		default:
			require.Equal(t, DirectionNone, got)
		}
		require.Equal(t, cur, tr.Last())
	}
}
