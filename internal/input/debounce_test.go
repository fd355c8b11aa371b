package input

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_TwoTickScenario(t *testing.T) {
	d := NewDebouncer(true, 2)

	assert.Equal(t, EdgeNone, d.Update(true), "sample 1")
	assert.Equal(t, EdgeNone, d.Update(false), "sample 2")
	assert.Equal(t, EdgeFell, d.Update(false), "sample 3")
	assert.Equal(t, EdgeNone, d.Update(true), "sample 4")
	assert.False(t, d.Value())
}

func TestDebouncer_BounceIsSuppressed(t *testing.T) {
	d := NewDebouncer(true, 3)

	for _, raw := range []bool{false, true, false, false, true, false, true} {
		assert.Equal(t, EdgeNone, d.Update(raw))
	}
	assert.True(t, d.Value())

	assert.Equal(t, EdgeNone, d.Update(false))
	assert.Equal(t, EdgeNone, d.Update(false))
	assert.Equal(t, EdgeFell, d.Update(false))
}

func TestDebouncer_RiseAfterFall(t *testing.T) {
	d := NewDebouncer(false, 1)

	assert.Equal(t, EdgeRose, d.Update(true))
	assert.Equal(t, EdgeNone, d.Update(true))
	assert.Equal(t, EdgeFell, d.Update(false))
	assert.Equal(t, EdgeNone, d.Update(false))
}

func TestDebouncer_ZeroTicksMeansOne(t *testing.T) {
	d := NewDebouncer(true, 0)
	assert.Equal(t, EdgeFell, d.Update(false))
}

func TestDebouncer_StuckLineNeverReports(t *testing.T) {
	d := NewDebouncer(true, 2)
	for i := 0; i < 100; i++ {
		require.Equal(t, EdgeNone, d.Update(true))
	}
}

// Fell is only ever reported after window consecutive lows, and Fell/Rose
// strictly alternate.
func TestDebouncer_RandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for window := 1; window <= 5; window++ {
		d := NewDebouncer(true, window)
		lowRun := 0
		last := EdgeRose

		for i := 0; i < 5000; i++ {
			raw := rng.Intn(3) != 0
			if raw {
				lowRun = 0
			} else {
				lowRun++
			}

			switch d.Update(raw) {
			case EdgeFell:
				require.GreaterOrEqual(t, lowRun, window, "fell too early at sample %d", i)
				require.Equal(t, EdgeRose, last, "two falls without a rise at sample %d", i)
				last = EdgeFell
			case EdgeRose:
				require.Equal(t, EdgeFell, last, "two rises without a fall at sample %d", i)
				last = EdgeRose
			}
		}
	}
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIntervalDebouncer(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	d := NewIntervalDebouncer(true, 10*time.Millisecond, clk.now)

	assert.Equal(t, EdgeNone, d.Update(false))
	clk.advance(4 * time.Millisecond)
	assert.Equal(t, EdgeNone, d.Update(false))

	// bounce restarts the window
	clk.advance(1 * time.Millisecond)
	assert.Equal(t, EdgeNone, d.Update(true))
	clk.advance(1 * time.Millisecond)
	assert.Equal(t, EdgeNone, d.Update(false))
	clk.advance(9 * time.Millisecond)
	assert.Equal(t, EdgeNone, d.Update(false))
	clk.advance(1 * time.Millisecond)
	assert.Equal(t, EdgeFell, d.Update(false))
	assert.False(t, d.Value())

	clk.advance(time.Second)
	assert.Equal(t, EdgeNone, d.Update(false))
}

func TestIntervalDebouncer_DefaultClock(t *testing.T) {
	d := NewIntervalDebouncer(false, 0, nil)
	assert.Equal(t, EdgeRose, d.Update(true))
}
