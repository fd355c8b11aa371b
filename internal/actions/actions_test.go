package actions

import (
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"button-box/internal/input"
	"button-box/internal/logger"
	"button-box/internal/types"
)

// recordingSink logs key operations and sleeps in one timeline.
type recordingSink struct {
	ops    []string
	sleeps []time.Duration
}

func (r *recordingSink) KeyDown(k types.Key) { r.ops = append(r.ops, "down "+k.String()) }
func (r *recordingSink) KeyUp(k types.Key) { r.ops = append(r.ops, "up "+k.String()) }

func (r *recordingSink) sleep(d time.Duration) {
	r.sleeps = append(r.sleeps, d)
	r.ops = append(r.ops, "wait "+d.String())
}

func newTestSequencer() (*Sequencer, *recordingSink) {
	sink := &recordingSink{}
	seq := NewSequencer(sink, sink.sleep, logger.NewLogger(log.Default(), logger.LogLevelNone))
	return seq, sink
}

func TestIgnitionSequence(t *testing.T) {
	seq, sink := newTestSequencer()

	Ignition.Invoke(seq)

	assert.Equal(t, []string{
		"down SHIFT",
		"down I",
		"wait 100ms",
		"up I",
		"up SHIFT",
	}, sink.ops)
}

func TestStarterSequence(t *testing.T) {
	seq, sink := newTestSequencer()

	Starter.Invoke(seq)

	assert.Equal(t, []string{"down S", "wait 2s", "up S"}, sink.ops)
	assert.Equal(t, []time.Duration{2 * time.Second}, sink.sleeps)
}

func TestPressComboReleasesInReverseOrder(t *testing.T) {
	seq, sink := newTestSequencer()

	seq.PressCombo([]types.Key{types.KeyControl, types.KeyAlt, types.KeyD}, 5*time.Millisecond)

	assert.Equal(t, []string{
		"down CONTROL",
		"down ALT",
		"down D",
		"wait 5ms",
		"up D",
		"up ALT",
		"up CONTROL",
	}, sink.ops)
}

// Every two-key combo holds its modifier across the whole press: first down,
// last up.
func TestModifierReleasedLast(t *testing.T) {
	for a := NotMapped + 1; a < actionCount; a++ {
		c, ok := a.Combo()
		require.True(t, ok)
		if len(c.Keys) < 2 {
			continue
		}

		t.Run(a.String(), func(t *testing.T) {
			seq, sink := newTestSequencer()
			a.Invoke(seq)

			require.Len(t, sink.ops, 5)
			modifier := c.Keys[0]
			require.True(t, modifier.IsModifier())
			assert.Equal(t, "down "+modifier.String(), sink.ops[0])
			assert.Equal(t, "up "+c.Keys[1].String(), sink.ops[3])
			assert.Equal(t, "up "+modifier.String(), sink.ops[4])
		})
	}
}

func TestNotMappedIsSilent(t *testing.T) {
	seq, sink := newTestSequencer()

	NotMapped.Invoke(seq)
	Action(-1).Invoke(seq)
	actionCount.Invoke(seq)

	assert.Empty(t, sink.ops)
}

func TestCombos(t *testing.T) {
	cases := []struct {
		action Action
		keys   []types.Key
		hold   time.Duration
	}{
		{Ignition, []types.Key{types.KeyShift, types.KeyI}, DefaultHold},
		{Starter, []types.Key{types.KeyS}, StarterHold},
		{Wiper, []types.Key{types.KeyAlt, types.KeyR}, DefaultHold},
		{ToggleLights, []types.Key{types.KeyL}, DefaultHold},
		{ToggleRainLights, []types.Key{types.KeyControl, types.KeyL}, DefaultHold},
		{ToggleFlashingLights, []types.Key{types.KeyShift, types.KeyL}, DefaultHold},
		{EngagePitLimiter, []types.Key{types.KeyAlt, types.KeyL}, DefaultHold},
		{CycleRacelogic, []types.Key{types.KeyAlt, types.KeyD}, DefaultHold},
		{CycleCamera, []types.Key{types.KeyF1}, DefaultHold},
		{IncreaseABS, []types.Key{types.KeyShift, types.KeyA}, DefaultHold},
		{DecreaseABS, []types.Key{types.KeyControl, types.KeyA}, DefaultHold},
		{IncreaseTC, []types.Key{types.KeyShift, types.KeyT}, DefaultHold},
		{DecreaseTC, []types.Key{types.KeyControl, types.KeyT}, DefaultHold},
		{IncreaseBB, []types.Key{types.KeyShift, types.KeyB}, DefaultHold},
		{DecreaseBB, []types.Key{types.KeyControl, types.KeyB}, DefaultHold},
		{IncreaseEngineMap, []types.Key{types.KeyShift, types.KeyE}, DefaultHold},
		{DecreaseEngineMap, []types.Key{types.KeyControl, types.KeyE}, DefaultHold},
	}
	require.Len(t, cases, int(actionCount)-1, "every action except NotMapped needs a case")

	for _, tc := range cases {
		t.Run(tc.action.String(), func(t *testing.T) {
			c, ok := tc.action.Combo()
			require.True(t, ok)
			assert.Equal(t, tc.keys, c.Keys)
			assert.Equal(t, tc.hold, c.Hold)
		})
	}
}

func TestActionNames(t *testing.T) {
	seen := make(map[string]bool)
	for a := NotMapped; a < actionCount; a++ {
		name := a.String()
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", actionCount.String())
}

func TestButtonMapIsTotal(t *testing.T) {
	want := []Action{
		Ignition, Starter, EngagePitLimiter, CycleRacelogic, ToggleLights,
		Wiper, ToggleFlashingLights, CycleCamera, ToggleRainLights,
		NotMapped, NotMapped, NotMapped, NotMapped, NotMapped,
	}
	require.Len(t, want, ButtonCount)

	for i := 0; i < ButtonCount; i++ {
		assert.Equal(t, want[i], ForButton(i), "button %d", i)
	}
	assert.Equal(t, NotMapped, ForButton(-1))
	assert.Equal(t, NotMapped, ForButton(ButtonCount))
}

func TestEncoderMapIsTotal(t *testing.T) {
	cases := []struct {
		onDecrease Action
		onIncrease Action
	}{
		{IncreaseBB, DecreaseBB},
		{IncreaseEngineMap, DecreaseEngineMap},
		{IncreaseABS, DecreaseABS},
		{IncreaseTC, DecreaseTC},
	}

	for ch, b := range EncoderMap {
		assert.Equal(t, cases[ch].onDecrease, b.ForDirection(input.DirectionDecrease), "encoder %d", ch+1)
		assert.Equal(t, cases[ch].onIncrease, b.ForDirection(input.DirectionIncrease), "encoder %d", ch+1)
		assert.Equal(t, NotMapped, b.ForDirection(input.DirectionNone), "encoder %d", ch+1)
	}
}

func TestNewSequencerDefaultsToTimeSleep(t *testing.T) {
	seq := NewSequencer(&recordingSink{}, nil, logger.NewLogger(nil, logger.LogLevelNone))
	require.NotNil(t, seq.sleep)

	start := time.Now()
	seq.PressCombo([]types.Key{types.KeyL}, 5*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
