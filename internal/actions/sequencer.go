package actions

import (
	"time"

	"button-box/internal/logger"
	"button-box/internal/types"
)

const (
	// DefaultHold is the gap between pressing and releasing a combo. The
	// simulator drops shortcuts that are released too quickly.
	DefaultHold = 100 * time.Millisecond

	// StarterHold is how long the starter key stays down.
	StarterHold = 2 * time.Second
)

// KeySink accepts symbolic key presses. Implementations report their own
// failures; callers get nothing back.
type KeySink interface {
	KeyDown(key types.Key)
	KeyUp(key types.Key)
}

// Combo is a set of keys held together for Hold.
type Combo struct {
	Keys []types.Key
	Hold time.Duration
}

// Sequencer is the only writer to the key sink. PressCombo blocks for the
// whole hold, so nothing else is polled while a combo is in flight.
type Sequencer struct {
	sink   KeySink
	sleep  func(time.Duration)
	logger *logger.Logger
}

// NewSequencer returns a sequencer writing to sink. sleep performs the hold
// and defaults to time.Sleep.
func NewSequencer(sink KeySink, sleep func(time.Duration), l *logger.Logger) *Sequencer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Sequencer{
		sink:   sink,
		sleep:  sleep,
		logger: l,
	}
}

// PressCombo presses keys in order, waits hold and releases them in
// reverse order, so a modifier is the first key down and the last key up.
func (s *Sequencer) PressCombo(keys []types.Key, hold time.Duration) {
	s.logger.Debugf("Pressing %v for %v", keys, hold)

	for _, k := range keys {
		s.sink.KeyDown(k)
	}
	s.sleep(hold)
	for i := len(keys) - 1; i >= 0; i-- {
		s.sink.KeyUp(keys[i])
	}
}

func (s *Sequencer) Press(c Combo) {
	s.PressCombo(c.Keys, c.Hold)
}
