package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/librescoot/librefsm"

	"button-box/internal/actions"
	"button-box/internal/fsm"
	"button-box/internal/input"
	"button-box/internal/logger"
)

// DefaultDebounceInterval matches the usual 10ms contact bounce window.
const DefaultDebounceInterval = 10 * time.Millisecond

type Config struct {
	// DebounceTicks selects the tick policy when > 0, otherwise
	// DebounceInterval is used.
	DebounceTicks    int
	DebounceInterval time.Duration
	SettleDelay      time.Duration

	// Sleep performs key holds; nil means time.Sleep.
	Sleep func(time.Duration)
	// Now is the clock of the interval debounce policy; nil means time.Now.
	Now func() time.Time
}

func DefaultConfig() Config {
	return Config{
		DebounceInterval: DefaultDebounceInterval,
		SettleDelay:      fsm.DefaultSettleDelay,
	}
}

// BoxSystem owns every debouncer, encoder tracker and the key sequencer,
// and runs the scan loop. Poll is single threaded: a combo hold blocks the
// whole scan.
type BoxSystem struct {
	cfg      Config
	logger   *logger.Logger
	io       HardwareIO
	keyboard Keyboard
	redis    MessagingClient
	seq      *actions.Sequencer

	buttons  [actions.ButtonCount]*input.Debouncer
	encoders [actions.EncoderCount]*input.Tracker

	machine   *librefsm.Machine
	fsmCancel context.CancelFunc
	ready     chan struct{}
	readyOnce sync.Once
	stopOnce  sync.Once
}

func NewBoxSystem(io HardwareIO, keyboard Keyboard, redis MessagingClient, cfg Config, l *logger.Logger) *BoxSystem {
	s := &BoxSystem{
		cfg:      cfg,
		logger:   l,
		io:       io,
		keyboard: keyboard,
		redis:    redis,
		seq:      actions.NewSequencer(keyboard, cfg.Sleep, l.WithTag("sequencer")),
		ready:    make(chan struct{}),
	}
	// released buttons read high
	for i := range s.buttons {
		s.buttons[i] = s.newDebouncer(true)
	}
	for ch := range s.encoders {
		s.encoders[ch] = input.NewTracker(0)
	}
	return s
}

func (s *BoxSystem) newDebouncer(initial bool) *input.Debouncer {
	if s.cfg.DebounceTicks > 0 {
		return input.NewDebouncer(initial, s.cfg.DebounceTicks)
	}
	return input.NewIntervalDebouncer(initial, s.cfg.DebounceInterval, s.cfg.Now)
}

// Start initializes hardware, waits out the settle delay and opens the
// keyboard. The box is ready to Run when it returns.
func (s *BoxSystem) Start(ctx context.Context) error {
	s.logger.Infof("Starting button box")

	if s.redis != nil {
		if err := s.redis.Connect(); err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}

	if err := s.io.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize hardware: %w", err)
	}
	s.seedInputs()

	if err := s.initFSM(); err != nil {
		return fmt.Errorf("failed to start lifecycle: %w", err)
	}
	if err := s.sendEvent(fsm.EvBoot); err != nil {
		return fmt.Errorf("failed to boot: %w", err)
	}

	select {
	case <-s.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := s.keyboard.Open(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}

	s.logger.Infof("Button box ready")
	return nil
}

// seedInputs takes the current hardware levels and positions as the
// starting point so nothing fires for state that existed before boot.
func (s *BoxSystem) seedInputs() {
	for i := range s.buttons {
		level, err := s.io.ReadButton(i)
		if err != nil {
			s.logger.Warnf("Failed to read initial level of button %d: %v", i, err)
			level = true
		}
		s.buttons[i] = s.newDebouncer(level)
	}
	for ch := range s.encoders {
		s.encoders[ch] = input.NewTracker(s.io.EncoderPosition(ch))
	}
}

// Run scans until ctx is cancelled. On the device this is forever.
func (s *BoxSystem) Run(ctx context.Context) error {
	s.logger.Infof("Polling %d buttons and %d encoders", len(s.buttons), len(s.encoders))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			s.Poll()
		}
	}
}

// Poll performs one scan: every button in ascending order, then every
// encoder in order. Actions run synchronously as they are found.
func (s *BoxSystem) Poll() {
	s.pollButtons()
	s.pollEncoders()
}

func (s *BoxSystem) Shutdown() {
	s.stopOnce.Do(func() {
		if s.machine != nil {
			if err := s.sendEvent(fsm.EvStop); err != nil {
				s.logger.Warnf("Failed to stop lifecycle: %v", err)
			}
			s.fsmCancel()
		}

		s.keyboard.Close()
		s.io.Cleanup()
		if s.redis != nil {
			if err := s.redis.Close(); err != nil {
				s.logger.Warnf("Failed to close Redis: %v", err)
			}
		}
	})
}
