package core

import (
	"context"

	"github.com/librescoot/librefsm"

	"button-box/internal/fsm"
	"button-box/internal/types"
)

// initFSM builds and starts the lifecycle machine. The machine outlives the
// start context so Shutdown can still drive it to stopped.
func (s *BoxSystem) initFSM() error {
	def := fsm.NewDefinition(s, s.cfg.SettleDelay)
	machine, err := def.Build()
	if err != nil {
		return err
	}

	machine.OnStateChange(func(from, to librefsm.StateID) {
		s.logger.Infof("State transition: %s -> %s", from, to)
		if s.redis == nil {
			return
		}
		if err := s.redis.PublishDeviceState(types.DeviceState(to)); err != nil {
			s.logger.Warnf("Failed to publish state: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	if err := machine.Start(ctx); err != nil {
		cancel()
		return err
	}
	s.machine = machine
	s.fsmCancel = cancel
	s.logger.Debugf("librefsm state machine started")
	return nil
}

func (s *BoxSystem) sendEvent(event librefsm.EventID) error {
	return s.machine.SendSync(librefsm.Event{ID: event})
}

// State returns the current lifecycle state.
func (s *BoxSystem) State() types.DeviceState {
	if s.machine == nil {
		return types.StateInit
	}
	return types.DeviceState(s.machine.CurrentState())
}

func (s *BoxSystem) EnterSettling(c *librefsm.Context) error {
	s.logger.Infof("Waiting %v for the host to settle", s.cfg.SettleDelay)
	return nil
}

func (s *BoxSystem) EnterPolling(c *librefsm.Context) error {
	s.readyOnce.Do(func() { close(s.ready) })
	return nil
}

func (s *BoxSystem) EnterStopped(c *librefsm.Context) error {
	s.logger.Infof("Button box stopped")
	return nil
}
