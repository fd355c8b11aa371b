package fsm

import (
	"time"

	"github.com/librescoot/librefsm"
)

// DefaultSettleDelay gives the host time to enumerate the HID gadget before
// the first report is written.
const DefaultSettleDelay = 1 * time.Second

// NewDefinition creates the box lifecycle. settle is how long the machine
// stays in settling before polling starts.
func NewDefinition(actions Actions, settle time.Duration) *librefsm.Definition {
	return librefsm.NewDefinition().
		State(StateInit).
		State(StateSettling,
			librefsm.WithTimeout(settle, EvSettled),
			librefsm.WithOnEnter(actions.EnterSettling),
		).
		State(StatePolling,
			librefsm.WithOnEnter(actions.EnterPolling),
		).
		State(StateStopped,
			librefsm.WithOnEnter(actions.EnterStopped),
		).
		Transition(StateInit, EvBoot, StateSettling).
		Transition(StateSettling, EvSettled, StatePolling).
		Transition(StateInit, EvStop, StateStopped).
		Transition(StateSettling, EvStop, StateStopped).
		Transition(StatePolling, EvStop, StateStopped).
		Initial(StateInit)
}
