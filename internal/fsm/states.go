package fsm

import "github.com/librescoot/librefsm"

// Lifecycle states
const (
	StateInit     librefsm.StateID = "init"
	StateSettling librefsm.StateID = "settling"
	StatePolling  librefsm.StateID = "polling"
	StateStopped  librefsm.StateID = "stopped"
)

// Lifecycle events
const (
	EvBoot    librefsm.EventID = "boot"
	EvSettled librefsm.EventID = "settled"
	EvStop    librefsm.EventID = "stop"
)
