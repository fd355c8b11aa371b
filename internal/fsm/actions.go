package fsm

import "github.com/librescoot/librefsm"

// Actions is implemented by the box system to react to lifecycle changes.
type Actions interface {
	// EnterSettling runs while the host enumerates the keyboard.
	EnterSettling(c *librefsm.Context) error
	// EnterPolling releases the poll loop.
	EnterPolling(c *librefsm.Context) error
	EnterStopped(c *librefsm.Context) error
}
