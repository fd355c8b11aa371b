package core

import (
	"button-box/internal/actions"
	"button-box/internal/types"
)

// MessagingClient defines the publishing operations used by BoxSystem. It
// is optional; a nil client disables publishing.
type MessagingClient interface {
	Connect() error
	Close() error

	PublishDeviceState(state types.DeviceState) error
	PublishButtonEvent(index int, action string) error
	PublishEncoderEvent(channel int, direction string, action string) error
}

// HardwareIO defines the input side of the box
type HardwareIO interface {
	Initialize() error
	Cleanup()

	// ReadButton returns the raw level of a button line, true = high.
	ReadButton(i int) (bool, error)
	// EncoderPosition returns the detent counter of encoder ch.
	EncoderPosition(ch int) int
}

// Keyboard is the HID sink plus its lifecycle. Only the Sequencer presses
// keys; the one exception is Open and Close, which each send an all-keys-up
// report so no key stays held across a restart.
type Keyboard interface {
	actions.KeySink
	Open() error
	Close()
}
