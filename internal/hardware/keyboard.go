package hardware

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"button-box/internal/logger"
	"button-box/internal/types"
)

const (
	reportSize = 8
	reportKeys = 6

	modLeftCtrl  = 0x01
	modLeftShift = 0x02
	modLeftAlt   = 0x04
)

// usages maps keys onto USB HID keyboard usage IDs (usage page 0x07).
var usages = map[types.Key]byte{
	types.KeyA:  0x04,
	types.KeyB:  0x05,
	types.KeyD:  0x07,
	types.KeyE:  0x08,
	types.KeyI:  0x0C,
	types.KeyL:  0x0F,
	types.KeyR:  0x15,
	types.KeyS:  0x16,
	types.KeyT:  0x17,
	types.KeyF1: 0x3A,
}

var modifierBits = map[types.Key]byte{
	types.KeyControl: modLeftCtrl,
	types.KeyShift:   modLeftShift,
	types.KeyAlt:     modLeftAlt,
}

// GadgetKeyboard emulates a boot-protocol keyboard through the USB gadget
// HID function. Each key change writes a full 8 byte report.
type GadgetKeyboard struct {
	logger    *logger.Logger
	path      string
	fd        int
	write     func([]byte) (int, error)
	mu        sync.Mutex
	modifiers byte
	keys      [reportKeys]byte
}

func NewGadgetKeyboard(path string, l *logger.Logger) *GadgetKeyboard {
	if path == "" {
		path = DefaultHidgPath
	}
	return &GadgetKeyboard{
		logger: l,
		path:   path,
		fd:     -1,
	}
}

func (k *GadgetKeyboard) Open() error {
	fd, err := unix.Open(k.path, unix.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open HID gadget %s: %w", k.path, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.fd = fd
	k.write = func(b []byte) (int, error) {
		return unix.Write(fd, b)
	}
	k.logger.Infof("Opened HID gadget %s", k.path)

	// start from a clean slate in case a previous run died mid-combo
	k.modifiers = 0
	k.keys = [reportKeys]byte{}
	k.send()
	return nil
}

func (k *GadgetKeyboard) KeyDown(key types.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if bit, ok := modifierBits[key]; ok {
		k.modifiers |= bit
		k.send()
		return
	}

	code, ok := usages[key]
	if !ok {
		k.logger.Warnf("No HID usage for key %v", key)
		return
	}
	for _, c := range k.keys {
		if c == code {
			return
		}
	}
	for i, c := range k.keys {
		if c == 0 {
			k.keys[i] = code
			k.send()
			return
		}
	}
	k.logger.Warnf("Dropping %v: %d keys already held", key, reportKeys)
}

func (k *GadgetKeyboard) KeyUp(key types.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if bit, ok := modifierBits[key]; ok {
		k.modifiers &^= bit
		k.send()
		return
	}

	code, ok := usages[key]
	if !ok {
		return
	}
	for i, c := range k.keys {
		if c == code {
			k.keys[i] = 0
			k.send()
			return
		}
	}
}

func (k *GadgetKeyboard) report() []byte {
	r := make([]byte, reportSize)
	r[0] = k.modifiers
	copy(r[2:], k.keys[:])
	return r
}

// send must be called with k.mu held.
func (k *GadgetKeyboard) send() {
	if k.write == nil {
		k.logger.Warnf("HID gadget not open, dropping report")
		return
	}
	r := k.report()
	n, err := k.write(r)
	if err != nil {
		k.logger.Errorf("Failed to write HID report: %v", err)
		return
	}
	if n != len(r) {
		k.logger.Warnf("Short HID report write: %d of %d bytes", n, len(r))
		return
	}
	k.logger.Debugf("HID report % x", r)
}

func (k *GadgetKeyboard) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.fd < 0 {
		return
	}
	k.modifiers = 0
	k.keys = [reportKeys]byte{}
	k.send()

	unix.Close(k.fd)
	k.fd = -1
	k.write = nil
	k.logger.Infof("Closed HID gadget %s", k.path)
}
