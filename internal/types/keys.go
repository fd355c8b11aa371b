package types

// Key is a symbolic keyboard key as understood by the HID sink.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyB
	KeyD
	KeyE
	KeyI
	KeyL
	KeyR
	KeyS
	KeyT
	KeyF1
	KeyShift
	KeyControl
	KeyAlt
)

var keyNames = [...]string{
	KeyNone:    "NONE",
	KeyA:       "A",
	KeyB:       "B",
	KeyD:       "D",
	KeyE:       "E",
	KeyI:       "I",
	KeyL:       "L",
	KeyR:       "R",
	KeyS:       "S",
	KeyT:       "T",
	KeyF1:      "F1",
	KeyShift:   "SHIFT",
	KeyControl: "CONTROL",
	KeyAlt:     "ALT",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "UNKNOWN"
	}
	return keyNames[k]
}

// IsModifier reports whether k is held in the modifier byte of a keyboard report.
func (k Key) IsModifier() bool {
	return k == KeyShift || k == KeyControl || k == KeyAlt
}
