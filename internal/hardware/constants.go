package hardware

const (
	DefaultChip     = "gpiochip0"
	DefaultHidgPath = "/dev/hidg0"
	Consumer        = "button-box"

	// quadrature transitions per detent
	StepsPerDetent = 4
)

// ButtonLines are the line offsets of the 14 buttons in index order. Lines
// are pulled up, so a pressed button reads low.
var ButtonLines = [14]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}

// EncoderLines are the A/B line offsets of the four encoders in polling order.
var EncoderLines = [4]struct {
	A int
	B int
}{
	{20, 21},
	{18, 19},
	{16, 17},
	{14, 15},
}
