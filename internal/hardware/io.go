package hardware

import (
	"fmt"
	"sync"

	"github.com/warthog618/go-gpiocdev"

	"button-box/internal/logger"
)

// LinuxHardwareIO samples the button lines and decodes the encoders over
// the GPIO character device.
type LinuxHardwareIO struct {
	logger   *logger.Logger
	chipName string
	chip     *gpiocdev.Chip
	buttons  []*gpiocdev.Line
	encoders []*gpiocdev.Lines
	decoders []*quadratureDecoder
	mu       sync.RWMutex
}

func NewLinuxHardwareIO(chipName string, l *logger.Logger) *LinuxHardwareIO {
	if chipName == "" {
		chipName = DefaultChip
	}
	return &LinuxHardwareIO{
		logger:   l,
		chipName: chipName,
	}
}

func (io *LinuxHardwareIO) Initialize() error {
	io.logger.Infof("Initializing hardware IO on %s", io.chipName)

	chip, err := gpiocdev.NewChip(io.chipName, gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return fmt.Errorf("failed to open GPIO chip %s: %w", io.chipName, err)
	}

	io.mu.Lock()
	defer io.mu.Unlock()
	io.chip = chip

	for i, offset := range ButtonLines {
		line, err := chip.RequestLine(offset,
			gpiocdev.AsInput,
			gpiocdev.WithPullUp)
		if err != nil {
			return fmt.Errorf("failed to request button %d (line %d): %w", i, offset, err)
		}
		io.buttons = append(io.buttons, line)
		io.logger.Debugf("Configured button %d: line=%d", i, offset)
	}

	for i, pins := range EncoderLines {
		dec := newQuadratureDecoder(pins.A, pins.B, 1, 1)
		lines, err := chip.RequestLines([]int{pins.A, pins.B},
			gpiocdev.AsInput,
			gpiocdev.WithPullUp,
			gpiocdev.WithBothEdges,
			gpiocdev.WithEventHandler(dec.handleEvent))
		if err != nil {
			return fmt.Errorf("failed to request encoder %d (lines %d/%d): %w", i+1, pins.A, pins.B, err)
		}
		io.encoders = append(io.encoders, lines)

		// read from the edge-watching request itself so no transition can
		// slip in between sampling and watching
		levels := make([]int, 2)
		if err := lines.Values(levels); err != nil {
			return fmt.Errorf("failed to read encoder %d: %w", i+1, err)
		}
		dec.seed(levels[0], levels[1])

		io.decoders = append(io.decoders, dec)
		io.logger.Debugf("Configured encoder %d: a=%d b=%d", i+1, pins.A, pins.B)
	}

	io.logger.Infof("Hardware IO ready: %d buttons, %d encoders", len(io.buttons), len(io.decoders))
	return nil
}

// ReadButton returns the raw level of button i, true meaning high (released).
func (io *LinuxHardwareIO) ReadButton(i int) (bool, error) {
	io.mu.RLock()
	defer io.mu.RUnlock()

	if i < 0 || i >= len(io.buttons) {
		return false, fmt.Errorf("unknown button %d", i)
	}
	v, err := io.buttons[i].Value()
	if err != nil {
		return false, fmt.Errorf("failed to read button %d: %w", i, err)
	}
	return v != 0, nil
}

// EncoderPosition returns the detent count of encoder ch (0-based).
func (io *LinuxHardwareIO) EncoderPosition(ch int) int {
	io.mu.RLock()
	defer io.mu.RUnlock()

	if ch < 0 || ch >= len(io.decoders) {
		return 0
	}
	return io.decoders[ch].Position()
}

func (io *LinuxHardwareIO) Cleanup() {
	io.mu.Lock()
	defer io.mu.Unlock()

	io.logger.Infof("Cleaning up hardware resources")

	for i, line := range io.buttons {
		if err := line.Close(); err != nil {
			io.logger.Warnf("Failed to close button %d: %v", i, err)
		}
	}
	io.buttons = nil

	for i, lines := range io.encoders {
		if err := lines.Close(); err != nil {
			io.logger.Warnf("Failed to close encoder %d: %v", i+1, err)
		}
	}
	io.encoders = nil
	io.decoders = nil

	if io.chip != nil {
		io.chip.Close()
		io.chip = nil
	}

	io.logger.Infof("Hardware cleanup complete")
}
