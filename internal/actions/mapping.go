package actions

import "button-box/internal/input"

const (
	ButtonCount  = 14
	EncoderCount = 4
)

// EncoderBinding names the logical increase and decrease actions of one
// encoder knob.
type EncoderBinding struct {
	Name     string
	Increase Action
	Decrease Action
}

// ButtonMap binds every button index to an action. Unused buttons are bound
// to NotMapped so lookups never miss.
var ButtonMap = [ButtonCount]Action{
	0:  Ignition,
	1:  Starter,
	2:  EngagePitLimiter,
	3:  CycleRacelogic,
	4:  ToggleLights,
	5:  Wiper,
	6:  ToggleFlashingLights,
	7:  CycleCamera,
	8:  ToggleRainLights,
	9:  NotMapped,
	10: NotMapped,
	11: NotMapped,
	12: NotMapped,
	13: NotMapped,
}

// EncoderMap lists the encoders in polling order.
var EncoderMap = [EncoderCount]EncoderBinding{
	{Name: "bb", Increase: IncreaseBB, Decrease: DecreaseBB},
	{Name: "engine_map", Increase: IncreaseEngineMap, Decrease: DecreaseEngineMap},
	{Name: "abs", Increase: IncreaseABS, Decrease: DecreaseABS},
	{Name: "tc", Increase: IncreaseTC, Decrease: DecreaseTC},
}

// ForButton returns the action bound to button i, NotMapped when i is out
// of range.
func ForButton(i int) Action {
	if i < 0 || i >= ButtonCount {
		return NotMapped
	}
	return ButtonMap[i]
}

// ForDirection resolves an observed encoder movement to an action. The knobs
// are wired so that a falling position means "increase": a Decrease
// observation selects the Increase action and vice versa.
func (b EncoderBinding) ForDirection(d input.Direction) Action {
	switch d {
	case input.DirectionDecrease:
		return b.Increase
	case input.DirectionIncrease:
		return b.Decrease
	default:
		return NotMapped
	}
}
