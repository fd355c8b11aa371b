// Package actions holds the simulator shortcuts bound to the box and the
// fixed tables that map buttons and encoders onto them.
package actions

import (
	"time"

	"button-box/internal/types"
)

// Action is one simulator shortcut.
type Action int

const (
	NotMapped Action = iota
	Ignition
	Starter
	Wiper
	ToggleLights
	ToggleRainLights
	ToggleFlashingLights
	EngagePitLimiter
	CycleRacelogic
	CycleCamera
	IncreaseABS
	DecreaseABS
	IncreaseTC
	DecreaseTC
	IncreaseBB
	DecreaseBB
	IncreaseEngineMap
	DecreaseEngineMap

	actionCount
)

var actionNames = [actionCount]string{
	NotMapped:            "not_mapped",
	Ignition:             "ignition",
	Starter:              "starter",
	Wiper:                "wiper",
	ToggleLights:         "toggle_lights",
	ToggleRainLights:     "toggle_rain_lights",
	ToggleFlashingLights: "toggle_flashing_lights",
	EngagePitLimiter:     "engage_pit_limiter",
	CycleRacelogic:       "cycle_racelogic",
	CycleCamera:          "cycle_camera",
	IncreaseABS:          "increase_abs",
	DecreaseABS:          "decrease_abs",
	IncreaseTC:           "increase_tc",
	DecreaseTC:           "decrease_tc",
	IncreaseBB:           "increase_bb",
	DecreaseBB:           "decrease_bb",
	IncreaseEngineMap:    "increase_engine_map",
	DecreaseEngineMap:    "decrease_engine_map",
}

func combo(hold time.Duration, keys ...types.Key) Combo {
	return Combo{Keys: keys, Hold: hold}
}

// NotMapped has no combo and is the only action without one.
var combos = [actionCount]Combo{
	Ignition:             combo(DefaultHold, types.KeyShift, types.KeyI),
	Starter:              combo(StarterHold, types.KeyS),
	Wiper:                combo(DefaultHold, types.KeyAlt, types.KeyR),
	ToggleLights:         combo(DefaultHold, types.KeyL),
	ToggleRainLights:     combo(DefaultHold, types.KeyControl, types.KeyL),
	ToggleFlashingLights: combo(DefaultHold, types.KeyShift, types.KeyL),
	EngagePitLimiter:     combo(DefaultHold, types.KeyAlt, types.KeyL),
	CycleRacelogic:       combo(DefaultHold, types.KeyAlt, types.KeyD),
	CycleCamera:          combo(DefaultHold, types.KeyF1),
	IncreaseABS:          combo(DefaultHold, types.KeyShift, types.KeyA),
	DecreaseABS:          combo(DefaultHold, types.KeyControl, types.KeyA),
	IncreaseTC:           combo(DefaultHold, types.KeyShift, types.KeyT),
	DecreaseTC:           combo(DefaultHold, types.KeyControl, types.KeyT),
	IncreaseBB:           combo(DefaultHold, types.KeyShift, types.KeyB),
	DecreaseBB:           combo(DefaultHold, types.KeyControl, types.KeyB),
	IncreaseEngineMap:    combo(DefaultHold, types.KeyShift, types.KeyE),
	DecreaseEngineMap:    combo(DefaultHold, types.KeyControl, types.KeyE),
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Combo returns the keys and hold for a. ok is false for NotMapped and
// for values outside the action set.
func (a Action) Combo() (c Combo, ok bool) {
	if a <= NotMapped || a >= actionCount {
		return Combo{}, false
	}
	return combos[a], true
}

// Invoke runs the action's combo on s. NotMapped does nothing.
func (a Action) Invoke(s *Sequencer) {
	c, ok := a.Combo()
	if !ok {
		return
	}
	s.Press(c)
}
