package systems

import (
	"math"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	analog := readAnalogStick(gamepadIDs)
	if analog != 0 {
		gamepadUsed = true
	}
	// Buttons still held from the previous scene are not fresh presses
	if !input.Primed {
		input.Previous = input.Current
		input.Primed = true
	}

	input.MoveAxis = MoveAxis(input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight], analog)

	// Gamepad takes priority if both were used this frame
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// MoveAxis merges digital left/right with an analog stick value. Digital
// input wins when held; opposite directions cancel.
func MoveAxis(left, right bool, analog float64) float64 {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	case left && right:
		return 0
	}
	return math.Max(-1, math.Min(1, analog))
}

// applyDeadzone zeroes small stick deflections and rescales the rest so the
// axis still reaches full range.
func applyDeadzone(v, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	if math.Abs(v) <= deadzone {
		return 0
	}
	scaled := (math.Abs(v) - deadzone) / (1 - deadzone)
	return math.Copysign(math.Min(scaled, 1), v)
}

// readAnalogStick returns the strongest left stick deflection across gamepads.
func readAnalogStick(gamepads []ebiten.GamepadID) float64 {
	var best float64
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		h = applyDeadzone(h, cfg.Input.AnalogDeadzone)
		if math.Abs(h) > math.Abs(best) {
			best = h
		}
	}
	return best
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
