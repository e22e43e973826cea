package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// devices answers the questions action polling asks of the hardware.
type devices interface {
	KeyPressed(key ebiten.Key) bool
	Gamepads() []ebiten.GamepadID
	ButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
}

// ebitenDevices reads the live keyboard and standard-layout gamepads.
type ebitenDevices struct {
	ids []ebiten.GamepadID
}

func (d *ebitenDevices) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Gamepads returns the connected pads with a standard layout. The slice is
// reused between calls.
func (d *ebitenDevices) Gamepads() []ebiten.GamepadID {
	all := ebiten.AppendGamepadIDs(d.ids[:0])
	d.ids = all[:0]
	for _, id := range all {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			d.ids = append(d.ids, id)
		}
	}
	return d.ids
}

func (d *ebitenDevices) ButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (d *ebitenDevices) Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

var liveDevices = &ebitenDevices{}

// UpdateInput polls the keyboard and every gamepad into the Input singleton.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pollActions(getOrCreateInput(ecs), liveDevices)
}

// pollActions shifts the current tick's actions into Previous and fills
// Current from the bindings. A stick direction counts once it passes the
// dead zone. The gamepad wins LastInputMethod when both are used.
func pollActions(input *components.InputData, dev devices) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	pads := dev.Gamepads()
	deadzone := cfg.Input.AnalogDeadzone
	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if dev.KeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, id := range pads {
			for _, btn := range binding.StandardGamepadButtons {
				if dev.ButtonPressed(id, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
			for _, stick := range binding.Sticks {
				if dev.Axis(id, stick.Axis)*stick.Sign > deadzone {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
