package systems

import (
	"testing"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeDevices struct {
	keys    map[ebiten.Key]bool
	pads    []ebiten.GamepadID
	buttons map[ebiten.StandardGamepadButton]bool
	axes    map[ebiten.StandardGamepadAxis]float64
}

func (f *fakeDevices) KeyPressed(key ebiten.Key) bool { return f.keys[key] }
func (f *fakeDevices) Gamepads() []ebiten.GamepadID  { return f.pads }
func (f *fakeDevices) ButtonPressed(_ ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return f.buttons[b]
}
func (f *fakeDevices) Axis(_ ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return f.axes[a]
}

func TestKeyboardActions(t *testing.T) {
	input := &components.InputData{}
	dev := &fakeDevices{keys: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}}

	pollActions(input, dev)

	assert.True(t, GetAction(input, cfg.ActionMoveLeft).JustPressed)
	assert.True(t, GetAction(input, cfg.ActionRestart).Pressed)
	assert.False(t, GetAction(input, cfg.ActionMoveRight).Pressed)
	assert.Equal(t, components.InputKeyboard, input.LastInputMethod)

	pollActions(input, dev)
	assert.True(t, GetAction(input, cfg.ActionMoveLeft).Pressed)
	assert.False(t, GetAction(input, cfg.ActionMoveLeft).JustPressed)

	dev.keys = nil
	pollActions(input, dev)
	assert.True(t, GetAction(input, cfg.ActionMoveLeft).JustReleased)
}

func TestStickDirectionsUseDeadzone(t *testing.T) {
	input := &components.InputData{}
	dev := &fakeDevices{
		pads: []ebiten.GamepadID{0},
		axes: map[ebiten.StandardGamepadAxis]float64{
			ebiten.StandardGamepadAxisLeftStickHorizontal: 0.9,
			ebiten.StandardGamepadAxisLeftStickVertical:   -cfg.Input.AnalogDeadzone / 2,
		},
	}

	pollActions(input, dev)

	assert.True(t, GetAction(input, cfg.ActionMoveRight).Pressed)
	assert.False(t, GetAction(input, cfg.ActionMoveLeft).Pressed)
	assert.False(t, GetAction(input, cfg.ActionMoveUp).Pressed, "inside the dead zone")
	assert.Equal(t, components.InputGamepad, input.LastInputMethod)

	dev.axes[ebiten.StandardGamepadAxisLeftStickVertical] = 0.8
	pollActions(input, dev)
	assert.True(t, GetAction(input, cfg.ActionMoveDown).Pressed)
}

func TestGamepadButtonsWinInputMethod(t *testing.T) {
	input := &components.InputData{}
	dev := &fakeDevices{
		keys:    map[ebiten.Key]bool{ebiten.KeyLeft: true},
		pads:    []ebiten.GamepadID{0},
		buttons: map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonCenterRight: true},
	}

	pollActions(input, dev)

	assert.True(t, GetAction(input, cfg.ActionPause).Pressed)
	assert.True(t, GetAction(input, cfg.ActionMoveLeft).Pressed)
	assert.Equal(t, components.InputGamepad, input.LastInputMethod)
}
