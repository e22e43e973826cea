package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/popeye/components"
	"github.com/automoto/popeye/fonts"
	"github.com/automoto/popeye/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var inputMethodNames = map[components.InputMethod]string{
	components.InputKeyboard: "keyboard",
	components.InputGamepad:  "gamepad",
}

// DrawDebug outlines every collision box and prints the clock and input
// state. Toggled with F1.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x, y := obj.X, obj.Y

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvLadder) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}

			// Draw outline
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	state := GetGameState(ecs)
	input := getOrCreateInput(ecs)
	info := fmt.Sprintf("TPS %.0f  t=%.2fs  timers=%d  powered=%v  input=%s",
		ebiten.ActualTPS(), GetClock(ecs).Now(), GetClock(ecs).Len(),
		state.IsPoweredUp, inputMethodNames[input.LastInputMethod])
	width := screen.Bounds().Dx()
	text.Draw(screen, info, fonts.Debug.Get(), width-420, 20, color.White)
}
