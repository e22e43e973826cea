package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view over the single screen. It never scrolls; Offset is
// only non-zero while a shake runs.
type CameraData struct {
	Offset math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is a decaying shake, counted in ticks.
type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
