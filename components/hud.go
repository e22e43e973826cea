package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData tracks the score label's pulse when the score changes.
type HUDData struct {
	LastScore int
	Pulse     *gween.Tween
	Scale     float32
}

var HUD = donburi.NewComponentType[HUDData]()
