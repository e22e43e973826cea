package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData stores the result shown on the game over screen and the
// title's drop-in tween.
type GameOverData struct {
	FinalScore  int
	Drop        *gween.Tween
	TitleOffset float32
	Restart     bool
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
