package components

import "github.com/yohamta/donburi"

// GameStateData is the per-run score keeping. It lives in the Playing
// scene's world, so a restart starts from a fresh value.
type GameStateData struct {
	Score       int
	Lives       int
	IsPoweredUp bool

	// Bumped on every power-up pickup. An expiry timer only ends the
	// power-up when the generation it captured is still current.
	PowerGeneration int

	// Set when the last life is lost; the scene switches to game over.
	Over bool
}

var GameState = donburi.NewComponentType[GameStateData]()
