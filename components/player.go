package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	IsClimbing bool

	// Respawn point after a fall or a hit
	StartX float64
	StartY float64
}

var Player = donburi.NewComponentType[PlayerData]()
