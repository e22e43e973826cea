package components

import (
	"github.com/yohamta/donburi"
)

// EnemyData is the chaser's state. While IsDead it is parked off-screen and
// skipped by the AI and the collision resolver.
type EnemyData struct {
	IsDead bool
	Speed  float64 // horizontal units per second

	// Where the enemy reappears after a defeat
	HomeX float64
	HomeY float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
