package systems

import (
	"math/rand"

	"github.com/automoto/popeye/assets"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// Gameplay lists the systems of one playing tick after input polling, in
// order. Timers fire first so their spawns and respawns take part in the
// same tick.
var Gameplay = []ecs.System{
	UpdateClock,
	UpdatePlayer,
	UpdatePatrol,
	UpdateEnemies,
	UpdateHearts,
	UpdatePhysics,
	UpdateObjects,
	UpdateCollisions,
	UpdateCamera,
	UpdatePickupCleanup,
	UpdateAnimations,
	UpdateHUD,
}

// PopulateWorld creates everything a fresh run needs: the collision space,
// the level geometry, the three characters, the score keeping and the
// pickup spawners.
func PopulateWorld(ecs *ecs.ECS, level *assets.Level, rng *rand.Rand) error {
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateGameState(ecs)
	factory.CreateHUD(ecs)
	factory.CreateCamera(ecs)
	factory.CreateLevel(ecs, level)
	GetOrCreateSettings(ecs)
	getOrCreateInput(ecs)

	factory.CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	factory.CreateOlive(ecs, level.OliveSpawn.X, level.OliveSpawn.Y)
	factory.CreateBrutus(ecs, level.BrutusSpawn.X, level.BrutusSpawn.Y)

	return StartSpawners(ecs, rng)
}
