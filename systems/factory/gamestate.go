package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/clock"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGameState spawns the run's score keeping, its contact memory and a
// clock starting at zero.
func CreateGameState(ecs *ecs.ECS) *donburi.Entry {
	state := archetypes.GameState.Spawn(ecs)

	components.GameState.SetValue(state, components.GameStateData{
		Lives: cfg.Player.StartingLives,
	})
	components.Contacts.SetValue(state, components.ContactsData{
		Touching: make(map[components.ContactPair]bool),
	})
	components.Clock.Set(state, clock.New())

	return state
}

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{Scale: 1})
	return hud
}
