package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing at (x, y), which is also where it
// respawns.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newBox(ecs, player, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{
		StartX: x,
		StartY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Body:    true,
		Gravity: cfg.Physics.Gravity,
	})
	components.Animation.Set(player, GenerateAnimations(cfg.PlayerWalk))
	components.Tint.Get(player).Reset()

	return player
}
