package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOlive spawns the patroller. She walks from the start and has no body.
func CreateOlive(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	olive := archetypes.Olive.Spawn(ecs)

	newBox(ecs, olive, x, y, cfg.Patrol.CollisionWidth, cfg.Patrol.CollisionHeight, tags.ResolvOlive)

	components.Patrol.SetValue(olive, components.PatrolData{
		Dir:   cfg.DirectionRight,
		Speed: cfg.Patrol.Speed,
		MinX:  cfg.Patrol.MinX,
		MaxX:  cfg.Patrol.MaxX,
	})
	anim := GenerateAnimations(cfg.OliveWalk)
	anim.Play()
	components.Animation.Set(olive, anim)

	return olive
}

// CreateBrutus spawns the chaser. (x, y) is also where it comes back after
// a defeat.
func CreateBrutus(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	brutus := archetypes.Brutus.Spawn(ecs)

	newBox(ecs, brutus, x, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight, tags.ResolvEnemy)

	components.Enemy.SetValue(brutus, components.EnemyData{
		Speed: cfg.Enemy.Speed,
		HomeX: x,
		HomeY: y,
	})
	components.Physics.SetValue(brutus, components.PhysicsData{
		Body:    true,
		Gravity: cfg.Physics.Gravity,
	})
	anim := GenerateAnimations(cfg.BrutusWalk)
	anim.Play()
	components.Animation.Set(brutus, anim)

	return brutus
}
