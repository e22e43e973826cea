package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHeart spawns a floating heart. It drifts on its own and never lands.
func CreateHeart(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	heart := archetypes.Heart.Spawn(ecs)

	newBox(ecs, heart, x, y, cfg.Pickup.HeartSize, cfg.Pickup.HeartSize, tags.ResolvHeart)

	components.Bobble.SetValue(heart, components.BobbleData{T: 0})
	anim := GenerateAnimations(cfg.HeartBeat)
	anim.Play()
	components.Animation.Set(heart, anim)

	return heart
}

// CreateSpinach spawns a spinach can that falls onto the platforms.
func CreateSpinach(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	spinach := archetypes.Spinach.Spawn(ecs)

	newBox(ecs, spinach, x, y, cfg.Pickup.SpinachSize, cfg.Pickup.SpinachSize, tags.ResolvSpinach)

	components.Physics.SetValue(spinach, components.PhysicsData{
		Body:    true,
		Gravity: cfg.Physics.Gravity,
	})
	anim := GenerateAnimations(cfg.SpinachFlash)
	anim.Play()
	components.Animation.Set(spinach, anim)

	return spinach
}
