package archetypes

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.Tint,
	)
	Olive = newArchetype(
		tags.Olive,
		components.Patrol,
		components.Object,
		components.Animation,
	)
	Brutus = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Heart = newArchetype(
		tags.Heart,
		components.Bobble,
		components.Object,
		components.Animation,
	)
	Spinach = newArchetype(
		tags.Spinach,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	GameState = newArchetype(
		components.GameState,
		components.Contacts,
		components.Clock,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Camera = newArchetype(
		components.Camera,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
