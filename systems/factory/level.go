package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel records the level and builds its static geometry. The space
// must exist already.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, r := range level.Platforms {
		CreatePlatform(ecs, r)
	}
	for _, r := range level.Ladders {
		CreateLadder(ecs, r)
	}

	return entry
}
