package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform adds a static one-way floor slab.
func CreatePlatform(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	newBox(ecs, platform, r.X+r.Width/2, r.Y+r.Height, r.Width, r.Height, tags.ResolvPlatform)
	return platform
}

// CreateLadder adds a climbable sensor zone. It has no body.
func CreateLadder(ecs *ecs.ECS, r assets.Rect) *donburi.Entry {
	ladder := archetypes.Ladder.Spawn(ecs)
	newBox(ecs, ladder, r.X+r.Width/2, r.Y+r.Height, r.Width, r.Height, tags.ResolvLadder)
	return ladder
}
