package factory

import (
	"github.com/automoto/popeye/archetypes"
	"github.com/automoto/popeye/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newBox creates a collision box for entry, positioned by its feet, and
// adds it to the world's space.
func newBox(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, resolvTags ...string) *components.ObjectData {
	obj := resolv.NewObject(0, 0, w, h, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	box := components.Object.Get(entry)
	box.SetFeet(x, y)
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	return box
}
