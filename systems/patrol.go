package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrol walks every patroller and turns it around outside its bounds.
func UpdatePatrol(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		obj := components.Object.Get(e)

		x, y := obj.Feet()
		x += patrol.Dir * patrol.Speed * dt
		if x < patrol.MinX || x > patrol.MaxX {
			patrol.Dir = -patrol.Dir
			if e.HasComponent(components.Animation) {
				components.Animation.Get(e).FlipX = patrol.Dir < 0
			}
		}
		obj.SetFeet(x, y)
	})
}
