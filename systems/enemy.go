package systems

import (
	"math"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies chases the player. Horizontal pursuit is the default; an
// enemy standing in a ladder climbs instead while the player is more than
// ClimbThreshold away vertically.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	px, py := components.Object.Get(playerEntry).Feet()
	dt := cfg.TickDuration()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.IsDead {
			return
		}

		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)
		anim := components.Animation.Get(e)

		x, y := obj.Feet()
		distX := px - x
		distY := py - y

		if touches(obj.Object, 0, tags.ResolvLadder) && math.Abs(distY) > cfg.Enemy.ClimbThreshold {
			physics.DisableBody()
			if distY > 0 {
				y += cfg.Enemy.ClimbSpeed
			} else {
				y -= cfg.Enemy.ClimbSpeed
			}
			if !anim.Playing(cfg.Sheets[anim.Sheet].Clip) {
				anim.Play()
			}
		} else {
			physics.EnableBody()
			if distX > 0 {
				x += enemy.Speed * dt
			} else {
				x -= enemy.Speed * dt
			}
			// The sheet faces left, so it is mirrored when heading right.
			anim.FlipX = distX > 0
		}

		obj.SetFeet(x, y)
	})
}
