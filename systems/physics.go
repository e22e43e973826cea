package systems

import (
	"math"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity to every enabled body and lands it on
// platforms from above. Platforms never stop upward or sideways motion.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Body {
			physics.SpeedY = 0
			physics.OnGround = nil
			return
		}

		obj := components.Object.Get(e)
		physics.SpeedY += physics.Gravity * dt
		dy := clampVerticalSpeed(physics.SpeedY * dt)
		physics.OnGround = nil

		if dy >= 0 {
			if floor := landingPlatform(obj, dy); floor != nil {
				obj.Y = floor.Y - obj.H
				physics.SpeedY = 0
				physics.OnGround = floor
				return
			}
		}

		obj.Y += dy
	})
}

func clampVerticalSpeed(dy float64) float64 {
	limit := cfg.Physics.VerticalSpeedClamp
	return math.Max(math.Min(dy, limit), -limit)
}

// landingPlatform returns the highest platform the box settles on after
// falling dy. A platform catches the box when the feet reach its top (with
// one unit of tolerance, so resting counts) and either the feet started at
// or above the platform's bottom or the box's centre is still above it.
func landingPlatform(obj *components.ObjectData, dy float64) *resolv.Object {
	check := obj.Check(0, dy+1, tags.ResolvPlatform)
	if check == nil {
		return nil
	}

	oldFeet := obj.Y + obj.H
	newFeet := oldFeet + dy
	newCentre := newFeet - obj.H/2

	var best *resolv.Object
	for _, p := range check.Objects {
		if obj.X >= p.X+p.W || obj.X+obj.W <= p.X {
			continue
		}
		top, bottom := p.Y, p.Y+p.H
		if newFeet+1 < top {
			continue
		}
		if oldFeet > bottom && newCentre >= bottom {
			continue
		}
		if best == nil || p.Y < best.Y {
			best = p
		}
	}
	return best
}
