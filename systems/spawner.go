package systems

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartSpawners arms the repeating heart and spinach timers on the world's
// clock. rng picks where spinach appears.
func StartSpawners(ecs *ecs.ECS, rng *rand.Rand) error {
	clk := GetClock(ecs)

	if err := clk.Every(cfg.Pickup.HeartInterval, func() { spawnHeart(ecs) }); err != nil {
		return fmt.Errorf("heart spawner: %w", err)
	}
	if err := clk.Every(cfg.Pickup.SpinachInterval, func() { spawnSpinach(ecs, rng) }); err != nil {
		return fmt.Errorf("spinach spawner: %w", err)
	}
	return nil
}

// spawnHeart drops a heart just below the patroller.
func spawnHeart(ecs *ecs.ECS) {
	olive, ok := tags.Olive.First(ecs.World)
	if !ok {
		return
	}
	x, y := components.Object.Get(olive).Feet()
	factory.CreateHeart(ecs, x, y+cfg.Pickup.HeartOffsetY)
}

func spawnSpinach(ecs *ecs.ECS, rng *rand.Rand) {
	x := cfg.Pickup.SpinachMinX + rng.Float64()*(cfg.Pickup.SpinachMaxX-cfg.Pickup.SpinachMinX)
	factory.CreateSpinach(ecs, x, cfg.Pickup.SpinachY)
}

// UpdateHearts sways every heart along a sine wave while it sinks.
func UpdateHearts(ecs *ecs.ECS) {
	dt := cfg.TickDuration()

	components.Bobble.Each(ecs.World, func(e *donburi.Entry) {
		bobble := components.Bobble.Get(e)
		obj := components.Object.Get(e)

		bobble.T += dt
		x, y := obj.Feet()
		x += math.Sin(bobble.T*cfg.Pickup.HeartSwayFreq) * cfg.Pickup.HeartSwaySpeed * dt
		y += cfg.Pickup.HeartFallSpeed * dt
		obj.SetFeet(x, y)
	})
}

// UpdatePickupCleanup destroys hearts and spinach that have left the bottom
// of the playfield.
func UpdatePickupCleanup(ecs *ecs.ECS) {
	limit := float64(cfg.C.Height)

	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		if components.Object.Get(e).Y > limit {
			toRemove = append(toRemove, e)
		}
	}
	tags.Heart.Each(ecs.World, collect)
	tags.Spinach.Each(ecs.World, collect)

	for _, e := range toRemove {
		destroyEntity(ecs, e)
	}
}
