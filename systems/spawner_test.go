package systems

import (
	"math"
	"testing"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/automoto/popeye/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func spinachX(t *testing.T, e *ecs.ECS) float64 {
	t.Helper()
	entry, ok := tags.Spinach.First(e.World)
	require.True(t, ok)
	x, _ := feet(entry)
	return x
}

func TestSpawnersFollowTheirIntervals(t *testing.T) {
	e := newTestWorld(t, 1)

	advanceClock(e, 179)
	assert.Zero(t, count(e, tags.Heart))

	advanceClock(e, 1)
	require.Equal(t, 1, count(e, tags.Heart))

	// The first heart drops just below Olive, who has not moved
	heart, _ := tags.Heart.First(e.World)
	x, y := feet(heart)
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 140+cfg.Pickup.HeartOffsetY, y)

	advanceClock(e, 419)
	assert.Equal(t, 3, count(e, tags.Heart))
	assert.Zero(t, count(e, tags.Spinach))

	advanceClock(e, 1)
	assert.Equal(t, 1, count(e, tags.Spinach))

	sx := spinachX(t, e)
	assert.GreaterOrEqual(t, sx, cfg.Pickup.SpinachMinX)
	assert.LessOrEqual(t, sx, cfg.Pickup.SpinachMaxX)
	entry, _ := tags.Spinach.First(e.World)
	_, sy := feet(entry)
	assert.Equal(t, cfg.Pickup.SpinachY, sy)
}

func TestSpinachPlacementFollowsSeed(t *testing.T) {
	a := newTestWorld(t, 42)
	b := newTestWorld(t, 42)

	advanceClock(a, 600)
	advanceClock(b, 600)

	assert.Equal(t, spinachX(t, a), spinachX(t, b))
}

func TestHeartSwaysWhileFalling(t *testing.T) {
	e := newBareWorld(t)
	heart := factory.CreateHeart(e, 400, 160)
	dt := cfg.TickDuration()

	UpdateHearts(e)

	x, y := feet(heart)
	assert.InDelta(t, dt, components.Bobble.Get(heart).T, 1e-12)
	assert.InDelta(t, 400+math.Sin(dt*cfg.Pickup.HeartSwayFreq)*cfg.Pickup.HeartSwaySpeed*dt, x, 1e-9)
	assert.InDelta(t, 160+cfg.Pickup.HeartFallSpeed*dt, y, 1e-9)

	// Hearts pass straight through platforms
	tick(e, 240)
	_, y = feet(heart)
	assert.Greater(t, y, 410.0)
}

func TestPickupsBelowPlayfieldAreRemoved(t *testing.T) {
	e := newBareWorld(t)
	below := float64(cfg.C.Height) + cfg.Pickup.HeartSize + 1

	gone := factory.CreateHeart(e, 400, below)
	kept := factory.CreateHeart(e, 400, 500)
	spinach := factory.CreateSpinach(e, 300, below)
	components.Physics.Get(spinach).DisableBody()

	UpdatePickupCleanup(e)

	assert.False(t, gone.Valid())
	assert.True(t, kept.Valid())
	assert.False(t, spinach.Valid())
	assert.Equal(t, 1, count(e, tags.Heart))
	assert.Zero(t, count(e, tags.Spinach))
}

func TestStartSpawnersRejectsBadInterval(t *testing.T) {
	t.Cleanup(cfg.Reset)
	cfg.Pickup.HeartInterval = 0

	e := newBareWorld(t)
	assert.Error(t, StartSpawners(e, nil))
}
