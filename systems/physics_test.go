package systems

import (
	"testing"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestBodyFallsThroughPlatformFromBelow(t *testing.T) {
	e := newBareWorld(t)
	// Just under the middle row's slab, so that row must not catch it
	player := factory.CreatePlayer(e, 400, 300)

	tick(e, 120)

	_, y := feet(player)
	assert.Equal(t, 410.0, y)
	assert.NotNil(t, components.Physics.Get(player).OnGround)
}

func TestBodyInsideSlabSnapsToTop(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 285)

	tick(e, 1)

	_, y := feet(player)
	assert.Equal(t, 280.0, y)
	assert.Zero(t, components.Physics.Get(player).SpeedY)
}

func TestBodyRisesThroughPlatform(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 300)
	components.Physics.Get(player).SpeedY = -600

	UpdatePhysics(e)

	dt := cfg.TickDuration()
	_, y := feet(player)
	assert.InDelta(t, 300+(-600+cfg.Physics.Gravity*dt)*dt, y, 1e-9)
}

func TestSpinachLandsOnPlatform(t *testing.T) {
	e := newBareWorld(t)
	spinach := factory.CreateSpinach(e, 300, 200)

	tick(e, 120)

	_, y := feet(spinach)
	assert.Equal(t, 280.0, y)
}

func TestFallSpeedIsClamped(t *testing.T) {
	e := newBareWorld(t)
	spinach := factory.CreateSpinach(e, 300, 200)
	components.Physics.Get(spinach).SpeedY = 3000

	UpdatePhysics(e)

	_, y := feet(spinach)
	assert.Equal(t, 200+cfg.Physics.VerticalSpeedClamp, y)
}

func TestDisabledBodyDoesNotMove(t *testing.T) {
	e := newBareWorld(t)
	spinach := factory.CreateSpinach(e, 300, 200)
	physics := components.Physics.Get(spinach)
	physics.DisableBody()
	physics.SpeedY = 300

	UpdatePhysics(e)

	_, y := feet(spinach)
	assert.Equal(t, 200.0, y)
	assert.Zero(t, physics.SpeedY)
}
