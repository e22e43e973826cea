package systems

import (
	"testing"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestEnemyChasesHorizontally(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 410)
	brutus := factory.CreateBrutus(e, 300, 410)
	anim := components.Animation.Get(brutus)

	UpdateEnemies(e)

	x, _ := feet(brutus)
	assert.InDelta(t, 300+cfg.Enemy.Speed*cfg.TickDuration(), x, 1e-9)
	assert.True(t, anim.FlipX, "mirrored while heading right")
	assert.True(t, components.Physics.Get(brutus).Body)

	setFeet(player, 100, 410)
	UpdateEnemies(e)

	x2, _ := feet(brutus)
	assert.Less(t, x2, x)
	assert.False(t, anim.FlipX)
}

func TestEnemyClimbsTowardPlayer(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 280)
	brutus := factory.CreateBrutus(e, 185, 410)
	physics := components.Physics.Get(brutus)
	anim := components.Animation.Get(brutus)
	anim.Stop()

	UpdateEnemies(e)

	x, y := feet(brutus)
	assert.Equal(t, 185.0, x)
	assert.Equal(t, 410-cfg.Enemy.ClimbSpeed, y)
	assert.False(t, physics.Body)
	assert.True(t, anim.Playing(cfg.Sheets[cfg.BrutusWalk].Clip))

	// Close enough vertically: back to walking with gravity
	setFeet(player, 400, 400)
	UpdateEnemies(e)

	assert.True(t, physics.Body)
	x, _ = feet(brutus)
	assert.Greater(t, x, 185.0)
}

func TestEnemyClimbsDownToPlayer(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	brutus := factory.CreateBrutus(e, 185, 280)

	UpdateEnemies(e)

	_, y := feet(brutus)
	assert.Equal(t, 280+cfg.Enemy.ClimbSpeed, y)
}

func TestDeadEnemyDoesNothing(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	brutus := factory.CreateBrutus(e, 300, 410)
	components.Enemy.Get(brutus).IsDead = true

	UpdateEnemies(e)

	x, y := feet(brutus)
	assert.Equal(t, 300.0, x)
	assert.Equal(t, 410.0, y)
}
