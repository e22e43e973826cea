package systems

import (
	"testing"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/automoto/popeye/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func TestHeartPickupScores(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	heart := factory.CreateHeart(e, 400, 410)

	UpdateCollisions(e)

	assert.Equal(t, cfg.Pickup.HeartScore, GetGameState(e).Score)
	assert.False(t, heart.Valid())
	assert.Zero(t, count(e, tags.Heart))
}

func TestPowerUpDefeatsEnemy(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 410)
	brutus := factory.CreateBrutus(e, 100, 410)
	state := GetGameState(e)

	for i := 0; i < 3; i++ {
		factory.CreateHeart(e, 400, 410)
		UpdateCollisions(e)
	}
	require.Equal(t, 30, state.Score)

	factory.CreateSpinach(e, 400, 410)
	UpdateCollisions(e)
	require.True(t, state.IsPoweredUp)
	assert.Zero(t, count(e, tags.Spinach))

	tint := components.Tint.Get(player)
	assert.Equal(t, components.TintData{R: 1, G: 1, B: 0}, *tint)

	setFeet(brutus, 400, 410)
	UpdateCollisions(e)

	enemy := components.Enemy.Get(brutus)
	assert.Equal(t, 130, state.Score)
	assert.Equal(t, 3, state.Lives)
	assert.True(t, enemy.IsDead)
	x, y := feet(brutus)
	assert.Equal(t, cfg.Enemy.ParkX, x)
	assert.Equal(t, cfg.Enemy.ParkY, y)

	// Parked enemies neither chase nor collide
	UpdateEnemies(e)
	x, _ = feet(brutus)
	assert.Equal(t, cfg.Enemy.ParkX, x)

	// Back home once the respawn delay has passed
	advanceClock(e, 299)
	assert.True(t, enemy.IsDead)

	advanceClock(e, 1)
	assert.False(t, enemy.IsDead)
	assert.True(t, components.Physics.Get(brutus).Body)
	x, y = feet(brutus)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 410.0, y)
	assert.Equal(t, 130, state.Score)
}

func TestEnemyContactCostsLife(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 410)
	factory.CreateBrutus(e, 100, 410)
	state := GetGameState(e)

	for i := 1; i <= cfg.Player.StartingLives; i++ {
		setFeet(player, 100, 410)
		UpdateCollisions(e)

		assert.Equal(t, cfg.Player.StartingLives-i, state.Lives)
		x, y := feet(player)
		assert.Equal(t, 400.0, x)
		assert.Equal(t, 410.0, y)

		// Separate so the next touch is a new contact
		UpdateCollisions(e)
	}

	assert.Zero(t, state.Lives)
	assert.True(t, state.Over)
}

func TestContactFiresOnce(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	// Standing on the respawn point, so the hit leaves the two touching
	factory.CreateBrutus(e, 400, 410)
	state := GetGameState(e)

	for i := 0; i < 5; i++ {
		UpdateCollisions(e)
	}

	assert.Equal(t, cfg.Player.StartingLives-1, state.Lives)
	assert.False(t, state.Over)
}

func TestDeadEnemyIsHarmless(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	brutus := factory.CreateBrutus(e, 400, 410)
	components.Enemy.Get(brutus).IsDead = true

	UpdateCollisions(e)

	assert.Equal(t, cfg.Player.StartingLives, GetGameState(e).Lives)
}

func TestPowerUpExpires(t *testing.T) {
	e := newBareWorld(t)
	player := factory.CreatePlayer(e, 400, 410)
	state := GetGameState(e)

	factory.CreateSpinach(e, 400, 410)
	UpdateCollisions(e)
	require.True(t, state.IsPoweredUp)

	advanceClock(e, 359)
	assert.True(t, state.IsPoweredUp)

	advanceClock(e, 1)
	assert.False(t, state.IsPoweredUp)
	assert.Equal(t, components.TintData{R: 1, G: 1, B: 1}, *components.Tint.Get(player))
}

func TestLatestPowerUpDecidesExpiry(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	state := GetGameState(e)

	factory.CreateSpinach(e, 400, 410)
	UpdateCollisions(e)

	advanceClock(e, 180)
	factory.CreateSpinach(e, 400, 410)
	UpdateCollisions(e)
	assert.Equal(t, 2, state.PowerGeneration)

	// The first pickup's timer fires at 6s and must not end the power-up
	advanceClock(e, 240)
	assert.True(t, state.IsPoweredUp)

	advanceClock(e, 119)
	assert.True(t, state.IsPoweredUp)

	advanceClock(e, 1)
	assert.False(t, state.IsPoweredUp)
}

func TestNothingHappensAfterGameOver(t *testing.T) {
	e := newBareWorld(t)
	factory.CreatePlayer(e, 400, 410)
	state := GetGameState(e)
	state.Over = true

	factory.CreateHeart(e, 400, 410)
	UpdateCollisions(e)

	assert.Zero(t, state.Score)
	assert.Equal(t, 1, count(e, tags.Heart))
}

func TestLifeLossShakesScreen(t *testing.T) {
	e := newBareWorld(t)
	factory.CreateCamera(e)
	player := factory.CreatePlayer(e, 400, 410)
	factory.CreateBrutus(e, 100, 410)

	setFeet(player, 100, 410)
	UpdateCollisions(e)

	cameraEntry, _ := components.Camera.First(e.World)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))

	UpdateCamera(e)
	x, y := cameraOffset(e)
	assert.NotZero(t, x+y)

	for i := 0; i < cfg.ScreenShake.LifeLostDuration; i++ {
		UpdateCamera(e)
	}
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))
	x, y = cameraOffset(e)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
