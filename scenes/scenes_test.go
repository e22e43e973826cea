package scenes

import (
	"math/rand"
	"testing"

	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems"
	"github.com/automoto/popeye/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func newSession(t *testing.T) *Session {
	t.Helper()
	level, err := assets.LoadLevel("level1")
	require.NoError(t, err)
	return &Session{Level: level, Rng: rand.New(rand.NewSource(1))}
}

func TestLastLifeHandsScoreToGameOver(t *testing.T) {
	changer := &recordingChanger{}
	session := newSession(t)
	ps := NewPlayingScene(changer, session)
	ps.once.Do(ps.configure)

	state := systems.GetGameState(ps.ecs)
	state.Score = 40

	player, ok := tags.Player.First(ps.ecs.World)
	require.True(t, ok)
	brutus, ok := tags.Enemy.First(ps.ecs.World)
	require.True(t, ok)
	bx, by := components.Object.Get(brutus).Feet()

	for i := 0; i < cfg.Player.StartingLives; i++ {
		ps.checkGameOver()
		assert.Empty(t, changer.scenes)

		components.Object.Get(player).SetFeet(bx, by)
		systems.UpdateCollisions(ps.ecs)
		// Back at the start, apart from Brutus
		systems.UpdateCollisions(ps.ecs)
	}
	require.True(t, state.Over)

	ps.checkGameOver()
	require.Len(t, changer.scenes, 1)
	gs, ok := changer.scenes[0].(*GameOverScene)
	require.True(t, ok)
	assert.Equal(t, 40, gs.finalScore)
	assert.Same(t, session, gs.session)

	next, ok := gs.newRun().(*PlayingScene)
	require.True(t, ok)
	next.once.Do(next.configure)

	fresh := systems.GetGameState(next.ecs)
	assert.Zero(t, fresh.Score)
	assert.Equal(t, cfg.Player.StartingLives, fresh.Lives)
	assert.False(t, fresh.IsPoweredUp)
	assert.False(t, fresh.Over)
	assert.Same(t, session, next.session)

	// The finished run keeps its own state
	assert.Equal(t, 40, state.Score)
}
