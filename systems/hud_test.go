package systems

import (
	"testing"

	"github.com/automoto/popeye/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHUDText(t *testing.T) {
	state := &components.GameStateData{Score: 130, Lives: 2}

	assert.Equal(t, "SCORE: 130", ScoreText(state))
	assert.Equal(t, "LIVES: 2", LivesText(state))
	assert.Equal(t, "FINAL SCORE: 130", FinalScoreText(130))
}

func TestScoreChangePulsesHUD(t *testing.T) {
	e := newBareWorld(t)
	hudEntry, ok := components.HUD.First(e.World)
	require.True(t, ok)
	hud := components.HUD.Get(hudEntry)

	UpdateHUD(e)
	assert.Nil(t, hud.Pulse)
	assert.Equal(t, float32(1), hud.Scale)

	GetGameState(e).Score = 10
	UpdateHUD(e)
	assert.NotNil(t, hud.Pulse)
	assert.Greater(t, hud.Scale, float32(1))
	assert.Equal(t, 10, hud.LastScore)

	for i := 0; i < 30; i++ {
		UpdateHUD(e)
	}
	assert.Nil(t, hud.Pulse)
	assert.Equal(t, float32(1), hud.Scale)
}
