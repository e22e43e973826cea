package systems

import (
	"testing"

	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestPauseFreezesGameplay(t *testing.T) {
	e := newBareWorld(t)
	olive := factory.CreateOlive(e, 400, 140)
	patrol := WithPauseCheck(UpdatePatrol)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	patrol(e)
	x, _ := feet(olive)
	assert.Equal(t, 400.0, x)

	// A held key does not toggle again
	input := getOrCreateInput(e)
	input.Previous = input.Current
	UpdatePause(e)
	assert.True(t, GetOrCreatePause(e).IsPaused)

	input.Previous = [cfg.ActionCount]bool{}
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)

	patrol(e)
	x, _ = feet(olive)
	assert.Greater(t, x, 400.0)
}
