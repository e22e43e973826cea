package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func loadTestLevel(t *testing.T) *assets.Level {
	t.Helper()
	level, err := assets.LoadLevel("level1")
	require.NoError(t, err)
	return level
}

// newTestWorld builds a complete run, spawners included.
func newTestWorld(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, PopulateWorld(e, loadTestLevel(t), rand.New(rand.NewSource(seed))))
	return e
}

// newBareWorld builds the level and score keeping with no characters and no
// spawners, so tests place exactly the entities they need.
func newBareWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateGameState(e)
	factory.CreateHUD(e)
	factory.CreateLevel(e, loadTestLevel(t))
	getOrCreateInput(e)
	return e
}

// tick runs n full gameplay ticks without polling real devices.
func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		for _, system := range Gameplay {
			system(e)
		}
	}
}

func advanceClock(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdateClock(e)
	}
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func feet(entry *donburi.Entry) (float64, float64) {
	return components.Object.Get(entry).Feet()
}

func setFeet(entry *donburi.Entry, x, y float64) {
	components.Object.Get(entry).SetFeet(x, y)
}
