package systems

import (
	"fmt"

	"github.com/automoto/popeye/clock"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/yohamta/donburi/ecs"
)

// GetGameState returns the world's score keeping.
func GetGameState(ecs *ecs.ECS) *components.GameStateData {
	return components.GameState.Get(components.GameState.MustFirst(ecs.World))
}

// GetClock returns the world's timer queue.
func GetClock(ecs *ecs.ECS) *clock.Scheduler {
	return components.Clock.Get(components.Clock.MustFirst(ecs.World))
}

func getContacts(ecs *ecs.ECS) *components.ContactsData {
	return components.Contacts.Get(components.Contacts.MustFirst(ecs.World))
}

// UpdateClock moves the world's time forward by one tick, firing any due
// timers.
func UpdateClock(ecs *ecs.ECS) {
	GetClock(ecs).Advance(cfg.TickDuration())
}

// ScoreText and LivesText are the HUD label contents.
func ScoreText(state *components.GameStateData) string {
	return fmt.Sprintf("SCORE: %d", state.Score)
}

func LivesText(state *components.GameStateData) string {
	return fmt.Sprintf("LIVES: %d", state.Lives)
}

// FinalScoreText is shown on the game over screen.
func FinalScoreText(score int) string {
	return fmt.Sprintf("FINAL SCORE: %d", score)
}
