package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates the game over system: it slides the panel in and
// starts a fresh run when the restart action is pressed.
func NewUpdateGameOver(sceneChanger SceneChanger, createPlayingScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e, 0)
		input := getOrCreateInput(e)

		if gameOver.Drop != nil {
			offset, done := gameOver.Drop.Update(float32(cfg.TickDuration()))
			gameOver.TitleOffset = offset
			if done {
				gameOver.Drop = nil
				gameOver.TitleOffset = 0
			}
		}

		if GetAction(input, cfg.ActionRestart).JustPressed && !gameOver.Restart {
			gameOver.Restart = true
			log.Info("restarting", "previous_score", gameOver.FinalScore)
			sceneChanger.ChangeScene(createPlayingScene())
		}
	}
}

// DrawGameOver fills the background behind the game over panel.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.GameOver.BackgroundColor)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating it
// with finalScore if needed.
func GetOrCreateGameOver(e *ecs.ECS, finalScore int) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			FinalScore:  finalScore,
			Drop:        gween.New(-cfg.GameOver.DropDistance, 0, cfg.GameOver.DropDuration, ease.OutBounce),
			TitleOffset: -cfg.GameOver.DropDistance,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
