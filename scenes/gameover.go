package scenes

import (
	"sync"

	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems"
	"github.com/automoto/popeye/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the final score until the player restarts
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger systems.SceneChanger
	session      *Session
	finalScore   int
	panel        *ui.GameOverUI
	layer        *ebiten.Image
	layerOp      ebiten.DrawImageOptions
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc systems.SceneChanger, session *Session, finalScore int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, session: session, finalScore: finalScore}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
	gs.panel.UI.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.GameOver.BackgroundColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	// The panel is drawn off-screen, then dropped in by the title tween
	if gs.layer == nil {
		gs.layer = ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy())
	}
	gs.layer.Clear()
	gs.panel.UI.Draw(gs.layer)

	gameOver := systems.GetOrCreateGameOver(gs.ecs, gs.finalScore)
	gs.layerOp.GeoM.Reset()
	gs.layerOp.GeoM.Translate(0, float64(gameOver.TitleOffset))
	screen.DrawImage(gs.layer, &gs.layerOp)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, gs.newRun))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(gs.ecs, gs.finalScore)

	panel, err := ui.NewGameOverUI(gs.finalScore)
	if err != nil {
		panic("failed to build game over panel: " + err.Error())
	}
	gs.panel = panel
}

// newRun starts a fresh run on the same level and random stream.
func (gs *GameOverScene) newRun() interface{} {
	return NewPlayingScene(gs.sceneChanger, gs.session)
}
