package scenes

import (
	"sync"

	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayingScene is one run of the game, from three lives to none.
type PlayingScene struct {
	ecs          *ecs.ECS
	sceneChanger systems.SceneChanger
	session      *Session
	once         sync.Once
}

func NewPlayingScene(sc systems.SceneChanger, session *Session) *PlayingScene {
	return &PlayingScene{sceneChanger: sc, session: session}
}

func (ps *PlayingScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	ps.checkGameOver()
}

// checkGameOver hands the final score to the game over scene once the last
// life is gone.
func (ps *PlayingScene) checkGameOver() {
	if state := systems.GetGameState(ps.ecs); state.Over {
		log.Info("scene change", "to", "game over", "score", state.Score)
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.session, state.Score))
	}
}

func (ps *PlayingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.C.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayingScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	for _, system := range systems.Gameplay {
		ecs.AddSystem(systems.WithPauseCheck(system))
	}

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	if err := systems.PopulateWorld(ecs, ps.session.Level, ps.session.Rng); err != nil {
		panic("failed to build world: " + err.Error())
	}

	ps.ecs = ecs
	log.Info("scene change", "to", "playing", "level", ps.session.Level.Name)
}
