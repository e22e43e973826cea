package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based drawing
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// UpdateHUD starts a short grow-and-settle pulse on the score label whenever
// the score changes.
func UpdateHUD(ecs *ecs.ECS) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	state := GetGameState(ecs)

	if state.Score != hud.LastScore {
		hud.LastScore = state.Score
		hud.Pulse = gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseDuration, ease.OutQuad)
	}

	if hud.Pulse != nil {
		scale, done := hud.Pulse.Update(float32(cfg.TickDuration()))
		hud.Scale = scale
		if done {
			hud.Pulse = nil
			hud.Scale = 1
		}
	}
}

// DrawHUD renders the score and lives labels in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state := GetGameState(ecs)
	scale := float32(1)
	if hudEntry, ok := components.HUD.First(ecs.World); ok {
		scale = components.HUD.Get(hudEntry).Scale
	}

	face := fonts.HUD.Get()
	ascent := float64(face.Metrics().Ascent.Ceil())

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(0, ascent)
	hudDrawOp.GeoM.Scale(float64(scale), float64(scale))
	hudDrawOp.GeoM.Translate(cfg.HUD.ScoreX, cfg.HUD.ScoreY)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.ScoreColor)
	text.DrawWithOptions(screen, ScoreText(state), face, hudDrawOp)

	hudDrawOp.GeoM.Reset()
	hudDrawOp.ColorScale.Reset()
	hudDrawOp.GeoM.Translate(cfg.HUD.LivesX, cfg.HUD.LivesY+ascent)
	hudDrawOp.ColorScale.ScaleWithColor(cfg.HUD.LivesColor)
	text.DrawWithOptions(screen, LivesText(state), face, hudDrawOp)
}
