package systems

import (
	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawLevel renders the ladders behind the platforms.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)

	tags.Ladder.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Level.LadderColor, false)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.Level.PlatformColor, false)
	})
}

// DrawAnimated renders every entity with an Animation component at its
// current frame, pinned to its collision box by the sheet's anchor.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Sheet == cfg.SheetNone {
			return
		}
		if e.HasComponent(components.Enemy) && components.Enemy.Get(e).IsDead {
			return
		}

		def := cfg.Sheets[anim.Sheet]
		img := assets.GetFrame(anim.Sheet, anim.Frame())
		o := components.Object.Get(e)
		fw, fh := float64(def.FrameWidth), float64(def.FrameHeight)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		var ax, ay float64
		switch def.Anchor {
		case cfg.AnchorCenter:
			drawOp.GeoM.Translate(-fw/2, -fh/2)
			ax, ay = o.X+o.W/2, o.CenterY()
		default:
			// Characters: feet line up with the bottom of the collision box
			drawOp.GeoM.Translate(-fw/2, -fh)
			ax, ay = o.Feet()
		}

		if anim.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(ax+camX, ay+camY)

		if e.HasComponent(components.Tint) {
			tint := components.Tint.Get(e)
			drawOp.ColorScale.Scale(tint.R, tint.G, tint.B, 1)
		}

		screen.DrawImage(img, drawOp)
	})
}
