package components

import (
	"github.com/automoto/popeye/assets/animations"
	"github.com/automoto/popeye/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the sprite an entity shows: which sheet, the clip running
// over it and whether it is mirrored. Images are resolved at draw time.
type AnimationData struct {
	Sheet            config.SheetID
	CurrentAnimation *animations.Animation
	FlipX            bool
}

// SetSheet switches to another sheet. The new clip starts stopped on its
// first frame.
func (a *AnimationData) SetSheet(sheet config.SheetID) {
	def := config.Sheets[sheet]
	a.Sheet = sheet
	a.CurrentAnimation = animations.NewAnimation(def.First, def.Last, 1, def.TicksPerFrame())
}

// Play restarts the sheet's clip.
func (a *AnimationData) Play() {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Play()
	}
}

// Stop freezes the clip on its current frame.
func (a *AnimationData) Stop() {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Stop()
	}
}

// Playing reports whether the named clip is the one currently running.
// A stopped clip is not playing.
func (a *AnimationData) Playing(clip string) bool {
	if a.CurrentAnimation == nil || !a.CurrentAnimation.Playing() {
		return false
	}
	return config.Sheets[a.Sheet].Clip == clip
}

// Frame returns the sheet index to draw.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

// SetFrame jumps the clip to frame i without changing whether it plays.
func (a *AnimationData) SetFrame(i int) {
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.SetFrame(i)
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
