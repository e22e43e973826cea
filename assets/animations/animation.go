package animations

// Animation is a looping tick-driven frame counter over [First, Last].
// It only advances while playing.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	playing      bool
	Looped       bool
}

func (a *Animation) Update() {
	if !a.playing {
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to frame i, clamped to the clip.
func (a *Animation) SetFrame(i int) {
	if i < a.First {
		i = a.First
	}
	if i > a.Last {
		i = a.Last
	}
	a.frame = i
	a.frameCounter = a.SpeedInTps
}

// Play restarts the clip from its first frame.
func (a *Animation) Play() {
	a.Restart()
	a.playing = true
}

// Stop freezes the clip on its current frame.
func (a *Animation) Stop() {
	a.playing = false
}

func (a *Animation) Playing() bool {
	return a.playing
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}
