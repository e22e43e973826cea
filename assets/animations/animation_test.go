package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoppedAnimationDoesNotAdvance(t *testing.T) {
	a := NewAnimation(0, 4, 1, 0)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Playing())
}

func TestPlayAdvancesAndLoops(t *testing.T) {
	// Speed 0 means a new frame every tick.
	a := NewAnimation(0, 2, 1, 0)
	a.Play()

	a.Update()
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.Equal(t, 2, a.Frame())
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestSpeedInTpsHoldsFrames(t *testing.T) {
	a := NewAnimation(0, 4, 1, 4)
	a.Play()

	for i := 0; i < 4; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())
	a.Update()
	assert.Equal(t, 1, a.Frame())
}

func TestStopFreezesOnCurrentFrame(t *testing.T) {
	a := NewAnimation(0, 4, 1, 0)
	a.Play()
	a.Update()
	a.Update()
	a.Stop()
	a.Update()

	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Playing())

	a.Play()
	assert.Equal(t, 0, a.Frame(), "play restarts the clip")
}

func TestSetFrameClamps(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0)
	a.SetFrame(5)
	assert.Equal(t, 1, a.Frame())
	a.SetFrame(-2)
	assert.Equal(t, 0, a.Frame())
}
