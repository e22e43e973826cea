package components

import "github.com/yohamta/donburi"

// PatrolData moves an entity back and forth between MinX and MaxX.
type PatrolData struct {
	Dir   float64 // +1 right, -1 left
	Speed float64
	MinX  float64
	MaxX  float64
}

var Patrol = donburi.NewComponentType[PatrolData]()

// BobbleData drives the sway of a floating pickup. T only grows; only its
// phase matters.
type BobbleData struct {
	T float64
}

var Bobble = donburi.NewComponentType[BobbleData]()
