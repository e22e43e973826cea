package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's collision box. X/Y is the top-left corner;
// gameplay positions use the bottom-centre (the feet), see Feet and SetFeet.
type ObjectData struct {
	*resolv.Object
}

// Feet returns the bottom-centre of the box.
func (o *ObjectData) Feet() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H
}

// SetFeet moves the box so its bottom-centre sits at (x, y) and refreshes
// its cells in the space.
func (o *ObjectData) SetFeet(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H
	o.Update()
}

// CenterY returns the vertical middle of the box.
func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space every collision box lives in.
var Space = donburi.NewComponentType[resolv.Space]()
