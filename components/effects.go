package components

import "github.com/yohamta/donburi"

// TintData is a colour multiplier applied when the sprite is drawn
// (1,1,1 = untouched, 1,1,0 = yellow).
type TintData struct {
	R, G, B float32
}

// Reset restores the untinted colour.
func (t *TintData) Reset() {
	t.R, t.G, t.B = 1, 1, 1
}

var Tint = donburi.NewComponentType[TintData]()
