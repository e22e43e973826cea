package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is a falling body. While Body is false the entity ignores
// gravity and platforms entirely.
type PhysicsData struct {
	Body     bool
	SpeedY   float64 // units per second, positive is down
	Gravity  float64 // units per second squared
	OnGround *resolv.Object
}

// EnableBody turns the body back on. A freshly enabled body starts at rest.
func (p *PhysicsData) EnableBody() {
	if p.Body {
		return
	}
	p.Body = true
	p.SpeedY = 0
	p.OnGround = nil
}

// DisableBody removes gravity and floor contact until EnableBody is called.
func (p *PhysicsData) DisableBody() {
	p.Body = false
	p.SpeedY = 0
	p.OnGround = nil
}

var Physics = donburi.NewComponentType[PhysicsData]()
