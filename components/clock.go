package components

import (
	"github.com/automoto/popeye/clock"
	"github.com/yohamta/donburi"
)

// Clock is the singleton timer queue of a world.
var Clock = donburi.NewComponentType[clock.Scheduler]()
