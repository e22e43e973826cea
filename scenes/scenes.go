package scenes

import (
	"math/rand"

	"github.com/automoto/popeye/assets"
)

// Session is what every run shares: the loaded level and the random source
// for spinach placement.
type Session struct {
	Level *assets.Level
	Rng   *rand.Rand
}
