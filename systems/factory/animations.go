package factory

import (
	"fmt"

	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
)

// GenerateAnimations creates an AnimationData showing the given sheet,
// stopped on its first frame.
func GenerateAnimations(sheet cfg.SheetID) *components.AnimationData {
	if _, ok := cfg.Sheets[sheet]; !ok {
		panic(fmt.Sprintf("No animation definitions found for sheet: %s", sheet))
	}

	animData := &components.AnimationData{}
	animData.SetSheet(sheet)
	return animData
}
