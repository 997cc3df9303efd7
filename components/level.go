package components

import (
	"math/rand/v2"

	"github.com/automoto/rollaway/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level

	// Next segment to spawn and the world Y of its bottom edge.
	NextSegment  int
	NextSegmentY float64

	// Rand drives pattern picks and obstacle colors for this run.
	Rand *rand.Rand
}

var Level = donburi.NewComponentType[LevelData]()
