package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/assets"
	"github.com/automoto/rollaway/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the default track and places its first segment's bottom
// edge at bottomY.
func CreateLevel(ecs *ecs.ECS, bottomY float64) *donburi.Entry {
	level := assets.NewLevelLoader().MustLoadLevel(assets.DefaultLevel)
	return CreateLevelFrom(ecs, &level, bottomY, uint64(time.Now().UnixNano()))
}

// CreateLevelFrom is CreateLevel with an explicit level and seed.
func CreateLevelFrom(ecs *ecs.ECS, level *assets.Level, bottomY float64, seed uint64) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		NextSegment:  0,
		NextSegmentY: bottomY,
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	})
	return entry
}
