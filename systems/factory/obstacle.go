package factory

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an obstacle with a random color from the configured
// HSV range.
func CreateObstacle(ecs *ecs.ECS, space *resolv.Space, rng *rand.Rand, x, y, w, h float64, segment int) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Color: gamemath.RandomHSV(rng, gamemath.HSVRange{
			HueMin: cfg.Obstacle.HueMin, HueMax: cfg.Obstacle.HueMax,
			SatMin: cfg.Obstacle.SatMin, SatMax: cfg.Obstacle.SatMax,
			ValMin: cfg.Obstacle.ValMin, ValMax: cfg.Obstacle.ValMax,
		}),
		WaitTime: time.Duration(cfg.Obstacle.WaitTime * float64(time.Second)),
		State:    components.ObstacleAlive,
		Segment:  segment,
	})

	if space != nil {
		space.Add(obj)
	}
	return obstacle
}
