package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSpawner keeps the track populated ahead of the player, drops pieces
// that fell behind, and rebases the world once the player climbs too high.
func UpdateSpawner(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil || level.CurrentLevel.SegmentHeight <= 0 {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerY := components.Object.Get(playerEntry).Y

	FillTrack(ecs, space, level, playerY-cfg.Track.SpawnAhead)
	despawnBehind(ecs, space, playerY+cfg.Track.DespawnBehind)

	if playerY < cfg.World.RebaseY {
		Rebase(ecs, cfg.World.RebaseShift)
	}
}

// FillTrack spawns segments until the track reaches up to topY.
func FillTrack(ecs *ecs.ECS, space *resolv.Space, level *components.LevelData, topY float64) {
	for level.NextSegmentY > topY {
		spawnSegment(ecs, space, level)
	}
}

// spawnSegment adds the walls of the next segment and, past the safe
// segments, one weighted obstacle pattern.
func spawnSegment(ecs *ecs.ECS, space *resolv.Space, level *components.LevelData) {
	lv := level.CurrentLevel
	segment := level.NextSegment
	top := level.NextSegmentY - float64(lv.SegmentHeight)

	for _, w := range lv.Walls {
		factory.CreateWall(ecs, space, w.X, top+w.Y, w.Width, w.Height, segment)
	}

	if segment >= cfg.Track.SafeSegments {
		if total := lv.TotalWeight(); total > 0 {
			if pattern := lv.PickPattern(level.Rand.IntN(total)); pattern != nil {
				for _, o := range pattern.Obstacles {
					factory.CreateObstacle(ecs, space, level.Rand, o.X, top+o.Y, o.Width, o.Height, segment)
				}
			}
		}
	}

	level.NextSegment++
	level.NextSegmentY = top
}

// despawnBehind removes walls and obstacles lying entirely below limitY.
func despawnBehind(ecs *ecs.ECS, space *resolv.Space, limitY float64) {
	var stale []*donburi.Entry
	collect := func(e *donburi.Entry) {
		if obj := components.Object.Get(e); obj.Y > limitY {
			stale = append(stale, e)
		}
	}
	tags.Wall.Each(ecs.World, collect)
	tags.Obstacle.Each(ecs.World, collect)

	for _, e := range stale {
		space.Remove(components.Object.Get(e).Object)
		ecs.World.Remove(e.Entity())
	}
}

// Rebase shifts every collision object, the camera and the spawn cursor down
// by shift pixels. Distance is unaffected because the run records the shift.
func Rebase(ecs *ecs.ECS, shift float64) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Y += shift
		obj.Update()
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(levelEntry).NextSegmentY += shift
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).Position.Y += shift
	}
	if run := GetRun(ecs); run != nil {
		run.OriginShift += shift
	}

	logging.L().Debug("world rebased", zap.Float64("shift", shift))
}
