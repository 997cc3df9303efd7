package systems

import (
	"time"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// TuningSource reports tuning file changes without blocking.
type TuningSource interface {
	Poll() (changed bool, err error)
}

// NewUpdateTuning creates a system that reloads path whenever src reports a
// change and pushes the new values into the live player. A bad file is
// logged and the previous values stay in effect.
func NewUpdateTuning(src TuningSource, path string) ecs.System {
	return func(e *ecs.ECS) {
		changed, err := src.Poll()
		if err != nil {
			logging.L().Warn("tuning watcher error", zap.Error(err))
		}
		if !changed {
			return
		}

		if _, err := cfg.LoadFile(path); err != nil {
			logging.L().Warn("tuning reload rejected", zap.String("path", path), zap.Error(err))
			return
		}
		ApplyTuning(e)
		logging.L().Info("tuning reloaded", zap.String("path", path))
	}
}

// ApplyTuning copies the live player and obstacle tuning onto existing entities.
func ApplyTuning(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.DodgeSpeed = cfg.Player.DodgeSpeed
		player.RollSpeed = cfg.Player.RollSpeed
		player.SwipeMoveDistance = cfg.Player.SwipeMoveDistance
		player.MinSwipeDistance = cfg.Player.MinSwipeDistance

		ppu := cfg.World.PixelsPerUnit
		physics := components.Physics.Get(entry)
		physics.Mass = cfg.Player.Mass
		physics.Drag = cfg.Player.Drag
		physics.MaxLateralSpeed = cfg.Player.MaxLateralSpeed * ppu
		physics.MaxForwardSpeed = cfg.Player.MaxForwardSpeed * ppu
	})

	wait := time.Duration(cfg.Obstacle.WaitTime * float64(time.Second))
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if obstacle := components.Obstacle.Get(entry); obstacle.State == components.ObstacleAlive {
			obstacle.WaitTime = wait
		}
	})
}
