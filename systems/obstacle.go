package systems

import (
	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ReactToCollision handles an obstacle touching another entity. Only the
// player matters: it is destroyed and a single level reset is scheduled after
// the obstacle's wait time. Anything else is ignored. It reports whether a
// reset was scheduled.
func ReactToCollision(ecs *ecs.ECS, obstacleEntry, other *donburi.Entry) bool {
	if obstacleEntry == nil || other == nil || !obstacleEntry.Valid() || !other.Valid() {
		return false
	}
	if !other.HasComponent(tags.Player) || !obstacleEntry.HasComponent(components.Obstacle) {
		return false
	}

	obstacle := components.Obstacle.Get(obstacleEntry)
	if obstacle.State != components.ObstacleAlive {
		return false
	}

	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		logging.L().Warn("obstacle hit without a run; player left in place")
		return false
	}
	run := components.Run.Get(runEntry)
	timers := components.Timers.Get(runEntry)

	destroyPlayer(ecs, other)
	TriggerScreenShake(ecs, config.Camera.CrashShakeIntensity, config.Camera.CrashShakeDuration)
	run.PlayerDestroyed = true
	obstacle.State = components.ObstacleResetPending

	run.ResetTimer = timers.After(obstacle.WaitTime, func() {
		resetLevel(ecs)
	})

	logging.L().Info("player destroyed",
		zap.Float64("distance", run.Distance),
		zap.Duration("wait", obstacle.WaitTime),
		zap.Uint64("timer", uint64(run.ResetTimer)),
	)
	return true
}

// destroyPlayer removes the player from the collision space and the world.
func destroyPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(playerEntry); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(playerEntry.Entity())
}

// resetLevel records the finished run and asks the owning scene to reload.
func resetLevel(ecs *ecs.ECS) {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	run.Resets++

	RecordRun(run.Distance)

	logging.L().Info("level reset",
		zap.Float64("distance", run.Distance),
		zap.Float64("best", run.Best),
	)

	if run.Reload != nil {
		run.Reload()
	}
}
