package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRun tracks how far the player has rolled. Distance only grows, and
// stops once the player is gone.
func UpdateRun(ecs *ecs.ECS) {
	run := GetRun(ecs)
	if run == nil || run.PlayerDestroyed {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	centerY := obj.Y + obj.H/2

	// Rebasing moves the player down by the same amount it adds to OriginShift
	d := (run.StartY + run.OriginShift - centerY) / cfg.World.PixelsPerUnit
	if d > run.Distance {
		run.Distance = d
	}
}

// GetRun returns the run singleton, or nil outside a runner scene.
func GetRun(ecs *ecs.ECS) *components.RunData {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Run.Get(runEntry)
}
