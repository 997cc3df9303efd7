package systems

import (
	"github.com/automoto/rollaway/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers advances the run's timer queue by one tick. It runs after the
// gameplay systems, so a timer scheduled this tick already counts it.
func UpdateTimers(ecs *ecs.ECS) {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	components.Timers.Get(runEntry).Tick()
}
