package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/scheduler"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRun spawns the run singleton with its timer queue. reload is invoked
// when the level has to restart.
func CreateRun(ecs *ecs.ECS, startY, best float64, reload func()) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)
	components.Run.SetValue(run, components.RunData{
		StartY: startY,
		Best:   best,
		Reload: reload,
	})
	components.Timers.Set(run, scheduler.New(cfg.TPS))
	return run
}
