package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the forces accumulated this tick into velocity.
// Forces are in world units and scaled to pixels here; they are cleared
// afterwards so nothing carries into the next tick.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := 1.0 / cfg.TPS
	ppu := cfg.World.PixelsPerUnit

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		stepBody(physics, ppu, dt)
	})
}

func stepBody(physics *components.PhysicsData, ppu, dt float64) {
	physics.SpeedX = gamemath.Integrate(physics.SpeedX, physics.ForceX*ppu, physics.Mass, dt)
	physics.SpeedY = gamemath.Integrate(physics.SpeedY, physics.ForceY*ppu, physics.Mass, dt)

	physics.SpeedX = gamemath.ApplyDrag(physics.SpeedX, physics.Drag, dt)
	physics.SpeedY = gamemath.ApplyDrag(physics.SpeedY, physics.Drag, dt)

	physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxLateralSpeed)
	physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, physics.MaxForwardSpeed)

	physics.ForceX = 0
	physics.ForceY = 0
}
