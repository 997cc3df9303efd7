package systems

import (
	"testing"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/stretchr/testify/assert"
)

func TestStepBodyClearsForces(t *testing.T) {
	physics := &components.PhysicsData{Mass: 1}
	physics.AddForce(5, -5)

	stepBody(physics, 32, 1.0/60)

	assert.InDelta(t, 5*32.0/60, physics.SpeedX, 1e-9)
	assert.InDelta(t, -5*32.0/60, physics.SpeedY, 1e-9)
	assert.Zero(t, physics.ForceX)
	assert.Zero(t, physics.ForceY)

	// Nothing carries over into a tick with no new force
	stepBody(physics, 32, 1.0/60)
	assert.InDelta(t, 5*32.0/60, physics.SpeedX, 1e-9)
}

func TestStepBodyClampsSpeed(t *testing.T) {
	physics := &components.PhysicsData{
		Mass:            1,
		MaxLateralSpeed: 10,
		MaxForwardSpeed: 20,
	}
	physics.AddForce(1000, -1000)

	stepBody(physics, 32, 1.0/60)

	assert.InDelta(t, 10.0, physics.SpeedX, 1e-9)
	assert.InDelta(t, -20.0, physics.SpeedY, 1e-9)
}

func TestUpdatePhysicsRollsForwardToTerminalSpeed(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	physics := components.Physics.Get(p)

	for i := 0; i < 60*cfg.TPS; i++ {
		physics.AddForce(0, -cfg.Player.RollSpeed)
		UpdatePhysics(w.ecs)
	}

	// rollSpeed 5 against drag 0.5 settles near 10 units/s, under the cap
	assert.InDelta(t, -10*cfg.World.PixelsPerUnit, physics.SpeedY, 0.5*cfg.World.PixelsPerUnit)
	assert.Less(t, -physics.SpeedY, physics.MaxForwardSpeed+1e-9)
}
