package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData is a minimal rigid body. Forces are accumulated during a tick
// and cleared once the physics system has integrated them.
type PhysicsData struct {
	SpeedX float64 // lateral, pixels per second
	SpeedY float64 // forward is negative, pixels per second
	ForceX float64
	ForceY float64

	Mass            float64
	Drag            float64
	MaxLateralSpeed float64
	MaxForwardSpeed float64
}

// AddForce accumulates a force for the current tick, in world units.
func (p *PhysicsData) AddForce(x, y float64) {
	p.ForceX += x
	p.ForceY += y
}

var Physics = donburi.NewComponentType[PhysicsData]()
