package gamemath

import "math"

// ApplyDrag damps a velocity component the way a linear-drag rigid body does:
// v *= 1 / (1 + drag*dt).
func ApplyDrag(speed, drag, dt float64) float64 {
	if drag <= 0 {
		return speed
	}
	return speed / (1 + drag*dt)
}

// Integrate advances a velocity component by force/mass over dt.
func Integrate(speed, force, mass, dt float64) float64 {
	if mass <= 0 {
		return speed
	}
	return speed + force/mass*dt
}

// ClampSpeed clamps a value to [-max, max]. A non-positive max disables the clamp.
func ClampSpeed(speed, max float64) float64 {
	if max <= 0 {
		return speed
	}
	return math.Max(-max, math.Min(max, speed))
}
