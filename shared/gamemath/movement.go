package gamemath

// ViewportX converts a pixel x coordinate into 0..1 viewport space.
// A zero-width screen maps everything to the centre.
func ViewportX(screenX, screenWidth float64) float64 {
	if screenWidth <= 0 {
		return 0.5
	}
	return screenX / screenWidth
}

// HorizontalForce maps the current input state to a lateral force.
//
// While the pointer is held, the left half of the viewport (x < 0.5) yields
// -dodgeSpeed and everything else +dodgeSpeed. Otherwise the axis value is
// scaled linearly with no clamping. pointerViewportX is ignored when the
// pointer is not active.
func HorizontalForce(axis float64, pointerActive bool, pointerViewportX, dodgeSpeed float64) float64 {
	if !pointerActive {
		return axis * dodgeSpeed
	}

	xMove := 1.0
	if pointerViewportX < 0.5 {
		xMove = -1
	}
	return xMove * dodgeSpeed
}

// StepAxis moves a digital axis toward target the way a virtual joystick
// does: toward ±1 at sensitivity units per second, back to 0 at gravity.
// Reversing direction snaps through zero first.
func StepAxis(current, target, sensitivity, gravity, dt float64) float64 {
	if target == 0 {
		if current > 0 {
			return max(0, current-gravity*dt)
		}
		return min(0, current+gravity*dt)
	}
	if (target > 0 && current < 0) || (target < 0 && current > 0) {
		current = 0
	}
	if target > current {
		return min(target, current+sensitivity*dt)
	}
	return max(target, current-sensitivity*dt)
}
