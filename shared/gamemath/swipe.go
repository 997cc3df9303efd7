package gamemath

import "math"

// SwipeDirection is the lateral direction of a classified swipe.
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// Sign returns -1 for left, 1 for right and 0 for none.
func (d SwipeDirection) Sign() float64 {
	switch d {
	case SwipeLeft:
		return -1
	case SwipeRight:
		return 1
	default:
		return 0
	}
}

// ClassifySwipe decides whether a gesture from start to end is a lateral swipe.
// Only the x delta counts. Gestures shorter than minDistance report ok=false.
func ClassifySwipe(start, end Vec2, minDistance float64) (dir SwipeDirection, ok bool) {
	dx := end.X - start.X
	if math.Abs(dx) < minDistance {
		return SwipeNone, false
	}
	if dx < 0 {
		return SwipeLeft, true
	}
	return SwipeRight, true
}
