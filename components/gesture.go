package components

import (
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GesturePhase is the swipe tracker's state.
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureTracking
)

// GestureData tracks a single touch from begin to end. Only one touch is
// followed at a time; events for any other touch id are ignored.
type GestureData struct {
	Phase   GesturePhase
	TouchID int
	Start   gamemath.Vec2
}

// Begin starts tracking touchID at pos. It is ignored while another touch is
// being tracked.
func (g *GestureData) Begin(touchID int, pos gamemath.Vec2) bool {
	if g.Phase == GestureTracking {
		return false
	}
	g.Phase = GestureTracking
	g.TouchID = touchID
	g.Start = pos
	return true
}

// End finishes the tracked gesture at pos and classifies it. The tracker is
// back to idle afterwards whether or not the gesture was a swipe.
func (g *GestureData) End(touchID int, pos gamemath.Vec2, minSwipeDistance float64) (gamemath.SwipeDirection, bool) {
	if g.Phase != GestureTracking || touchID != g.TouchID {
		return gamemath.SwipeNone, false
	}
	g.Phase = GestureIdle
	return gamemath.ClassifySwipe(g.Start, pos, minSwipeDistance)
}

// Cancel drops the tracked gesture without classifying it.
func (g *GestureData) Cancel() {
	g.Phase = GestureIdle
}

var Gesture = donburi.NewComponentType[GestureData]()
