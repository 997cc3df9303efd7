package components

import (
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// TouchPhase mirrors the lifecycle of a single touch.
type TouchPhase int

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchEnded
)

// TouchEvent is one touch transition observed this tick.
type TouchEvent struct {
	ID       int
	Phase    TouchPhase
	Position gamemath.Vec2
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Horizontal axis in -1..1, smoothed for digital keys.
	Axis float64

	// Mouse button 0 held, or a touch held when touch movement is enabled.
	PointerActive bool
	Pointer       gamemath.Vec2 // screen pixels
	PointerTapped bool          // pressed this frame

	// Touch transitions for this tick, oldest first.
	Touches []TouchEvent
}

var Input = donburi.NewComponentType[InputData]()
