package components

import (
	"github.com/automoto/rollaway/shared/scheduler"
	"github.com/yohamta/donburi"
)

// RunData is the per-scene singleton describing the current run.
type RunData struct {
	StartY      float64 // player spawn Y in world pixels
	OriginShift float64 // total floating-origin shift applied so far
	Distance    float64 // world units travelled forward
	Best        float64 // best distance loaded from disk

	PlayerDestroyed bool
	ResetTimer      scheduler.TimerID
	Resets          int // resets fired

	// Reload recreates the current scene. Set by the scene that owns the world.
	Reload func()
}

var Run = donburi.NewComponentType[RunData]()

// Timers holds the scene's timer queue.
var Timers = donburi.NewComponentType[scheduler.Scheduler]()
