package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds the ball's control tuning, snapshotted from config at spawn.
type PlayerData struct {
	DodgeSpeed        float64
	RollSpeed         float64
	SwipeMoveDistance float64
	MinSwipeDistance  float64

	Radius float64 // pixels, for drawing

	Teleports int // successful swipe teleports this run
}

var Player = donburi.NewComponentType[PlayerData]()
