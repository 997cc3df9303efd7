package components

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi"
)

// ObstacleState tracks an obstacle's collision reaction.
type ObstacleState int

const (
	ObstacleAlive ObstacleState = iota
	ObstacleResetPending
)

type ObstacleData struct {
	Color    color.RGBA
	WaitTime time.Duration // delay between hitting the player and the level reset
	State    ObstacleState
	Segment  int
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// TrackPieceData marks walls and floor strips that belong to a track segment.
type TrackPieceData struct {
	Segment int
}

var TrackPiece = donburi.NewComponentType[TrackPieceData]()
