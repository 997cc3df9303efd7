package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2

	// Lateral follow eases toward TargetX over a fixed duration.
	TargetX float64
	Lateral *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
