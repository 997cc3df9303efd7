package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks an active screen shake on the camera.
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames
	Elapsed   int     // frames elapsed (for oscillation)

	// Offset applied to the view this frame. The camera position itself is
	// never moved so the forward lock stays exact.
	OffsetX, OffsetY float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
