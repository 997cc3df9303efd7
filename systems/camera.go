package systems

import (
	"math"

	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Lateral targets closer than this do not restart the ease.
const cameraRetargetThreshold = 0.5

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (destroyed), hold the last frame
	}
	playerObject := components.Object.Get(playerEntry)

	centerX := playerObject.X + playerObject.W/2
	centerY := playerObject.Y + playerObject.H/2

	// Forward axis is locked so the player sits at PlayerScreenY
	screenHeight := float64(config.C.Height)
	camera.Position.Y = centerY - (config.Camera.PlayerScreenY-0.5)*screenHeight

	targetX := float64(config.C.Width) / 2
	if config.Camera.LateralFollow {
		targetX = centerX
	}
	easeLateral(camera, targetX, 1.0/config.TPS)
}

// easeLateral moves the camera toward targetX along a tween that restarts
// whenever the target moves.
func easeLateral(camera *components.CameraData, targetX, dt float64) {
	if camera.Lateral == nil || math.Abs(targetX-camera.TargetX) > cameraRetargetThreshold {
		camera.TargetX = targetX
		camera.Lateral = gween.New(
			float32(camera.Position.X),
			float32(targetX),
			config.Camera.LateralDuration,
			ease.OutQuad,
		)
	}

	x, finished := camera.Lateral.Update(float32(dt))
	camera.Position.X = float64(x)
	if finished {
		camera.Position.X = camera.TargetX
	}
}
