package systems

import (
	"testing"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestEaseLateralReachesTarget(t *testing.T) {
	cfg.Reset()
	camera := &components.CameraData{}
	camera.Position.X = 100

	easeLateral(camera, 300, testDT)
	assert.Greater(t, camera.Position.X, 100.0)
	assert.Less(t, camera.Position.X, 300.0)

	for i := 0; i < cfg.TPS; i++ {
		easeLateral(camera, 300, testDT)
	}
	assert.InDelta(t, 300.0, camera.Position.X, 1e-9)
}

func TestEaseLateralRetargets(t *testing.T) {
	cfg.Reset()
	camera := &components.CameraData{}

	easeLateral(camera, 100, testDT)
	first := camera.Lateral

	easeLateral(camera, 100.2, testDT)
	assert.Same(t, first, camera.Lateral, "small target moves keep the running ease")

	easeLateral(camera, 200, testDT)
	assert.NotSame(t, first, camera.Lateral)
	assert.InDelta(t, 200.0, camera.TargetX, 1e-9)
}

func TestUpdateCameraKeepsPlayerAtScreenY(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateCamera(w.ecs, 240, 0)
	w.player(240, 1000)

	UpdateCamera(w.ecs)

	cameraEntry, _ := components.Camera.First(w.ecs.World)
	camera := components.Camera.Get(cameraEntry)
	want := 1000 - (cfg.Camera.PlayerScreenY-0.5)*float64(cfg.C.Height)
	assert.InDelta(t, want, camera.Position.Y, 1e-9)
	assert.InDelta(t, 240.0, camera.Position.X, 1e-3)
}
