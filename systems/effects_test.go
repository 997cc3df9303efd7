package systems

import (
	"testing"

	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenShakeDecaysAndClears(t *testing.T) {
	w := newTestWorld(t)
	cameraEntry := factory.CreateCamera(w.ecs, 240, 400)

	TriggerScreenShake(w.ecs, 6, 4)
	require.True(t, cameraEntry.HasComponent(components.ScreenShake))

	UpdateEffects(w.ecs)
	shake := components.ScreenShake.Get(cameraEntry)
	assert.NotZero(t, shake.OffsetX)
	assert.LessOrEqual(t, shake.OffsetX, 6.0)

	for i := 0; i < 3; i++ {
		UpdateEffects(w.ecs)
	}
	assert.False(t, cameraEntry.HasComponent(components.ScreenShake))

	camera := components.Camera.Get(cameraEntry)
	assert.Equal(t, 400.0, camera.Position.Y, "shake never moves the camera itself")
}

func TestScreenShakeKeepsStronger(t *testing.T) {
	w := newTestWorld(t)
	cameraEntry := factory.CreateCamera(w.ecs, 240, 400)

	TriggerScreenShake(w.ecs, 6, 10)
	TriggerScreenShake(w.ecs, 2, 30)
	shake := components.ScreenShake.Get(cameraEntry)
	assert.Equal(t, 6.0, shake.Intensity)
	assert.Equal(t, 10, shake.Duration)

	TriggerScreenShake(w.ecs, 9, 5)
	assert.Equal(t, 9.0, shake.Intensity)
	assert.Equal(t, 5, shake.Duration)
}

func TestScreenShakeWithoutCamera(t *testing.T) {
	w := newTestWorld(t)
	assert.NotPanics(t, func() {
		TriggerScreenShake(w.ecs, 6, 10)
		UpdateEffects(w.ecs)
	})
}
