package systems

import (
	"math"

	"github.com/automoto/rollaway/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the camera shake and removes it once it has decayed.
func UpdateEffects(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	}
	intensity := shake.Intensity * progress

	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never replaces a
// stronger one already running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
