package systems

import (
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateSettings handles the global toggles. Fullscreen and touch movement
// are saved; the hitbox overlay is not.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}

	changed := false
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}
	if GetAction(input, cfg.ActionToggleTouchMovement).JustPressed {
		cfg.Controls.TouchMovement = !cfg.Controls.TouchMovement
		changed = true
	}
	if !changed {
		return
	}

	saved := &SavedSettings{
		Fullscreen:    ebiten.IsFullscreen(),
		TouchMovement: cfg.Controls.TouchMovement,
	}
	if err := SaveSettings(saved); err != nil {
		logging.L().Warn("could not save settings", zap.Error(err))
	}
}

// ApplySavedSettings applies settings loaded at startup, before the first scene.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
	cfg.Controls.TouchMovement = saved.TouchMovement
}
