package systems

import (
	"fmt"
	"math"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 160
	hudBarHeight = 6
)

// DrawHUD renders the distance counter, the best distance and, once the
// player is gone, a bar counting down to the reset.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	runEntry, ok := components.Run.First(ecs.World)
	if !ok {
		return
	}
	run := components.Run.Get(runEntry)
	margin := int(cfg.HUD.Margin)

	distance := fmt.Sprintf("%dm", int(math.Floor(run.Distance)))
	text.Draw(screen, distance, fonts.Bold.Get(), margin, margin+22, cfg.HUD.TextColor)

	best := math.Max(run.Best, run.Distance)
	if best > 0 {
		text.Draw(screen, fmt.Sprintf("BEST %dm", int(math.Floor(best))), fonts.Small.Get(), margin, margin+42, cfg.HUD.BestColor)
	}

	if !run.PlayerDestroyed {
		return
	}
	progress, pending := components.Timers.Get(runEntry).Progress(run.ResetTimer)
	if !pending {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	x := (width - hudBarWidth) / 2
	y := height / 2

	label := "RESTARTING"
	labelWidth := len(label) * 12
	text.Draw(screen, label, fonts.Bold.Get(), int((width-float64(labelWidth))/2), int(y)-12, cfg.HUD.TextColor)

	vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, cfg.BlackOverlay, false)
	vector.FillRect(screen, float32(x), float32(y), float32(hudBarWidth*progress), hudBarHeight, cfg.HUD.BestColor, false)
}
