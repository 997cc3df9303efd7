package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/fonts"
	"github.com/automoto/rollaway/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	objects := space.Objects()
	for _, obj := range objects {
		if !view.visible(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}

		x := obj.X + view.offX
		y := obj.Y + view.offY

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		// Draw outline
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	info := fmt.Sprintf("objects %d  tps %.0f", len(objects), ebiten.ActualTPS())
	if run := GetRun(ecs); run != nil {
		info += fmt.Sprintf("  shift %.0f  resets %d", run.OriginShift, run.Resets)
	}
	height := screen.Bounds().Dy()
	text.Draw(screen, info, fonts.Small.Get(), 8, height-8, cfg.Yellow)
}
