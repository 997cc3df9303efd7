package systems

import (
	"math"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Distance between floor stripes, in pixels. RebaseShift is a multiple of it
// so stripes do not jump when the world is rebased.
const stripeSpacing = 64.0

// viewport maps world pixels to screen pixels for one frame.
type viewport struct {
	offX, offY             float64
	minX, maxX, minY, maxY float64
}

// Culling padding keeps shapes from popping at the screen edges.
const cullPadding = 32.0

func newViewport(ecs *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return viewport{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	var shakeX, shakeY float64
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		shakeX, shakeY = shake.OffsetX, shake.OffsetY
	}

	return viewport{
		offX: width/2 - camera.Position.X + shakeX,
		offY: height/2 - camera.Position.Y + shakeY,
		minX: camera.Position.X - width/2 - cullPadding,
		maxX: camera.Position.X + width/2 + cullPadding,
		minY: camera.Position.Y - height/2 - cullPadding,
		maxY: camera.Position.Y + height/2 + cullPadding,
	}, true
}

func (v viewport) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

// DrawTrack renders the floor, its stripes and the side walls.
func DrawTrack(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}
	width, height := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Track.FloorColor, false)

	first := math.Floor(view.minY/stripeSpacing) * stripeSpacing
	for y := first; y <= view.maxY; y += stripeSpacing {
		vector.FillRect(screen, 0, float32(y+view.offY), width, 2, cfg.Track.StripeColor, false)
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		vector.FillRect(screen,
			float32(o.X+view.offX), float32(o.Y+view.offY),
			float32(o.W), float32(o.H),
			cfg.Track.WallColor, false)
	})
}

// DrawObstacles renders every obstacle in its randomized color.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !view.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		obstacle := components.Obstacle.Get(e)
		vector.FillRect(screen,
			float32(o.X+view.offX), float32(o.Y+view.offY),
			float32(o.W), float32(o.H),
			obstacle.Color, false)
	})
}

// DrawPlayer renders the ball.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := newViewport(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		player := components.Player.Get(e)
		cx := o.X + o.W/2 + view.offX
		cy := o.Y + o.H/2 + view.offY
		vector.FillCircle(screen, float32(cx), float32(cy), float32(player.Radius), cfg.White, true)
	})
}
