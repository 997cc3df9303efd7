package systems

import (
	"math"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// TryTeleport moves the player sideways by its SwipeMoveDistance in dir.
// The whole path is swept first; if anything solid or any obstacle lies on
// it the player stays put. It reports whether the move happened.
func TryTeleport(playerEntry *donburi.Entry, dir gamemath.SwipeDirection) bool {
	if dir == gamemath.SwipeNone || !playerEntry.Valid() {
		return false
	}

	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	dx := dir.Sign() * player.SwipeMoveDistance * cfg.World.PixelsPerUnit
	if dx == 0 {
		return false
	}

	if SweepBlocked(obj, dx, 0, tags.ResolvSolid, tags.ResolvObstacle) {
		logging.L().Debug("teleport blocked",
			zap.Stringer("direction", dir),
			zap.Float64("distance", dx),
		)
		return false
	}

	obj.X += dx
	obj.Update()
	player.Teleports++
	return true
}

// SweepBlocked reports whether moving obj by (dx, dy) would pass through any
// object carrying one of the given tags. The path is walked in steps no
// longer than a space cell so thin objects between start and end are found.
func SweepBlocked(obj *resolv.Object, dx, dy float64, tagList ...string) bool {
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return false
	}

	start := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	swept := sweptBounds(start, dx, dy)

	step := float64(cfg.World.CellSize)
	if step <= 0 {
		step = dist
	}

	for travelled := 0.0; ; travelled += step {
		t := math.Min(travelled, dist) / dist
		if check := obj.Check(dx*t, dy*t, tagList...); check != nil {
			for _, other := range check.ObjectsByTags(tagList...) {
				if other == obj {
					continue
				}
				if swept.Overlaps(gamemath.Rect{X: other.X, Y: other.Y, W: other.W, H: other.H}) {
					return true
				}
			}
		}
		if travelled >= dist {
			return false
		}
	}
}

// sweptBounds is the box covering r at every point of a straight move.
func sweptBounds(r gamemath.Rect, dx, dy float64) gamemath.Rect {
	out := r
	if dx < 0 {
		out.X += dx
	}
	if dy < 0 {
		out.Y += dy
	}
	out.W += math.Abs(dx)
	out.H += math.Abs(dy)
	return out
}
