package systems

import (
	"testing"

	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryTeleport(t *testing.T) {
	cases := []struct {
		name     string
		dir      gamemath.SwipeDirection
		setup    func(w *testWorld)
		wantMove bool
		wantX    float64
	}{
		{
			name:     "right_clear",
			dir:      gamemath.SwipeRight,
			wantMove: true,
			wantX:    224 + 64,
		},
		{
			name:     "left_clear",
			dir:      gamemath.SwipeLeft,
			wantMove: true,
			wantX:    224 - 64,
		},
		{
			name: "obstacle_at_destination",
			dir:  gamemath.SwipeRight,
			setup: func(w *testWorld) {
				w.obstacle(300, 484, 32, 32)
			},
			wantX: 224,
		},
		{
			name: "thin_obstacle_mid_path",
			dir:  gamemath.SwipeRight,
			setup: func(w *testWorld) {
				w.obstacle(262, 490, 4, 8)
			},
			wantX: 224,
		},
		{
			name: "wall_in_path",
			dir:  gamemath.SwipeLeft,
			setup: func(w *testWorld) {
				w.wall(176, 0, 16, 1024)
			},
			wantX: 224,
		},
		{
			name: "obstacle_beyond_destination",
			dir:  gamemath.SwipeRight,
			setup: func(w *testWorld) {
				w.obstacle(400, 484, 32, 32)
			},
			wantMove: true,
			wantX:    224 + 64,
		},
		{
			name: "obstacle_behind",
			dir:  gamemath.SwipeRight,
			setup: func(w *testWorld) {
				w.obstacle(150, 484, 32, 32)
			},
			wantMove: true,
			wantX:    224 + 64,
		},
		{
			name: "obstacle_ahead_not_in_lane",
			dir:  gamemath.SwipeRight,
			setup: func(w *testWorld) {
				w.obstacle(270, 400, 32, 32)
			},
			wantMove: true,
			wantX:    224 + 64,
		},
		{
			name:  "no_direction",
			dir:   gamemath.SwipeNone,
			wantX: 224,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			p := w.player(240, 500)
			if c.setup != nil {
				c.setup(w)
			}
			obj := components.Object.Get(p)

			moved := TryTeleport(p, c.dir)

			assert.Equal(t, c.wantMove, moved)
			assert.InDelta(t, c.wantX, obj.X, 1e-9)
			assert.InDelta(t, 484.0, obj.Y, 1e-9, "teleport must never move forward")

			teleports := components.Player.Get(p).Teleports
			if c.wantMove {
				assert.Equal(t, 1, teleports)
			} else {
				assert.Zero(t, teleports)
			}
		})
	}
}

func TestTryTeleportUsesSwipeMoveDistance(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	components.Player.Get(p).SwipeMoveDistance = 3

	require.True(t, TryTeleport(p, gamemath.SwipeRight))
	assert.InDelta(t, 224+96.0, components.Object.Get(p).X, 1e-9)
}

func TestTryTeleportDestroyedPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	w.ecs.World.Remove(p.Entity())

	assert.False(t, TryTeleport(p, gamemath.SwipeLeft))
}

func TestSweptBounds(t *testing.T) {
	r := gamemath.Rect{X: 10, Y: 20, W: 5, H: 5}

	assert.Equal(t, gamemath.Rect{X: 10, Y: 20, W: 15, H: 5}, sweptBounds(r, 10, 0))
	assert.Equal(t, gamemath.Rect{X: 0, Y: 20, W: 15, H: 5}, sweptBounds(r, -10, 0))
	assert.Equal(t, gamemath.Rect{X: 10, Y: 15, W: 5, H: 10}, sweptBounds(r, 0, -5))
}
