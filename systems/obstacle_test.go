package systems

import (
	"testing"
	"time"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactToCollisionDestroysPlayerAndSchedulesOneReset(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	playerObj := components.Object.Get(p).Object
	o := w.obstacle(224, 440, 32, 32)

	require.True(t, ReactToCollision(w.ecs, o, p))

	assert.False(t, p.Valid(), "player must leave the world")
	assert.False(t, w.inSpace(playerObj), "player must leave the collision space")
	assert.Equal(t, components.ObstacleResetPending, components.Obstacle.Get(o).State)
	assert.True(t, w.runData().PlayerDestroyed)
	assert.Equal(t, 1, w.timersPending())

	// A second report of the same contact changes nothing
	assert.False(t, ReactToCollision(w.ecs, o, p))
	assert.Equal(t, 1, w.timersPending())
	assert.Zero(t, w.reloads)
}

func TestResetFiresOnceAfterWaitTime(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	o := w.obstacle(224, 440, 32, 32)
	require.Equal(t, 2*time.Second, components.Obstacle.Get(o).WaitTime)

	require.True(t, ReactToCollision(w.ecs, o, p))

	// The first pass is the collision tick itself, so 2s fires 120 ticks
	// after it, on the 121st pass
	w.tick(UpdateTimers, 2*cfg.TPS)
	assert.Zero(t, w.reloads, "reset must not fire early")

	w.tick(UpdateTimers, 1)
	assert.Equal(t, 1, w.reloads)
	assert.Equal(t, 1, w.runData().Resets)

	w.tick(UpdateTimers, 10*cfg.TPS)
	assert.Equal(t, 1, w.reloads, "reset must fire exactly once")
	assert.Zero(t, w.timersPending())
}

func TestResetUsesObstacleWaitTime(t *testing.T) {
	w := newTestWorld(t)
	cfg.Obstacle.WaitTime = 0.5
	p := w.player(240, 500)
	o := w.obstacle(224, 440, 32, 32)

	require.True(t, ReactToCollision(w.ecs, o, p))
	w.tick(UpdateTimers, cfg.TPS/2)
	assert.Zero(t, w.reloads)
	w.tick(UpdateTimers, 1)
	assert.Equal(t, 1, w.reloads)
}

func TestZeroWaitTimeResetsOnFirstTimerPass(t *testing.T) {
	w := newTestWorld(t)
	cfg.Obstacle.WaitTime = 0
	p := w.player(240, 500)
	o := w.obstacle(224, 440, 32, 32)

	require.True(t, ReactToCollision(w.ecs, o, p))
	assert.Zero(t, w.reloads, "reset runs from the timer queue, never inline")

	w.tick(UpdateTimers, 1)
	assert.Equal(t, 1, w.reloads)
}

func TestReactToCollisionIgnoresNonPlayers(t *testing.T) {
	w := newTestWorld(t)
	o := w.obstacle(224, 440, 32, 32)
	wall := w.wall(0, 0, 16, 1024)
	other := w.obstacle(224, 400, 32, 32)

	assert.False(t, ReactToCollision(w.ecs, o, wall))
	assert.False(t, ReactToCollision(w.ecs, o, other))
	assert.False(t, ReactToCollision(w.ecs, o, nil))

	assert.Equal(t, components.ObstacleAlive, components.Obstacle.Get(o).State)
	assert.True(t, wall.Valid())
	assert.True(t, other.Valid())
	assert.Zero(t, w.timersPending())
}

func TestReactToCollisionWithoutRun(t *testing.T) {
	// Without a run there is nothing to reset, so the player survives
	tw := newTestWorld(t)
	p := tw.player(240, 500)
	o := tw.obstacle(224, 440, 32, 32)
	tw.ecs.World.Remove(tw.run.Entity())

	assert.False(t, ReactToCollision(tw.ecs, o, p))
	assert.True(t, p.Valid())
	assert.Equal(t, components.ObstacleAlive, components.Obstacle.Get(o).State)
}

func TestUpdateCollisionsReportsObstacleContact(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	o := w.obstacle(224, 470, 32, 12)

	// Rolling forward into the obstacle
	components.Physics.Get(p).SpeedY = -10 * cfg.World.PixelsPerUnit
	UpdateCollisions(w.ecs)

	assert.False(t, p.Valid())
	assert.Equal(t, components.ObstacleResetPending, components.Obstacle.Get(o).State)
	assert.Equal(t, 1, w.timersPending())
}

func TestUpdateCollisionsStopsAtWalls(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	w.wall(258, 0, 16, 1024)

	physics := components.Physics.Get(p)
	physics.SpeedX = 600 // 10px per tick
	physics.SpeedY = 0
	UpdateCollisions(w.ecs)

	obj := components.Object.Get(p)
	assert.InDelta(t, 226.0, obj.X, 1e-9, "player must stop flush against the wall")
	assert.Zero(t, physics.SpeedX)
	assert.True(t, p.Valid())
}
