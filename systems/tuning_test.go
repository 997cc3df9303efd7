package systems

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	changed bool
	err     error
}

func (f *fakeSource) Poll() (bool, error) {
	changed := f.changed
	f.changed = false
	return changed, f.err
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestUpdateTuningAppliesToLivePlayer(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	o := w.obstacle(100, 100, 32, 32)
	path := writeTuning(t, "player:\n  dodgeSpeed: 8\n  rollSpeed: 25\nobstacle:\n  waitTime: 1.5\n")

	src := &fakeSource{}
	system := NewUpdateTuning(src, path)

	system(w.ecs)
	assert.InDelta(t, 5.0, components.Player.Get(p).DodgeSpeed, 1e-9, "no change reported, nothing reloaded")

	src.changed = true
	system(w.ecs)

	player := components.Player.Get(p)
	assert.InDelta(t, 8.0, player.DodgeSpeed, 1e-9)
	assert.InDelta(t, cfg.MaxRollSpeed, player.RollSpeed, 1e-9, "roll speed is clamped")
	assert.Equal(t, 1500*time.Millisecond, components.Obstacle.Get(o).WaitTime)
}

func TestUpdateTuningRejectsBadFile(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	path := writeTuning(t, "player:\n  dodgeSpeed: -1\n  swipeMoveDistance: 9\n")

	system := NewUpdateTuning(&fakeSource{changed: true}, path)
	system(w.ecs)

	player := components.Player.Get(p)
	assert.InDelta(t, 5.0, player.DodgeSpeed, 1e-9)
	assert.InDelta(t, 2.0, player.SwipeMoveDistance, 1e-9)
	assert.InDelta(t, 5.0, cfg.Player.DodgeSpeed, 1e-9)
}

func TestUpdateTuningSurvivesWatcherError(t *testing.T) {
	w := newTestWorld(t)
	system := NewUpdateTuning(&fakeSource{err: errors.New("overflow")}, "unused.yaml")

	assert.NotPanics(t, func() { system(w.ecs) })
}
