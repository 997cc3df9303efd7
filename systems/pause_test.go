package systems

import (
	"testing"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pressPause makes the pause action just pressed for the next updatePause.
func pressPause(input *components.InputData) {
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionPause] = true
}

func TestPauseTogglesOnAction(t *testing.T) {
	w := newTestWorld(t)
	input := getOrCreateInput(w.ecs)

	pressPause(input)
	updatePause(w.ecs, nil)
	assert.True(t, GetOrCreatePause(w.ecs).IsPaused)

	// Held, not pressed again
	input.Previous = input.Current
	updatePause(w.ecs, nil)
	assert.True(t, GetOrCreatePause(w.ecs).IsPaused)

	pressPause(input)
	updatePause(w.ecs, nil)
	assert.False(t, GetOrCreatePause(w.ecs).IsPaused)
}

func TestSwipeWorksAfterTouchEndLostDuringPause(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(240, 500)
	input := getOrCreateInput(w.ecs)
	update := WithGameplayChecks(UpdatePlayer)

	input.Touches = []components.TouchEvent{{ID: 1, Phase: components.TouchBegan, Position: gamemath.Vec2{X: 100}}}
	update(w.ecs)
	require.Equal(t, components.GestureTracking, components.Gesture.Get(p).Phase)

	// Pause, then the finger lifts while the player system is skipped
	input.Touches = nil
	pressPause(input)
	updatePause(w.ecs, nil)
	require.True(t, GetOrCreatePause(w.ecs).IsPaused)
	assert.Equal(t, components.GestureIdle, components.Gesture.Get(p).Phase)

	input.Touches = []components.TouchEvent{{ID: 1, Phase: components.TouchEnded, Position: gamemath.Vec2{X: 0}}}
	update(w.ecs)
	assert.InDelta(t, 224.0, components.Object.Get(p).X, 1e-9)

	input.Touches = nil
	pressPause(input)
	updatePause(w.ecs, nil)
	require.False(t, GetOrCreatePause(w.ecs).IsPaused)

	// A fresh swipe teleports again
	input.Touches = []components.TouchEvent{{ID: 2, Phase: components.TouchBegan, Position: gamemath.Vec2{X: 100}}}
	update(w.ecs)
	input.Touches = []components.TouchEvent{{ID: 2, Phase: components.TouchEnded, Position: gamemath.Vec2{X: 97}}}
	update(w.ecs)

	assert.InDelta(t, 224.0-64, components.Object.Get(p).X, 1e-9)
	assert.Equal(t, components.GestureIdle, components.Gesture.Get(p).Phase)
}
