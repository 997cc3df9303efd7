package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaults(t *testing.T) {
	Reset()

	assert.Equal(t, 5.0, Player.DodgeSpeed)
	assert.Equal(t, 5.0, Player.RollSpeed)
	assert.Equal(t, 2.0, Player.SwipeMoveDistance)
	assert.Equal(t, 2.0, Player.MinSwipeDistance)
	assert.Equal(t, 2.0, Obstacle.WaitTime)

	tuning := CurrentTuning()
	assert.NoError(t, tuning.Validate())
}

func TestParseTuningOverlaysBase(t *testing.T) {
	Reset()
	data := []byte(`
player:
  dodgeSpeed: 7.5
obstacle:
  waitTime: 0.5
controls:
  touchMovement: true
`)

	tuning, err := ParseTuning(data, CurrentTuning())
	require.NoError(t, err)

	assert.Equal(t, 7.5, tuning.Player.DodgeSpeed)
	assert.Equal(t, 5.0, tuning.Player.RollSpeed, "fields missing from the file keep their value")
	assert.Equal(t, 0.5, tuning.Obstacle.WaitTime)
	assert.Equal(t, 1.0, tuning.Obstacle.HueMax)
	assert.True(t, tuning.Controls.TouchMovement)
	assert.Equal(t, Track.FloorColor, tuning.Track.FloorColor)

	// Parsing alone never touches the live values
	assert.Equal(t, 5.0, Player.DodgeSpeed)
}

func TestValidateClampsRollSpeed(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"below", -3, MinRollSpeed},
		{"inside", 7, 7},
		{"above", 42, MaxRollSpeed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Reset()
			tuning := CurrentTuning()
			tuning.Player.RollSpeed = c.in

			require.NoError(t, tuning.Validate())
			assert.Equal(t, c.want, tuning.Player.RollSpeed)
		})
	}
}

func TestValidateCollectsEveryError(t *testing.T) {
	Reset()
	tuning := CurrentTuning()
	tuning.Player.DodgeSpeed = -1
	tuning.Player.Mass = 0
	tuning.Obstacle.WaitTime = -2
	tuning.Obstacle.HueMin = 0.8
	tuning.Obstacle.HueMax = 0.2

	err := tuning.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTuning)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestParseTuningErrors(t *testing.T) {
	Reset()
	base := CurrentTuning()

	_, err := ParseTuning([]byte("player: [not, a, map]"), base)
	assert.Error(t, err)

	got, err := ParseTuning([]byte("player:\n  swipeMoveDistance: -4\n"), base)
	assert.ErrorIs(t, err, ErrInvalidTuning)
	assert.Equal(t, base.Player, got.Player, "a rejected file returns the base unchanged")
}

func TestLoadFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  minSwipeDistance: 12\n"), 0o600))

	_, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12.0, Player.MinSwipeDistance)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 12.0, Player.MinSwipeDistance, "a failed load keeps the live values")
}
