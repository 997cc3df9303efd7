package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Fields missing from the file keep their current values.
type Tuning struct {
	Player   PlayerConfig   `yaml:"player"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Track    TrackConfig    `yaml:"track"`
	Controls ControlsConfig `yaml:"controls"`
}

// CurrentTuning snapshots the live tunables.
func CurrentTuning() Tuning {
	return Tuning{
		Player:   Player,
		Obstacle: Obstacle,
		Track:    Track,
		Controls: Controls,
	}
}

// Apply makes t the live configuration. Entities spawned afterwards pick it up.
func (t Tuning) Apply() {
	Player = t.Player
	Obstacle = t.Obstacle
	Track = t.Track
	Controls = t.Controls
}

// ParseTuning overlays YAML data onto base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadFile reads a tuning file, overlays it onto the live configuration and
// applies it.
func LoadFile(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return t, fmt.Errorf("load tuning %s: %w", path, err)
	}
	t.Apply()
	return t, nil
}

// Validate clamps RollSpeed into its allowed range and rejects values the
// game cannot run with.
func (t *Tuning) Validate() error {
	t.Player.RollSpeed = clamp(t.Player.RollSpeed, MinRollSpeed, MaxRollSpeed)

	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	p := t.Player
	check(p.DodgeSpeed >= 0, "player.dodgeSpeed must be >= 0, got %v", p.DodgeSpeed)
	check(p.SwipeMoveDistance >= 0, "player.swipeMoveDistance must be >= 0, got %v", p.SwipeMoveDistance)
	check(p.MinSwipeDistance >= 0, "player.minSwipeDistance must be >= 0, got %v", p.MinSwipeDistance)
	check(p.Mass > 0, "player.mass must be > 0, got %v", p.Mass)
	check(p.Drag >= 0, "player.drag must be >= 0, got %v", p.Drag)
	check(p.Radius > 0, "player.radius must be > 0, got %v", p.Radius)

	o := t.Obstacle
	check(o.WaitTime >= 0, "obstacle.waitTime must be >= 0, got %v", o.WaitTime)
	check(unitRange(o.HueMin, o.HueMax), "obstacle hue range must be within 0..1 and ordered")
	check(unitRange(o.SatMin, o.SatMax), "obstacle saturation range must be within 0..1 and ordered")
	check(unitRange(o.ValMin, o.ValMax), "obstacle value range must be within 0..1 and ordered")

	check(t.Track.SpawnAhead > 0, "track.spawnAhead must be > 0, got %v", t.Track.SpawnAhead)
	check(t.Track.DespawnBehind >= 0, "track.despawnBehind must be >= 0, got %v", t.Track.DespawnBehind)
	check(t.Track.SafeSegments >= 0, "track.safeSegments must be >= 0, got %v", t.Track.SafeSegments)

	return err
}

func unitRange(lo, hi float64) bool {
	return lo >= 0 && hi <= 1 && lo <= hi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
