package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/automoto/rollaway/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this tick's input into forces and swipe teleports.
// Must run after UpdateInput and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry, input)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry, input *components.InputData) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	gesture := components.Gesture.Get(playerEntry)

	applyMovementForces(input, player, physics)
	handleSwipes(playerEntry, input, player, gesture)
}

// applyMovementForces adds the lateral dodge force and the constant forward roll.
func applyMovementForces(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	viewportX := 0.0
	if input.PointerActive {
		viewportX = gamemath.ViewportX(input.Pointer.X, float64(cfg.C.Width))
	}
	xMove := gamemath.HorizontalForce(input.Axis, input.PointerActive, viewportX, player.DodgeSpeed)

	// Forward is up the screen
	physics.AddForce(xMove, -player.RollSpeed)
}

// handleSwipes feeds touch transitions through the gesture tracker and
// teleports on every completed swipe.
func handleSwipes(playerEntry *donburi.Entry, input *components.InputData, player *components.PlayerData, gesture *components.GestureData) {
	for _, touch := range input.Touches {
		switch touch.Phase {
		case components.TouchBegan:
			gesture.Begin(touch.ID, touch.Position)
		case components.TouchEnded:
			dir, ok := gesture.End(touch.ID, touch.Position, player.MinSwipeDistance)
			if ok {
				TryTeleport(playerEntry, dir)
			}
		}
	}
}
