package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the ball centred on (x, y) and adds it to space.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	ppu := cfg.World.PixelsPerUnit
	radius := cfg.Player.Radius * ppu
	size := radius * 2

	obj := resolv.NewObject(x-radius, y-radius, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		DodgeSpeed:        cfg.Player.DodgeSpeed,
		RollSpeed:         cfg.Player.RollSpeed,
		SwipeMoveDistance: cfg.Player.SwipeMoveDistance,
		MinSwipeDistance:  cfg.Player.MinSwipeDistance,
		Radius:            radius,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		SpeedY:          -cfg.Player.StartForwardSpeed * ppu,
		Mass:            cfg.Player.Mass,
		Drag:            cfg.Player.Drag,
		MaxLateralSpeed: cfg.Player.MaxLateralSpeed * ppu,
		MaxForwardSpeed: cfg.Player.MaxForwardSpeed * ppu,
	})
	components.Gesture.SetValue(player, components.GestureData{})

	if space != nil {
		space.Add(obj)
	}
	return player
}
