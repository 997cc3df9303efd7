package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Wall     = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvObstacle = "Obstacle"
)
