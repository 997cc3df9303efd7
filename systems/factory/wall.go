package factory

import (
	"github.com/automoto/rollaway/archetypes"
	"github.com/automoto/rollaway/components"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64, segment int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.TrackPiece.SetValue(wall, components.TrackPieceData{Segment: segment})

	if space != nil {
		space.Add(obj)
	}
	return wall
}
