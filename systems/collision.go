package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contact is an obstacle touching another entity this tick.
type contact struct {
	obstacle *donburi.Entry
	other    *donburi.Entry
}

// UpdateCollisions moves every body by its velocity, stops it against walls
// and reports obstacle contacts. Reactions run after iteration because they
// remove entities from the world.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := 1.0 / cfg.TPS

	var contacts []contact
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		resolveHorizontalCollision(physics, obj, physics.SpeedX*dt)
		resolveVerticalCollision(physics, obj, physics.SpeedY*dt)
		obj.Update()

		if hit := touchingObstacle(obj); hit != nil {
			contacts = append(contacts, contact{obstacle: hit, other: e})
		}
	})

	for _, c := range contacts {
		ReactToCollision(ecs, c.obstacle, c.other)
	}
}

// resolveHorizontalCollision moves object by dx, stopping flush against walls.
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		contact := check.ContactWithObject(solid)
		if (dx > 0 && contact.X() < dx) || (dx < 0 && contact.X() > dx) {
			dx = contact.X()
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

// resolveVerticalCollision moves object by dy, stopping flush against walls.
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	check := object.Check(0, dy, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		contact := check.ContactWithObject(solid)
		if (dy > 0 && contact.Y() < dy) || (dy < 0 && contact.Y() > dy) {
			dy = contact.Y()
			physics.SpeedY = 0
		}
	}

	object.Y += dy
}

// touchingObstacle returns the first obstacle whose box overlaps object.
func touchingObstacle(object *resolv.Object) *donburi.Entry {
	check := object.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return nil
	}

	bounds := components.ObjectData{Object: object}.Bounds()
	for _, o := range check.ObjectsByTags(tags.ResolvObstacle) {
		if !bounds.Overlaps(components.ObjectData{Object: o}.Bounds()) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			return entry
		}
	}
	return nil
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y && a.Y < b.Y+b.H
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X && a.X < b.X+b.W
}
