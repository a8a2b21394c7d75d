package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/shapes"
)

// ColliderData is the collision shape of an entity. Shape is given in local
// coordinates and placed in the world at Position.
type ColliderData struct {
	Shape    any
	Position shapes.Vec2
	// Disabled colliders are skipped by DetectCollisions and QueryPoint.
	Disabled bool
}

// World returns the collider's shape in world coordinates.
func (c *ColliderData) World() any {
	return translate(c.Shape, c.Position)
}

// Collider is the Donburi component holding a ColliderData.
var Collider = donburi.NewComponentType[ColliderData]()

// CollisionEvent reports that the colliders of A and B overlap. A precedes B
// in query order.
type CollisionEvent struct {
	A, B    donburi.Entity
	Contact Contact
}

// CollisionEventType is the Donburi event type for collisions found by
// DetectCollisions. Subscribe to it in your systems and call ProcessEvents.
var CollisionEventType = events.NewEventType[CollisionEvent]()

var colliderQuery = donburi.NewQuery(filter.Contains(Collider))

type placed struct {
	entity donburi.Entity
	shape  any
}

func enabledColliders(world donburi.World) []placed {
	var out []placed
	colliderQuery.Each(world, func(entry *donburi.Entry) {
		c := Collider.Get(entry)
		if c.Disabled || c.Shape == nil {
			return
		}
		out = append(out, placed{entity: entry.Entity(), shape: c.World()})
	})
	return out
}

// DetectCollisions tests every pair of enabled colliders and publishes a
// CollisionEvent for each overlapping pair. Pairs without a predicate are
// skipped. It returns the number of events published.
func DetectCollisions(world donburi.World) int {
	items := enabledColliders(world)
	n := 0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			hit, contact, err := Collide(items[i].shape, items[j].shape)
			if err != nil || !hit {
				continue
			}
			CollisionEventType.Publish(world, CollisionEvent{A: items[i].entity, B: items[j].entity, Contact: contact})
			n++
		}
	}
	return n
}

// QueryPoint returns the entities whose colliders contain p.
func QueryPoint(world donburi.World, p shapes.Vec2) []donburi.Entity {
	var out []donburi.Entity
	for _, it := range enabledColliders(world) {
		if hit, _, err := Collide(p, it.shape); err == nil && hit {
			out = append(out, it.entity)
		}
	}
	return out
}
