// Package ecs plugs the shapes collision oracle into a [Donburi] world.
//
// Attach a [Collider] component to entities, run [DetectCollisions] once per
// tick, and subscribe to [CollisionEventType] to react to overlapping pairs:
//
//	e := world.Create(ecs.Collider)
//	ecs.Collider.SetValue(world.Entry(e), ecs.ColliderData{
//		Shape:    shapes.Circle{Radius: 8},
//		Position: shapes.Vec2{X: 100, Y: 50},
//	})
//
//	ecs.CollisionEventType.Subscribe(world, func(w donburi.World, ev ecs.CollisionEvent) {
//		// ev.A and ev.B overlap
//	})
//
//	ecs.DetectCollisions(world)
//	ecs.CollisionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
