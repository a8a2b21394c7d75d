package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/shapes"
)

func spawn(world donburi.World, c ColliderData) donburi.Entity {
	e := world.Create(Collider)
	Collider.SetValue(world.Entry(e), c)
	return e
}

func TestDetectCollisions(t *testing.T) {
	world := donburi.NewWorld()

	a := spawn(world, ColliderData{Shape: shapes.Circle{Radius: 5}, Position: shapes.Vec2{X: 0, Y: 0}})
	b := spawn(world, ColliderData{Shape: shapes.Circle{Radius: 5}, Position: shapes.Vec2{X: 8, Y: 0}})
	spawn(world, ColliderData{Shape: shapes.Circle{Radius: 5}, Position: shapes.Vec2{X: 100, Y: 0}})

	var received []CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		received = append(received, e)
	})

	if n := DetectCollisions(world); n != 1 {
		t.Fatalf("DetectCollisions = %d, want 1", n)
	}

	// Events are queued until processed.
	CollisionEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	ev := received[0]
	if !(ev.A == a && ev.B == b) && !(ev.A == b && ev.B == a) {
		t.Errorf("event pair = (%v, %v), want (%v, %v)", ev.A, ev.B, a, b)
	}
}

func TestDetectCollisionsUsesPosition(t *testing.T) {
	world := donburi.NewWorld()
	// Same local rect, placed far apart.
	r := shapes.Rect{Width: 10, Height: 10}
	spawn(world, ColliderData{Shape: r})
	spawn(world, ColliderData{Shape: r, Position: shapes.Vec2{X: 50}})

	if n := DetectCollisions(world); n != 0 {
		t.Errorf("DetectCollisions = %d, want 0", n)
	}
}

func TestDetectCollisionsSkipsDisabledAndUnsupported(t *testing.T) {
	world := donburi.NewWorld()
	tri := shapes.Triangle{B: shapes.Vec2{X: 10}, C: shapes.Vec2{Y: 10}}
	spawn(world, ColliderData{Shape: tri})
	spawn(world, ColliderData{Shape: tri})
	spawn(world, ColliderData{Shape: shapes.Rect{Width: 10, Height: 10}, Disabled: true})
	spawn(world, ColliderData{Shape: shapes.Rect{Width: 10, Height: 10}, Disabled: true})

	if n := DetectCollisions(world); n != 0 {
		t.Errorf("DetectCollisions = %d, want 0", n)
	}
}

func TestDetectCollisionsContact(t *testing.T) {
	world := donburi.NewWorld()
	spawn(world, ColliderData{Shape: shapes.Rect{Width: 10, Height: 10}})
	spawn(world, ColliderData{Shape: shapes.Rect{Width: 10, Height: 10}, Position: shapes.Vec2{X: 6, Y: 4}})

	var got shapes.Rect
	CollisionEventType.Subscribe(world, func(w donburi.World, e CollisionEvent) {
		got = e.Contact.Overlap
	})
	DetectCollisions(world)
	CollisionEventType.ProcessEvents(world)

	if want := (shapes.Rect{X: 6, Y: 4, Width: 4, Height: 6}); got != want {
		t.Errorf("Overlap = %v, want %v", got, want)
	}
}

func TestQueryPoint(t *testing.T) {
	world := donburi.NewWorld()
	box := spawn(world, ColliderData{Shape: shapes.Rect{Width: 10, Height: 10}, Position: shapes.Vec2{X: 20, Y: 20}})
	ring := spawn(world, ColliderData{Shape: shapes.Circle{Radius: 3}, Position: shapes.Vec2{X: 25, Y: 25}})
	spawn(world, ColliderData{Shape: shapes.Circle{Radius: 3}})

	got := QueryPoint(world, shapes.Vec2{X: 25, Y: 25})
	if len(got) != 2 {
		t.Fatalf("QueryPoint = %v, want 2 entities", got)
	}
	found := map[donburi.Entity]bool{}
	for _, e := range got {
		found[e] = true
	}
	if !found[box] || !found[ring] {
		t.Errorf("QueryPoint = %v, want %v and %v", got, box, ring)
	}

	if got := QueryPoint(world, shapes.Vec2{X: 500, Y: 500}); len(got) != 0 {
		t.Errorf("QueryPoint(miss) = %v, want none", got)
	}
}

func TestColliderWorld(t *testing.T) {
	c := ColliderData{Shape: shapes.Vec2{X: 1, Y: 1}, Position: shapes.Vec2{X: 2, Y: 3}}
	if got := c.World(); got != (shapes.Vec2{X: 3, Y: 4}) {
		t.Errorf("World() = %v, want {3 4}", got)
	}
}
