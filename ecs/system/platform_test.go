package system

import (
	"math"
	"testing"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
)

func TestPlatformSystem(t *testing.T) {
	w := ecs.NewWorld()
	body := physics.NewBody(physics.BodyDef{Type: physics.BodyKinematic, Width: 96, Height: 32})
	e := ecs.CreateEntity(w)
	mp := &component.MovingPlatform{From: common.Vec2{}, To: common.Vec2{X: 100}, Speed: 50, Forward: true}
	if err := ecs.Add(w, e, component.MovingPlatformComponent, mp); err != nil {
		t.Fatalf("add platform: %v", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body}); err != nil {
		t.Fatalf("add body: %v", err)
	}
	s := NewPlatformSystem()
	w.SetDelta(0.1)

	s.Update(w)
	if v := body.Velocity(); math.Abs(v.X-50) > 1e-9 || v.Y != 0 {
		t.Fatalf("velocity toward To = %v", v)
	}

	body.SetPosition(common.Vec2{X: 98})
	s.Update(w)
	stored, _ := ecs.Get(w, e, component.MovingPlatformComponent)
	if stored.Forward {
		t.Fatalf("platform did not turn around at To")
	}
	if v := body.Velocity(); v != (common.Vec2{}) {
		t.Fatalf("velocity at turn = %v", v)
	}

	s.Update(w)
	if v := body.Velocity(); v.X >= 0 {
		t.Fatalf("velocity back toward From = %v", v)
	}
}
