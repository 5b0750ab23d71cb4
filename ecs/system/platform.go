package system

import (
	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

// PlatformSystem steers moving platforms back and forth between their end
// points by setting the velocity of their kinematic bodies.
type PlatformSystem struct{}

func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, mp *component.MovingPlatform, pb *component.PhysicsBody) {
		if pb.Body == nil || mp.Speed <= 0 {
			return
		}
		target := mp.From
		if mp.Forward {
			target = mp.To
		}
		pos := pb.Body.Position()
		toTarget := target.Sub(pos)
		dist := toTarget.Len()
		if dist <= mp.Speed*dt || dist == 0 {
			mp.Forward = !mp.Forward
			pb.Body.SetVelocity(common.Vec2{})
			return
		}
		pb.Body.SetVelocity(toTarget.Scale(mp.Speed / dist))
	})
}
