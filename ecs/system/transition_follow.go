package system

import (
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

// TransitionFollowSystem carries the player across the room boundary by
// placing its body on the camera's lead-in position while physics is
// suspended.
type TransitionFollowSystem struct{}

func NewTransitionFollowSystem() *TransitionFollowSystem {
	return &TransitionFollowSystem{}
}

func (s *TransitionFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	events := w.Events().Of(ecs.EventContinueRoomTransition)
	if len(events) == 0 {
		return
	}
	evt, ok := events[len(events)-1].Data.(ecs.ContinueRoomTransition)
	if !ok {
		return
	}
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pb.Body.SetPosition(evt.Position)
		t.X = evt.Position.X
		t.Y = evt.Position.Y
	})
}
