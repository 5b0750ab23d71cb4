package system

import (
	"context"
	"log"

	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CameraSystem drives the room camera from the player body and turns its
// transition callbacks into events and system gating.
type CameraSystem struct {
	cam    *camera.RoomCamera
	gate   Gate
	tracer trace.Tracer
	ctx    context.Context
	span   trace.Span

	focus ecs.Entity
	level string

	// set for the duration of Update so callbacks can push events
	frame *ecs.World
}

func NewCameraSystem(ctx context.Context, cam *camera.RoomCamera, gate Gate, tracer trace.Tracer) *CameraSystem {
	cs := &CameraSystem{
		cam:    cam,
		gate:   gate,
		tracer: tracer,
		ctx:    ctx,
	}
	cam.SetListener(cs)
	return cs
}

func (cs *CameraSystem) Camera() *camera.RoomCamera {
	return cs.cam
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	cs.frame = w
	defer func() { cs.frame = nil }()

	cs.syncLevel(w)
	cs.syncFocus(w)

	if len(w.Events().Of(ecs.EventPlayerSpawn)) > 0 {
		cs.restart("player spawned")
	}

	cs.cam.Update(w.Delta())
	cs.syncComponent(w)
}

func (cs *CameraSystem) syncLevel(w *ecs.World) {
	e, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return
	}
	level, _ := ecs.Get(w, e, component.LevelComponent)
	if level.Name == cs.level {
		return
	}
	if err := camera.ValidateRooms(level.Rooms); err != nil {
		log.Printf("camera: level %q: %v", level.Name, err)
	}
	swapped := cs.level != ""
	cs.level = level.Name
	cs.cam.SetRooms(level.Rooms)
	if !swapped {
		cs.cam.Reset()
		return
	}
	cs.restart("level changed")
}

// restart drops any running transition and reopens the gate.
func (cs *CameraSystem) restart(reason string) {
	cs.abortSpan(reason)
	cs.cam.Reset()
	cs.gate.Resume(GatedSystems...)
}

func (cs *CameraSystem) syncFocus(w *ecs.World) {
	e, ok := w.First(component.PlayerTagComponent.Kind(), component.PhysicsBodyComponent.Kind())
	if !ok {
		if cs.focus != ecs.NoEntity {
			cs.focus = ecs.NoEntity
			cs.cam.SetFocus(nil)
		}
		return
	}
	if e == cs.focus {
		return
	}
	pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if pb.Body == nil {
		return
	}
	cs.focus = e
	cs.cam.SetFocus(pb.Body)
}

func (cs *CameraSystem) syncComponent(w *ecs.World) {
	ecs.ForEach(w, component.CameraComponent.Kind(), func(e ecs.Entity, c *component.Camera) {
		c.Position = cs.cam.Position()
		c.Room = cs.cam.CurrentRoomName()
		c.Transitioning = cs.cam.Transitioning()
		c.Direction = cs.cam.Direction().String()
	})
}

func (cs *CameraSystem) push(evt ecs.Event) {
	if cs.frame != nil {
		cs.frame.Events().Push(evt)
	}
}

func (cs *CameraSystem) BeginTransition() {
	prior, _ := cs.cam.PriorRoom()
	current, _ := cs.cam.CurrentRoom()
	cs.gate.Suspend(GatedSystems...)
	cs.push(ecs.Event{Type: ecs.EventBeginRoomTransition, Data: ecs.BeginRoomTransition{From: prior.Name, To: current.Name}})

	if cs.tracer != nil {
		_, cs.span = cs.tracer.Start(cs.ctx, "room.transition", trace.WithAttributes(
			attribute.String("room.from", prior.Name),
			attribute.String("room.to", current.Name),
			attribute.String("direction", cs.cam.Direction().String()),
		))
	}
}

func (cs *CameraSystem) ContinueTransition(dt float64) {
	pos, ok := cs.cam.TransitionInterpolation()
	if ok {
		cs.push(ecs.Event{Type: ecs.EventContinueRoomTransition, Data: ecs.ContinueRoomTransition{Position: pos, Dt: dt}})
	}
	if cs.cam.DelayJustFinished() {
		cs.gate.Resume(NameAnimation)
		if cs.span != nil {
			cs.span.AddEvent("delay.finished")
		}
	}
}

func (cs *CameraSystem) EndTransition() {
	room, _ := cs.cam.CurrentRoom()
	cs.push(ecs.Event{Type: ecs.EventEndRoomTransition, Data: ecs.EndRoomTransition{Room: room.Name, Event: room.Event}})
	if room.Event != "" {
		cs.push(ecs.Event{Type: ecs.EventRoomEvent, Data: ecs.RoomEvent{Room: room.Name, Event: room.Event}})
	} else {
		cs.gate.Resume(GatedSystems...)
	}
	if cs.span != nil {
		cs.span.SetAttributes(attribute.String("room.event", room.Event))
		cs.span.End()
		cs.span = nil
	}
}

func (cs *CameraSystem) abortSpan(reason string) {
	if cs.span == nil {
		return
	}
	cs.span.SetStatus(codes.Error, reason)
	cs.span.End()
	cs.span = nil
}
