package system

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultScriptTimeout = 50 * time.Millisecond

// ScriptLoader returns the source of the script for a room event.
type ScriptLoader func(event string) ([]byte, error)

type roomEventRun struct {
	room     string
	event    string
	elapsed  float64
	compiled *tengo.Compiled
	span     trace.Span

	checkpointed bool
	announced    string
}

// RoomEventSystem runs the tengo script of a room's on-enter event once a
// transition ends. Gated systems stay suspended until the script sets
// resume, fails, or the player respawns.
type RoomEventSystem struct {
	gate    Gate
	load    ScriptLoader
	tracer  trace.Tracer
	ctx     context.Context
	timeout time.Duration

	cache  map[string]*tengo.Compiled
	active *roomEventRun
}

func NewRoomEventSystem(ctx context.Context, gate Gate, load ScriptLoader, tracer trace.Tracer) *RoomEventSystem {
	return &RoomEventSystem{
		gate:    gate,
		load:    load,
		tracer:  tracer,
		ctx:     ctx,
		timeout: defaultScriptTimeout,
		cache:   make(map[string]*tengo.Compiled),
	}
}

// Active reports the event currently holding the game, if any.
func (s *RoomEventSystem) Active() (string, bool) {
	if s.active == nil {
		return "", false
	}
	return s.active.event, true
}

// Invalidate drops the compiled script for an event name or script path.
func (s *RoomEventSystem) Invalidate(name string) {
	key := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	delete(s.cache, key)
}

func (s *RoomEventSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if len(w.Events().Of(ecs.EventPlayerSpawn)) > 0 && s.active != nil {
		s.finish(fmt.Errorf("cancelled by player spawn"))
	}
	for _, evt := range w.Events().Of(ecs.EventRoomEvent) {
		data, ok := evt.Data.(ecs.RoomEvent)
		if !ok {
			continue
		}
		s.start(data)
	}
	if s.active == nil {
		return
	}

	run := s.active
	run.elapsed += w.Delta()
	resume, err := s.step(w, run)
	switch {
	case err != nil:
		log.Printf("room event: %q in %q: %v", run.event, run.room, err)
		s.finish(err)
	case resume:
		s.finish(nil)
	}
}

func (s *RoomEventSystem) start(evt ecs.RoomEvent) {
	if s.active != nil {
		s.finish(fmt.Errorf("replaced by %q", evt.Event))
	}
	compiled, err := s.compile(evt.Event)
	if err != nil {
		log.Printf("room event: %q in %q: %v", evt.Event, evt.Room, err)
		s.gate.Resume(GatedSystems...)
		return
	}
	run := &roomEventRun{room: evt.Room, event: evt.Event, compiled: compiled}
	if s.tracer != nil {
		_, run.span = s.tracer.Start(s.ctx, "room.event", trace.WithAttributes(
			attribute.String("room", evt.Room),
			attribute.String("event", evt.Event),
		))
	}
	s.active = run
}

func (s *RoomEventSystem) finish(err error) {
	run := s.active
	s.active = nil
	if run.span != nil {
		run.span.SetAttributes(attribute.Float64("elapsed", run.elapsed))
		if err != nil {
			run.span.SetStatus(codes.Error, err.Error())
		}
		run.span.End()
	}
	s.gate.Resume(GatedSystems...)
}

func (s *RoomEventSystem) compile(event string) (*tengo.Compiled, error) {
	if c, ok := s.cache[event]; ok {
		return c.Clone(), nil
	}
	if s.load == nil {
		return nil, fmt.Errorf("no script loader")
	}
	src, err := s.load(event)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	inputs := map[string]any{
		"room":       "",
		"event":      "",
		"elapsed":    0.0,
		"resume":     false,
		"checkpoint": false,
		"message":    "",
	}
	for name, value := range inputs {
		if err := script.Add(name, value); err != nil {
			return nil, err
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	s.cache[event] = compiled
	return compiled.Clone(), nil
}

func (s *RoomEventSystem) step(w *ecs.World, run *roomEventRun) (bool, error) {
	c := run.compiled
	for name, value := range map[string]any{"room": run.room, "event": run.event, "elapsed": run.elapsed} {
		if err := c.Set(name, value); err != nil {
			return false, err
		}
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	if err := c.RunContext(ctx); err != nil {
		return false, fmt.Errorf("run: %w", err)
	}

	if c.Get("checkpoint").Bool() && !run.checkpointed {
		run.checkpointed = true
		saveCheckpoint(w, run.room)
	}
	if msg := c.Get("message").String(); msg != "" && msg != run.announced {
		run.announced = msg
		log.Printf("room event: %s: %s", run.room, msg)
		if run.span != nil {
			run.span.AddEvent("message", trace.WithAttributes(attribute.String("text", msg)))
		}
	}
	return c.Get("resume").Bool(), nil
}

// saveCheckpoint stores the player's current position as its checkpoint.
func saveCheckpoint(w *ecs.World, room string) {
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.CheckpointComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, pb *component.PhysicsBody, cp *component.Checkpoint) {
		if pb.Body == nil {
			return
		}
		cp.Position = pb.Body.Position()
		cp.Room = room
		log.Printf("room event: checkpoint saved in %q at %s", room, cp.Position)
	})
}
