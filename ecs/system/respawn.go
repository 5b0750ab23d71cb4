package system

import (
	"log"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

// RespawnSystem returns the player to its checkpoint when it leaves the
// level or asks for it, and announces the spawn with PLAYER_SPAWN.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	levelEnt, ok := w.First(component.LevelComponent.Kind())
	if !ok {
		return
	}
	level, _ := ecs.Get(w, levelEnt, component.LevelComponent)

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.CheckpointComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, pb *component.PhysicsBody, cp *component.Checkpoint) {
		if pb.Body == nil {
			return
		}
		requested := false
		if input, ok := ecs.Get(w, e, component.InputComponent); ok {
			requested = input.Respawn
		}
		if !requested && level.Bounds.Contains(pb.Body.Position()) {
			return
		}

		log.Printf("respawn: player at %s, moving to checkpoint %s in %q", pb.Body.Position(), cp.Position, cp.Room)
		pb.Body.SetPosition(cp.Position)
		pb.Body.SetVelocity(common.Vec2{})
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerSpawn, Data: ecs.PlayerSpawn{Position: cp.Position}})
	})
}
