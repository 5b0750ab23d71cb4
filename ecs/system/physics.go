package system

import (
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
)

// PhysicsSystem steps the physics world at its fixed rate and keeps
// entities and bodies in sync.
type PhysicsSystem struct {
	world    *physics.World
	entities map[*physics.Body]ecs.Entity

	// set for the duration of Update so block hooks can reach the world
	frame *ecs.World
}

func NewPhysicsSystem(world *physics.World) *PhysicsSystem {
	if world == nil {
		world = physics.NewWorld(physics.DefaultWorldConfig())
	}
	return &PhysicsSystem{
		world:    world,
		entities: make(map[*physics.Body]ecs.Entity),
	}
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

// Entity returns the entity owning body.
func (ps *PhysicsSystem) Entity(body *physics.Body) (ecs.Entity, bool) {
	e, ok := ps.entities[body]
	return e, ok
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.frame = w
	defer func() { ps.frame = nil }()

	ps.syncEntities(w)
	ps.world.Advance(w.Delta())
	ps.syncTransforms(w)
}

// Sync registers new bodies and drops bodies whose entity is gone without
// stepping the simulation.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	ps.syncEntities(w)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for body, e := range ps.entities {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if ok && pb.Body == body {
			continue
		}
		ps.world.RemoveBody(body)
		delete(ps.entities, body)
	}

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		if _, ok := ps.entities[pb.Body]; ok {
			return
		}
		if ecs.Has(w, e, component.WorldBlockComponent) {
			pb.Body.Hooks = &blockHooks{ps: ps, block: e}
		}
		ps.world.AddBody(pb.Body)
		ps.entities[pb.Body] = e
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		p := pb.Body.Position()
		t.X = p.X
		t.Y = p.Y
	})
}

// blockHooks turns contact hooks of a block body into hit counters and
// BLOCK_HIT events.
type blockHooks struct {
	ps    *PhysicsSystem
	block ecs.Entity
}

func (h *blockHooks) HitByFeet(by *physics.Body) { h.hit(by, ecs.HitFeet) }

func (h *blockHooks) HitBySide(by *physics.Body, _ physics.Side) { h.hit(by, ecs.HitSide) }

func (h *blockHooks) HitByHead(by *physics.Body) { h.hit(by, ecs.HitHead) }

func (h *blockHooks) hit(by *physics.Body, kind ecs.HitKind) {
	w := h.ps.frame
	if w == nil {
		return
	}
	if block, ok := ecs.Get(w, h.block, component.WorldBlockComponent); ok {
		switch kind {
		case ecs.HitFeet:
			block.FeetHits++
		case ecs.HitSide:
			block.SideHits++
		case ecs.HitHead:
			block.HeadHits++
		}
	}
	other, _ := h.ps.Entity(by)
	w.Events().Push(ecs.Event{Type: ecs.EventBlockHit, Data: ecs.BlockHit{Block: h.block, By: other, Kind: kind}})
}
