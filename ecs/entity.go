package ecs

import "fmt"

// Entity is a handle to a slot in the world: the low 32 bits hold the slot
// id (1-based), the high 32 bits the slot generation at creation time. A
// handle goes stale once its slot is destroyed and reused.
type Entity uint64

// NoEntity is never returned by CreateEntity.
const NoEntity Entity = 0

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e & 0xffffffff) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String formats the handle as id@generation.
func (e Entity) String() string {
	if e == NoEntity {
		return "none"
	}
	return fmt.Sprintf("%d@%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
