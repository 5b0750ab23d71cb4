package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a registered component type. Zero is never issued.
type ComponentID uint32

var lastID atomic.Uint32

// Kind is what queries need from a component: its id.
type Kind interface {
	ID() ComponentID
}

// ComponentKind is the typed id of component T, used by ForEach.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the component type, e.g. "component.Transform#3".
func (k ComponentKind[T]) String() string {
	return fmt.Sprintf("%s#%d", k.name, k.id)
}

// ComponentHandle is declared once per component type at package level and
// passed to Add, Get, Has and Remove.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers T under a fresh id. Registering the same type
// twice yields two unrelated handles.
func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
