package ecs

import "github.com/milk9111/roomscroller/common"

type EventType string

const (
	EventBeginRoomTransition    EventType = "begin_room_transition"
	EventContinueRoomTransition EventType = "continue_room_transition"
	EventEndRoomTransition      EventType = "end_room_transition"
	EventRoomEvent              EventType = "room_event"
	EventPlayerSpawn            EventType = "player_spawn"
	EventBlockHit               EventType = "block_hit"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

type BeginRoomTransition struct {
	From string
	To   string
}

// ContinueRoomTransition carries the lead-in focus position of the camera.
type ContinueRoomTransition struct {
	Position common.Vec2
	Dt       float64
}

type EndRoomTransition struct {
	Room  string
	Event string
}

type RoomEvent struct {
	Room  string
	Event string
}

type PlayerSpawn struct {
	Position common.Vec2
}

type HitKind string

const (
	HitFeet HitKind = "feet"
	HitSide HitKind = "side"
	HitHead HitKind = "head"
)

type BlockHit struct {
	Block Entity
	By    Entity
	Kind  HitKind
}

// EventQueue is a FIFO of events raised during the current frame.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Of returns the queued events of type t in push order.
func (q *EventQueue) Of(t EventType) []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
