package camera

import (
	"errors"
	"fmt"

	"github.com/milk9111/roomscroller/common"
)

var (
	ErrOverlappingRooms = errors.New("camera: overlapping rooms")
	ErrDuplicateRoom    = errors.New("camera: duplicate room name")
	ErrInvalidRoom      = errors.New("camera: invalid room bounds")
	ErrNoCurrentRoom    = errors.New("camera: no current room")
	ErrTransitionActive = errors.New("camera: transition already active")
)

// Room is a named rectangle of the level used for camera framing.
type Room struct {
	Name   string
	Bounds common.Rect
	// Event is an optional event name raised when a transition into the
	// room ends.
	Event string
}

// FocusProvider is anything the camera can track, normally the player body.
type FocusProvider interface {
	Bounds() common.Rect
}

// ValidateRooms rejects layouts the camera cannot frame unambiguously:
// overlapping rectangles, duplicate names and empty rectangles. The camera
// itself never reorders or rejects rooms; when rooms overlap the first
// registered one wins.
func ValidateRooms(rooms []Room) error {
	seen := make(map[string]int, len(rooms))
	for i, r := range rooms {
		if r.Bounds.W <= 0 || r.Bounds.H <= 0 {
			return fmt.Errorf("room %q %v: %w", r.Name, r.Bounds, ErrInvalidRoom)
		}
		if j, ok := seen[r.Name]; ok {
			return fmt.Errorf("room %q at %d and %d: %w", r.Name, j, i, ErrDuplicateRoom)
		}
		seen[r.Name] = i
		for _, o := range rooms[:i] {
			if r.Bounds.Overlaps(o.Bounds) {
				return fmt.Errorf("rooms %q and %q: %w", o.Name, r.Name, ErrOverlappingRooms)
			}
		}
	}
	return nil
}
