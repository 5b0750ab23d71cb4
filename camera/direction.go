package camera

import (
	"math"

	"github.com/milk9111/roomscroller/common"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// TransitionState is the phase of a room transition. StateNone means no
// transition is active.
type TransitionState int

const (
	StateNone TransitionState = iota
	StateBegin
	StateContinue
	StateEnd
)

func (s TransitionState) String() string {
	switch s {
	case StateBegin:
		return "begin"
	case StateContinue:
		return "continue"
	case StateEnd:
		return "end"
	default:
		return "none"
	}
}

// PushDirection returns the direction pushed must move to stop overlapping
// other, along the axis of least penetration. DirNone if they do not overlap.
func PushDirection(pushed, other common.Rect) Direction {
	overlap, ok := pushed.Intersection(other)
	if !ok {
		return DirNone
	}
	if overlap.W < overlap.H {
		if pushed.X > other.X {
			return DirRight
		}
		return DirLeft
	}
	if pushed.Y > other.Y {
		return DirUp
	}
	return DirDown
}

// DominantDirection returns the direction of the larger axis of to-from.
func DominantDirection(from, to common.Vec2) Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 && dy == 0 {
		return DirNone
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirUp
	}
	return DirDown
}
