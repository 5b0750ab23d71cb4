package physics

import "strings"

// Sense is a set of flags describing what a body is touching.
type Sense uint8

const (
	FeetOnGround Sense = 1 << iota
	HeadTouchingBlock
	SideTouchingBlockLeft
	SideTouchingBlockRight
)

var senseNames = []struct {
	s    Sense
	name string
}{
	{FeetOnGround, "feet_on_ground"},
	{HeadTouchingBlock, "head_touching_block"},
	{SideTouchingBlockLeft, "side_touching_block_left"},
	{SideTouchingBlockRight, "side_touching_block_right"},
}

func (s Sense) Has(flag Sense) bool {
	return flag != 0 && s&flag == flag
}

func (s Sense) with(flag Sense, on bool) Sense {
	if on {
		return s | flag
	}
	return s &^ flag
}

func (s Sense) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range senseNames {
		if s.Has(n.s) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// sideSense maps a SIDE fixture tag to its flag.
func sideSense(side Side) (Sense, bool) {
	switch side {
	case SideLeft:
		return SideTouchingBlockLeft, true
	case SideRight:
		return SideTouchingBlockRight, true
	default:
		return 0, false
	}
}
