package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomscroller/common"
)

// FixtureType tags a collision shape. The values double as Chipmunk
// collision types.
type FixtureType cp.CollisionType

const (
	FixtureBody FixtureType = iota + 1
	FixtureFeet
	FixtureHead
	FixtureSide
	FixtureWorldBlock
)

func (t FixtureType) String() string {
	switch t {
	case FixtureBody:
		return "body"
	case FixtureFeet:
		return "feet"
	case FixtureHead:
		return "head"
	case FixtureSide:
		return "side"
	case FixtureWorldBlock:
		return "world_block"
	default:
		return "unknown"
	}
}

// sensor reports whether fixtures of this type only detect contacts.
func (t FixtureType) sensor() bool {
	return t == FixtureFeet || t == FixtureHead || t == FixtureSide
}

// Side says which side of its body a SIDE fixture sits on.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Fixture is a tagged box attached to a Body. Offset and size are in the
// body's local frame.
type Fixture struct {
	Type   FixtureType
	Side   Side
	Offset common.Vec2
	Width  float64
	Height float64

	body  *Body
	shape *cp.Shape
}

func (f *Fixture) Body() *Body {
	if f == nil {
		return nil
	}
	return f.body
}

// Bounds returns the fixture rectangle in world space.
func (f *Fixture) Bounds() common.Rect {
	if f == nil || f.body == nil {
		return common.Rect{}
	}
	return common.RectAround(f.body.Position().Add(f.Offset), f.Width, f.Height)
}

func (f *Fixture) newShape() *cp.Shape {
	bb := cp.BB{
		L: f.Offset.X - f.Width/2,
		B: f.Offset.Y - f.Height/2,
		R: f.Offset.X + f.Width/2,
		T: f.Offset.Y + f.Height/2,
	}
	shape := cp.NewBox2(f.body.cp, bb, 0)
	shape.SetSensor(f.Type.sensor())
	shape.SetCollisionType(cp.CollisionType(f.Type))
	shape.UserData = f
	f.shape = shape
	return shape
}
