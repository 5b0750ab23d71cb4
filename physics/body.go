package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomscroller/common"
)

type BodyType int

const (
	BodyStatic BodyType = iota
	BodyKinematic
	BodyDynamic
)

// HitHooks receives the begin-contact notifications of a block body. by is
// the body whose fixture touched the block.
type HitHooks interface {
	HitByFeet(by *Body)
	HitBySide(by *Body, side Side)
	HitByHead(by *Body)
}

// BodyDef describes a body before it is created. Position is the center.
type BodyDef struct {
	Name     string
	Type     BodyType
	Position common.Vec2
	Width    float64
	Height   float64
	Mass     float64
}

// Body pairs a Chipmunk body with the state derived from its contacts.
// Senses only change through contact dispatch.
type Body struct {
	Name  string
	Type  BodyType
	Hooks HitHooks

	width  float64
	height float64

	cp       *cp.Body
	fixtures []*Fixture

	senses Sense
	prior  common.Vec2
}

func NewBody(def BodyDef) *Body {
	var body *cp.Body
	switch def.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	case BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := def.Mass
		if mass <= 0 {
			mass = 1
		}
		// fixed rotation
		body = cp.NewBody(mass, math.Inf(1))
	}
	body.SetPosition(toCP(def.Position))

	b := &Body{
		Name:   def.Name,
		Type:   def.Type,
		width:  def.Width,
		height: def.Height,
		cp:     body,
		prior:  def.Position,
	}
	body.UserData = b
	return b
}

// AddFixture attaches a box of the given type. Attach fixtures before the
// body is added to a World.
func (b *Body) AddFixture(t FixtureType, offset common.Vec2, w, h float64) *Fixture {
	f := &Fixture{Type: t, Offset: offset, Width: w, Height: h, body: b}
	f.newShape()
	b.fixtures = append(b.fixtures, f)
	return f
}

func (b *Body) AddSideFixture(side Side, offset common.Vec2, w, h float64) *Fixture {
	f := b.AddFixture(FixtureSide, offset, w, h)
	f.Side = side
	return f
}

func (b *Body) Fixtures() []*Fixture {
	return b.fixtures
}

func (b *Body) Position() common.Vec2 {
	return fromCP(b.cp.Position())
}

func (b *Body) SetPosition(p common.Vec2) {
	b.cp.SetPosition(toCP(p))
}

func (b *Body) Translate(d common.Vec2) {
	if d == (common.Vec2{}) {
		return
	}
	b.SetPosition(b.Position().Add(d))
}

func (b *Body) Velocity() common.Vec2 {
	return fromCP(b.cp.Velocity())
}

func (b *Body) SetVelocity(v common.Vec2) {
	b.cp.SetVelocity(v.X, v.Y)
}

func (b *Body) Size() (float64, float64) {
	return b.width, b.height
}

// Bounds returns the body rectangle centered on its position.
func (b *Body) Bounds() common.Rect {
	return common.RectAround(b.Position(), b.width, b.height)
}

// PriorPosition is the position recorded before the last physics step.
func (b *Body) PriorPosition() common.Vec2 {
	return b.prior
}

// PositionDelta is the displacement produced by the last physics step.
func (b *Body) PositionDelta() common.Vec2 {
	return b.Position().Sub(b.prior)
}

func (b *Body) IsSensing(s Sense) bool {
	return b.senses.Has(s)
}

func (b *Body) IsSensingAny(senses ...Sense) bool {
	for _, s := range senses {
		if b.senses.Has(s) {
			return true
		}
	}
	return false
}

func (b *Body) Senses() Sense {
	return b.senses
}

func (b *Body) setSense(s Sense, on bool) {
	b.senses = b.senses.with(s, on)
}

func (b *Body) recordPrior() {
	b.prior = b.Position()
}

func toCP(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}
