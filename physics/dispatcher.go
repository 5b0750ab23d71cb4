package physics

import (
	"slices"

	"github.com/milk9111/roomscroller/common"
)

// ContactDispatcher routes contact events to body senses and block hooks.
type ContactDispatcher struct{}

func NewContactDispatcher() *ContactDispatcher {
	return &ContactDispatcher{}
}

// Dispatch handles one physics step worth of events. Events are reordered
// in place so every begin runs before every continue, and every continue
// before every end. Order within a phase is kept.
func (d *ContactDispatcher) Dispatch(events []Contact) {
	slices.SortStableFunc(events, func(a, b Contact) int {
		return int(a.Phase) - int(b.Phase)
	})
	for _, c := range events {
		d.handle(c)
	}
}

func (d *ContactDispatcher) handle(c Contact) {
	if feet, block, ok := c.Match(FixtureFeet, FixtureWorldBlock); ok {
		d.feet(c.Phase, feet, block)
		return
	}
	if side, block, ok := c.Match(FixtureSide, FixtureWorldBlock); ok {
		d.side(c.Phase, side, block)
		return
	}
	if head, block, ok := c.Match(FixtureHead, FixtureWorldBlock); ok {
		d.head(c.Phase, head, block)
	}
}

func (d *ContactDispatcher) feet(phase Phase, feet, block *Fixture) {
	owner, hit := feet.Body(), block.Body()
	if owner == nil || hit == nil {
		return
	}
	if phase == PhaseEnd {
		owner.setSense(FeetOnGround, false)
		return
	}
	owner.setSense(FeetOnGround, true)
	owner.Translate(rideDelta(hit.PositionDelta()))
	if phase == PhaseBegin && hit.Hooks != nil {
		hit.Hooks.HitByFeet(owner)
	}
}

// rideDelta is the part of a block's step displacement its rider has not
// already received. Contacts are frictionless, so the solver moves riders
// vertically but never drags them sideways.
func rideDelta(d common.Vec2) common.Vec2 {
	return common.Vec2{X: d.X}
}

func (d *ContactDispatcher) side(phase Phase, side, block *Fixture) {
	flag, ok := sideSense(side.Side)
	if !ok {
		return
	}
	owner, hit := side.Body(), block.Body()
	if owner == nil || hit == nil {
		return
	}
	owner.setSense(flag, phase != PhaseEnd)
	if phase == PhaseBegin && hit.Hooks != nil {
		hit.Hooks.HitBySide(owner, side.Side)
	}
}

func (d *ContactDispatcher) head(phase Phase, head, block *Fixture) {
	owner, hit := head.Body(), block.Body()
	if owner == nil || hit == nil {
		return
	}
	owner.setSense(HeadTouchingBlock, phase != PhaseEnd)
	if phase == PhaseBegin && hit.Hooks != nil {
		hit.Hooks.HitByHead(owner)
	}
}
