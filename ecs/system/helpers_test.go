package system

import (
	"slices"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/physics"
)

// fakeGate records gating calls and the resulting enabled set.
type fakeGate struct {
	suspended map[string]bool
	calls     []string
}

func newFakeGate() *fakeGate {
	return &fakeGate{suspended: make(map[string]bool)}
}

func (g *fakeGate) Suspend(names ...string) {
	for _, n := range names {
		g.suspended[n] = true
	}
	g.calls = append(g.calls, "suspend")
}

func (g *fakeGate) Resume(names ...string) {
	for _, n := range names {
		delete(g.suspended, n)
	}
	if slices.Equal(names, GatedSystems) {
		g.calls = append(g.calls, "resume")
	} else {
		g.calls = append(g.calls, "resume:"+names[0])
	}
}

func (g *fakeGate) anySuspended() bool {
	return len(g.suspended) > 0
}

func sensorBody(at common.Vec2) *physics.Body {
	b := physics.NewBody(physics.BodyDef{Name: "player", Type: physics.BodyDynamic, Position: at, Width: 16, Height: 24, Mass: 1})
	b.AddFixture(physics.FixtureBody, common.Vec2{}, 16, 24)
	b.AddFixture(physics.FixtureFeet, common.Vec2{Y: -12}, 12, 4)
	b.AddFixture(physics.FixtureHead, common.Vec2{Y: 12}, 12, 4)
	b.AddSideFixture(physics.SideLeft, common.Vec2{X: -8}, 4, 20)
	b.AddSideFixture(physics.SideRight, common.Vec2{X: 8}, 4, 20)
	return b
}

// touch dispatches a begin contact between the body's fixture of type typ
// (and side, for side sensors) and a fresh static block.
func touch(b *physics.Body, typ physics.FixtureType, side physics.Side) {
	block := physics.NewBody(physics.BodyDef{Name: "block", Type: physics.BodyStatic, Width: 64, Height: 32})
	blockFix := block.AddFixture(physics.FixtureWorldBlock, common.Vec2{}, 64, 32)
	for _, f := range b.Fixtures() {
		if f.Type == typ && f.Side == side {
			physics.NewContactDispatcher().Dispatch([]physics.Contact{{Phase: physics.PhaseBegin, A: f, B: blockFix}})
			return
		}
	}
}
