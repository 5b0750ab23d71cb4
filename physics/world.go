package physics

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/roomscroller/common"
)

// WorldConfig tunes the fixed-step simulation.
type WorldConfig struct {
	Gravity  common.Vec2
	Step     float64
	MaxSteps int
}

func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Gravity:  common.Vec2{Y: common.Gravity},
		Step:     common.PhysicsStep,
		MaxSteps: common.MaxPhysicsStepsPerFrame,
	}
}

// World owns the Chipmunk space and turns its collision callbacks into
// contact events for the dispatcher.
type World struct {
	cfg   WorldConfig
	space *cp.Space

	bodies     []*Body
	dispatcher *ContactDispatcher
	pending    []Contact

	accumulator float64
	steps       uint64
}

func NewWorld(cfg WorldConfig) *World {
	if cfg.Step <= 0 {
		cfg.Step = common.PhysicsStep
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = common.MaxPhysicsStepsPerFrame
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(toCP(cfg.Gravity))

	w := &World{
		cfg:        cfg,
		space:      space,
		dispatcher: NewContactDispatcher(),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

// Steps is the number of fixed steps run so far.
func (w *World) Steps() uint64 {
	return w.steps
}

func (w *World) AddBody(b *Body) {
	if w == nil || b == nil {
		return
	}
	w.space.AddBody(b.cp)
	for _, f := range b.fixtures {
		w.space.AddShape(f.shape)
	}
	b.recordPrior()
	w.bodies = append(w.bodies, b)
}

// RemoveBody takes b out of the space. Separate callbacks raised by the
// removal are dispatched with the next step.
func (w *World) RemoveBody(b *Body) {
	if w == nil || b == nil {
		return
	}
	idx := -1
	for i, other := range w.bodies {
		if other == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	for _, f := range b.fixtures {
		w.space.RemoveShape(f.shape)
	}
	w.space.RemoveBody(b.cp)
	w.bodies = append(w.bodies[:idx], w.bodies[idx+1:]...)
}

// Advance runs as many fixed steps as frameDt covers and returns how many
// ran. Leftover time carries to the next frame.
func (w *World) Advance(frameDt float64) int {
	if w == nil || frameDt <= 0 {
		return 0
	}
	w.accumulator += frameDt
	n := 0
	for w.accumulator >= w.cfg.Step && n < w.cfg.MaxSteps {
		w.Step(w.cfg.Step)
		w.accumulator -= w.cfg.Step
		n++
	}
	if n == w.cfg.MaxSteps && w.accumulator >= w.cfg.Step {
		log.Printf("physics: dropped %.4fs behind after %d steps", w.accumulator, n)
		w.accumulator = math.Mod(w.accumulator, w.cfg.Step)
	}
	return n
}

// Step records every prior position, integrates once, then dispatches the
// contacts the step produced.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.recordPrior()
	}
	w.space.Step(dt)
	w.steps++
	w.dispatcher.Dispatch(w.pending)
	w.pending = w.pending[:0]
}

func (w *World) setupHandlers() {
	for _, t := range []FixtureType{FixtureFeet, FixtureSide, FixtureHead} {
		handler := w.space.NewCollisionHandler(cp.CollisionType(t), cp.CollisionType(FixtureWorldBlock))
		handler.UserData = w
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			if world, ok := userData.(*World); ok {
				world.queue(PhaseBegin, arb)
			}
			return true
		}
		handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			world, ok := userData.(*World)
			if ok && !arb.IsFirstContact() {
				world.queue(PhaseContinue, arb)
			}
			return true
		}
		handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			if world, ok := userData.(*World); ok {
				world.queue(PhaseEnd, arb)
			}
		}
	}
}

func (w *World) queue(phase Phase, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	a, okA := shapeA.UserData.(*Fixture)
	b, okB := shapeB.UserData.(*Fixture)
	if !okA || !okB {
		return
	}
	w.pending = append(w.pending, Contact{Phase: phase, A: a, B: b})
}
