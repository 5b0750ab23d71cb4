package system

import (
	"math"

	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

const (
	AnimIdle      = "idle"
	AnimRun       = "run"
	AnimJump      = "jump"
	AnimFall      = "fall"
	AnimWallSlide = "wall_slide"
)

// AnimationSystem picks the player clip from its state and advances every
// playing clip by the frame delta.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerStateComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.AnimationComponent.Kind(), func(e ecs.Entity, state *component.PlayerState, pb *component.PhysicsBody, anim *component.Animation) {
		if pb.Body == nil {
			return
		}
		play(anim, playerClip(state, pb.Body.Velocity().X, pb.Body.Velocity().Y))
	})

	dt := w.Delta()
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		advance(anim, dt)
	})
}

func playerClip(state *component.PlayerState, vx, vy float64) string {
	switch {
	case state.WallSliding:
		return AnimWallSlide
	case !state.Grounded && vy > 0:
		return AnimJump
	case !state.Grounded:
		return AnimFall
	case math.Abs(vx) > 1:
		return AnimRun
	default:
		return AnimIdle
	}
}

func play(anim *component.Animation, name string) {
	if anim.Current == name {
		return
	}
	if _, ok := anim.Defs[name]; !ok {
		return
	}
	anim.Current = name
	anim.Frame = 0
	anim.Elapsed = 0
	anim.Playing = true
}

func advance(anim *component.Animation, dt float64) {
	if !anim.Playing {
		return
	}
	def, ok := anim.Defs[anim.Current]
	if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
		return
	}
	step := 1 / def.FPS
	anim.Elapsed += dt
	for anim.Elapsed >= step {
		anim.Elapsed -= step
		anim.Frame++
		if anim.Frame < def.FrameCount {
			continue
		}
		if def.Loop {
			anim.Frame = 0
			continue
		}
		anim.Frame = def.FrameCount - 1
		anim.Playing = false
		anim.Elapsed = 0
		return
	}
}
