package system

import (
	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
)

// PlayerControllerSystem turns input and body senses into player velocity.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach4(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.PlayerStateComponent.Kind(),
		func(e ecs.Entity, player *component.Player, input *component.Input, pb *component.PhysicsBody, state *component.PlayerState) {
			if pb.Body == nil {
				return
			}
			pb.Body.SetVelocity(steer(player, input, pb.Body, state))
		})
}

func steer(player *component.Player, input *component.Input, body *physics.Body, state *component.PlayerState) common.Vec2 {
	v := body.Velocity()
	v.X = input.MoveX * player.MoveSpeed

	state.Grounded = body.IsSensing(physics.FeetOnGround)
	state.HeadBonked = body.IsSensing(physics.HeadTouchingBlock) && v.Y > 0
	state.Jumped = false
	switch {
	case input.MoveX < 0:
		state.Facing = component.FacingLeft
	case input.MoveX > 0:
		state.Facing = component.FacingRight
	}

	if state.Grounded && input.JumpPressed {
		v.Y = player.JumpSpeed
		state.Jumped = true
	}
	if state.HeadBonked {
		v.Y = 0
	}

	pushingLeft := input.MoveX < 0 && body.IsSensing(physics.SideTouchingBlockLeft)
	pushingRight := input.MoveX > 0 && body.IsSensing(physics.SideTouchingBlockRight)
	state.WallSliding = !state.Grounded && (pushingLeft || pushingRight) && v.Y < 0
	if state.WallSliding && v.Y < -player.WallSlideSpeed {
		v.Y = -player.WallSlideSpeed
	}
	if player.MaxFallSpeed > 0 && v.Y < -player.MaxFallSpeed {
		v.Y = -player.MaxFallSpeed
	}
	return v
}
