package entity

import (
	"fmt"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
	"github.com/milk9111/roomscroller/prefabs"
)

const (
	// sensor thickness in world units
	sensorDepth = 4
	// sensors are inset so a wall does not register as ground
	sensorInset = 2
)

// PlayerBody builds the player body with its feet, head and side sensors.
func PlayerBody(spec prefabs.PlayerSpec, at common.Vec2) *physics.Body {
	w, h := spec.Body.Width, spec.Body.Height
	body := physics.NewBody(physics.BodyDef{
		Name:     spec.Name,
		Type:     physics.BodyDynamic,
		Position: at,
		Width:    w,
		Height:   h,
		Mass:     spec.Body.Mass,
	})
	body.AddFixture(physics.FixtureBody, common.Vec2{}, w, h)
	body.AddFixture(physics.FixtureFeet, common.Vec2{Y: -h / 2}, w-2*sensorInset, sensorDepth)
	body.AddFixture(physics.FixtureHead, common.Vec2{Y: h / 2}, w-2*sensorInset, sensorDepth)
	body.AddSideFixture(physics.SideLeft, common.Vec2{X: -w / 2}, sensorDepth, h-2*sensorInset)
	body.AddSideFixture(physics.SideRight, common.Vec2{X: w / 2}, sensorDepth, h-2*sensorInset)
	return body
}

func NewPlayer(w *ecs.World, spawn common.Vec2, room string) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, spec, spawn, room)
}

func NewPlayerFromSpec(w *ecs.World, spec prefabs.PlayerSpec, spawn common.Vec2, room string) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent, &component.Player{
		MoveSpeed:      spec.Movement.MoveSpeed * common.PPM,
		JumpSpeed:      spec.Movement.JumpSpeed * common.PPM,
		WallSlideSpeed: spec.Movement.WallSlideSpeed * common.PPM,
		MaxFallSpeed:   spec.Movement.MaxFallSpeed * common.PPM,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerStateComponent, &component.PlayerState{}); err != nil {
		return 0, fmt.Errorf("player: add player state: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent, &component.PhysicsBody{Body: PlayerBody(spec, spawn)}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.CheckpointComponent, &component.Checkpoint{Position: spawn, Room: room}); err != nil {
		return 0, fmt.Errorf("player: add checkpoint: %w", err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Animations))
	for _, a := range spec.Animations {
		defs[a.Name] = component.AnimationDef{Name: a.Name, FrameCount: a.Frames, FPS: a.FPS, Loop: a.Loop}
	}
	if err := ecs.Add(w, player, component.AnimationComponent, &component.Animation{Defs: defs}); err != nil {
		return 0, fmt.Errorf("player: add animation: %w", err)
	}
	return player, nil
}
