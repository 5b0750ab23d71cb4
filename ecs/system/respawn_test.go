package system

import (
	"testing"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/physics"
)

func respawnWorld(t *testing.T, at common.Vec2, input component.Input) (*ecs.World, *physics.Body) {
	t.Helper()
	w := ecs.NewWorld()
	level := ecs.CreateEntity(w)
	if err := ecs.Add(w, level, component.LevelComponent, &component.Level{Name: "l", Bounds: common.Rect{W: 512, H: 384}}); err != nil {
		t.Fatalf("add level: %v", err)
	}
	body := physics.NewBody(physics.BodyDef{Type: physics.BodyDynamic, Position: at, Width: 16, Height: 24, Mass: 1})
	body.SetVelocity(common.Vec2{X: 10, Y: -300})
	e := ecs.CreateEntity(w)
	for _, err := range []error{
		ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}),
		ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body}),
		ecs.Add(w, e, component.CheckpointComponent, &component.Checkpoint{Position: common.Vec2{X: 50, Y: 50}, Room: "entry"}),
		ecs.Add(w, e, component.InputComponent, &input),
	} {
		if err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return w, body
}

func TestRespawnSystem(t *testing.T) {
	tests := []struct {
		name    string
		at      common.Vec2
		input   component.Input
		respawn bool
	}{
		{"inside", common.Vec2{X: 100, Y: 100}, component.Input{}, false},
		{"fell_out", common.Vec2{X: 100, Y: -40}, component.Input{}, true},
		{"requested", common.Vec2{X: 100, Y: 100}, component.Input{Respawn: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := respawnWorld(t, tt.at, tt.input)
			NewRespawnSystem().Update(w)

			spawned := len(w.Events().Of(ecs.EventPlayerSpawn)) == 1
			if spawned != tt.respawn {
				t.Fatalf("spawned = %v, want %v", spawned, tt.respawn)
			}
			if !tt.respawn {
				if body.Position() != tt.at {
					t.Fatalf("player moved to %v", body.Position())
				}
				return
			}
			if body.Position() != (common.Vec2{X: 50, Y: 50}) || body.Velocity() != (common.Vec2{}) {
				t.Fatalf("player at %v moving %v after respawn", body.Position(), body.Velocity())
			}
		})
	}
}
