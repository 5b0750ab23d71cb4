package entity

import (
	"fmt"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
	"github.com/milk9111/roomscroller/levels"
	"github.com/milk9111/roomscroller/physics"
)

// LoadLevelToWorld creates the level entity, one entity per merged solid
// block and one per moving platform.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}
	levelEnt := ecs.CreateEntity(w)
	if err := ecs.Add(w, levelEnt, component.LevelComponent, &component.Level{
		Name:   lvl.Name,
		Rooms:  lvl.CameraRooms(),
		Bounds: lvl.Bounds(),
	}); err != nil {
		return 0, fmt.Errorf("level: add level component: %w", err)
	}

	for i, r := range lvl.Solids() {
		name := fmt.Sprintf("%s/block/%d", lvl.Name, i)
		if _, err := NewBlock(w, name, r, physics.BodyStatic); err != nil {
			return 0, err
		}
	}

	for i, p := range lvl.Platforms() {
		name := fmt.Sprintf("%s/platform/%d", lvl.Name, i)
		e, err := NewBlock(w, name, p.Bounds, physics.BodyKinematic)
		if err != nil {
			return 0, err
		}
		if err := ecs.Add(w, e, component.MovingPlatformComponent, &component.MovingPlatform{
			From:    p.Bounds.Center(),
			To:      p.To,
			Speed:   p.Speed,
			Forward: true,
		}); err != nil {
			return 0, fmt.Errorf("level: add moving platform: %w", err)
		}
	}
	return levelEnt, nil
}

// NewBlock creates a world block covering r.
func NewBlock(w *ecs.World, name string, r common.Rect, typ physics.BodyType) (ecs.Entity, error) {
	body := physics.NewBody(physics.BodyDef{
		Name:     name,
		Type:     typ,
		Position: r.Center(),
		Width:    r.W,
		Height:   r.H,
	})
	body.AddFixture(physics.FixtureWorldBlock, common.Vec2{}, r.W, r.H)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WorldBlockComponent, &component.WorldBlock{Name: name}); err != nil {
		return 0, fmt.Errorf("block: add world block: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body}); err != nil {
		return 0, fmt.Errorf("block: add physics body: %w", err)
	}
	c := r.Center()
	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: c.X, Y: c.Y}); err != nil {
		return 0, fmt.Errorf("block: add transform: %w", err)
	}
	return e, nil
}
