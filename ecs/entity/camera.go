package entity

import (
	"fmt"

	"github.com/milk9111/roomscroller/common"
	"github.com/milk9111/roomscroller/ecs"
	"github.com/milk9111/roomscroller/ecs/component"
)

func NewCamera(w *ecs.World, at common.Vec2) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &component.Camera{
		TargetName: "player",
		Position:   at,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
