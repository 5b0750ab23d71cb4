package component

import (
	"github.com/milk9111/roomscroller/camera"
	"github.com/milk9111/roomscroller/common"
)

// Level stores the loaded level's rooms and world-space bounds.
type Level struct {
	Name   string
	Rooms  []camera.Room
	Bounds common.Rect
}

var LevelComponent = NewComponent[Level]()

// Checkpoint is where the player returns after leaving the level bounds.
type Checkpoint struct {
	Position common.Vec2
	Room     string
}

var CheckpointComponent = NewComponent[Checkpoint]()
