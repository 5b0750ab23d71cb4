package component

import "github.com/milk9111/roomscroller/common"

// Camera mirrors the room camera for rendering and debugging.
type Camera struct {
	TargetName    string
	Position      common.Vec2
	Room          string
	Transitioning bool
	Direction     string
}

var CameraComponent = NewComponent[Camera]()
