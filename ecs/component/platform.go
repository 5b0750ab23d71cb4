package component

import "github.com/milk9111/roomscroller/common"

// MovingPlatform shuttles a kinematic block between From and To.
type MovingPlatform struct {
	From    common.Vec2
	To      common.Vec2
	Speed   float64
	Forward bool
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
