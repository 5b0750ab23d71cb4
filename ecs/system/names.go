package system

const (
	NameHotReload        = "hot_reload"
	NameInput            = "input"
	NamePlayerController = "player_controller"
	NamePlatform         = "platform"
	NamePhysics          = "physics"
	NameRespawn          = "respawn"
	NameAnimation        = "animation"
	NameCamera           = "camera"
	NameTransitionFollow = "transition_follow"
	NameRoomEvent        = "room_event"
)

// GatedSystems are suspended while the camera moves between rooms.
var GatedSystems = []string{
	NameInput,
	NamePlayerController,
	NameAnimation,
	NamePlatform,
	NamePhysics,
	NameRespawn,
}

// Gate switches scheduled systems on and off by name.
type Gate interface {
	Suspend(names ...string)
	Resume(names ...string)
}
