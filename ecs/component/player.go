package component

// Player holds the movement tuning of the player character.
type Player struct {
	MoveSpeed      float64
	JumpSpeed      float64
	WallSlideSpeed float64
	MaxFallSpeed   float64
}

var PlayerComponent = NewComponent[Player]()

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// PlayerState is what the controller decided this frame.
type PlayerState struct {
	Facing      Facing
	Grounded    bool
	WallSliding bool
	HeadBonked  bool
	Jumped      bool
}

var PlayerStateComponent = NewComponent[PlayerState]()
