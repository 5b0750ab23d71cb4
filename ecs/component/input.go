package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool
	// Respawn asks for a manual respawn at the last checkpoint.
	Respawn bool
}

var InputComponent = NewComponent[Input]()
