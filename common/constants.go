package common

// World space is Y-up with one unit per pixel.
const (
	PPM        = 32
	ViewWidth  = 16
	ViewHeight = 12

	// PhysicsStep is the fixed physics timestep in seconds.
	PhysicsStep = 1.0 / 150.0
	// MaxPhysicsStepsPerFrame caps the accumulator so a long frame cannot
	// snowball into ever more physics work.
	MaxPhysicsStepsPerFrame = 8

	Gravity = -30.0 * PPM
)
