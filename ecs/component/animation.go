package component

type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

// Animation tracks the active clip. Frame advances in whole frames at the
// clip rate; non-looping clips hold their last frame.
type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed float64
	Playing bool
}

var AnimationComponent = NewComponent[Animation]()
