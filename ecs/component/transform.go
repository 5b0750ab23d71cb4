package component

// Transform is the world-space center of an entity. Bodies own their
// position; the physics system copies it here after each frame.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
