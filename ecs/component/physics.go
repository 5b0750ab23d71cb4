package component

import "github.com/milk9111/roomscroller/physics"

// PhysicsBody links an entity to its body in the physics world.
type PhysicsBody struct {
	Body *physics.Body
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
