package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2
	Gravity  float64
	Friction float64
	Grounded bool
	Facing   float64 // -1 or 1, derived from the opponent position
}

var Physics = donburi.NewComponentType[PhysicsData]()
