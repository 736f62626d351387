package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Controlled = donburi.NewTag().SetName("Controlled")
	Autonomous = donburi.NewTag().SetName("Autonomous")
	Floor      = donburi.NewTag().SetName("Floor")
)

// Resolv tags for physics collision
const (
	ResolvSolid   = "solid"
	ResolvFighter = "fighter"
)
