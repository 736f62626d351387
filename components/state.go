package components

import (
	"github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // ms spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
