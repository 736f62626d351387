package components

import (
	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// AnimationData owns one clip per action. Clips are never shared between
// fighters.
type AnimationData struct {
	Clips        map[config.StateID]*animations.Clip
	Ready        map[config.StateID]bool // Provider had the resource loaded
	CurrentSheet config.StateID
}

// SetAnimation switches to the clip of state and rewinds it.
func (a *AnimationData) SetAnimation(state config.StateID) {
	a.CurrentSheet = state
	if c, ok := a.Clips[state]; ok {
		c.Reset()
	}
}

// Current returns the active clip, or nil when the state has none.
func (a *AnimationData) Current() *animations.Clip {
	return a.Clips[a.CurrentSheet]
}

var Animation = donburi.NewComponentType[AnimationData]()
