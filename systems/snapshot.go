package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
)

// Snapshot is the read-only view of one fighter handed to presentation.
type Snapshot struct {
	Role       cfg.Role
	X, Y       float64
	Width      float64
	Height     float64
	Facing     float64
	Action     cfg.StateID
	Frame      int
	Health     float64
	MaxHealth  float64
	Stamina    float64
	MaxStamina float64
	Locked     bool
	Ready      bool // Animation resource loaded; false means draw a placeholder
	Combo      int
}

// TakeSnapshot copies the public state of a fighter.
func TakeSnapshot(e *donburi.Entry) Snapshot {
	fighter := components.Fighter.Get(e)
	obj := components.Object.Get(e)
	anim := components.Animation.Get(e)
	health := components.Health.Get(e)
	stamina := components.Stamina.Get(e)

	s := Snapshot{
		Role:       fighter.Role,
		X:          obj.X,
		Y:          obj.Y,
		Width:      obj.W,
		Height:     obj.H,
		Facing:     components.Physics.Get(e).Facing,
		Action:     components.State.Get(e).CurrentState,
		Health:     health.Current,
		MaxHealth:  health.Max,
		Stamina:    stamina.Current,
		MaxStamina: stamina.Max,
		Locked:     fighter.Locked,
		Ready:      anim.Ready[anim.CurrentSheet],
		Combo:      fighter.Combo,
	}
	if clip := anim.Current(); clip != nil {
		s.Frame = clip.Frame()
	}
	return s
}

// FighterByRole finds the fighter playing role.
func FighterByRole(w donburi.World, role cfg.Role) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Fighter.Get(e).Role == role {
			found = e
		}
	})
	return found, found != nil
}
