package components

import (
	"github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// FighterData holds the combat flags and timers of one combatant.
type FighterData struct {
	Role     config.Role
	Opponent donburi.Entity

	Attacking    bool
	Blocking     bool
	Dodging      bool
	Invulnerable bool
	Locked       bool // A committed action must run to completion

	HasLanded     bool   // Hit latch, reset when a new attack activation begins
	BlockReleased bool   // blockHeld(false) arrived while the guard was up
	Generation    uint64 // Bumped on every locked transition, defeat and reset

	// Timers (ms)
	AttackCooldown float64
	DodgeCooldown  float64

	MoveDir float64 // Held walk direction, 0 when standing
	Combo   int     // Consecutive unblocked hits landed
}

var Fighter = donburi.NewComponentType[FighterData]()

// Invalidate bumps the generation so pending deferred tasks become stale.
func (f *FighterData) Invalidate() {
	f.Generation++
}

// ClearAction drops every flag owned by a locked action.
func (f *FighterData) ClearAction() {
	f.Attacking = false
	f.Blocking = false
	f.Dodging = false
	f.Invulnerable = false
	f.Locked = false
	f.HasLanded = false
	f.BlockReleased = false
	f.MoveDir = 0
}
