package systems

import (
	"math"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// canAct reports whether a fighter accepts a new action at all.
func canAct(e *donburi.Entry) bool {
	if components.State.Get(e).CurrentState == cfg.Defeated {
		return false
	}
	return !components.Fighter.Get(e).Locked
}

func changeState(e *donburi.Entry, next cfg.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
	components.Animation.Get(e).SetAnimation(next)
}

// Attack starts a new attack activation. It is rejected while locked, on
// cooldown or without enough stamina.
func Attack(w donburi.World, e *donburi.Entry) bool {
	if !canAct(e) {
		return false
	}
	fighter := components.Fighter.Get(e)
	if fighter.AttackCooldown > 0 {
		return false
	}
	tuning := getRules(w).Tuning.Fighter
	if !components.Stamina.Get(e).Spend(tuning.AttackStaminaCost) {
		return false
	}

	fighter.Invalidate()
	fighter.Locked = true
	fighter.Attacking = true
	fighter.HasLanded = false
	fighter.MoveDir = 0
	fighter.AttackCooldown = tuning.AttackCooldownMs
	changeState(e, cfg.Attack)
	return true
}

// Block raises the guard. The guard stays up until ReleaseBlock is called
// and the block clip has played at least once. A positive holdMs schedules
// the release.
func Block(w donburi.World, e *donburi.Entry, holdMs float64) bool {
	if !canAct(e) {
		return false
	}
	fighter := components.Fighter.Get(e)
	fighter.Invalidate()
	fighter.Locked = true
	fighter.Blocking = true
	fighter.BlockReleased = false
	fighter.MoveDir = 0
	components.Physics.Get(e).Velocity.X = 0
	changeState(e, cfg.Block)

	if holdMs > 0 {
		Schedule(w, e, holdMs, func(w donburi.World, owner *donburi.Entry) {
			ReleaseBlock(owner)
		})
	}
	return true
}

// ReleaseBlock records that the guard is no longer held. The guard drops at
// the next lock completion check.
func ReleaseBlock(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	if fighter.Blocking {
		fighter.BlockReleased = true
	}
}

// Dodge starts an invulnerable step. The direction follows the current
// horizontal velocity, or backs away from the facing direction when standing.
func Dodge(w donburi.World, e *donburi.Entry) bool {
	if !canAct(e) {
		return false
	}
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	if fighter.DodgeCooldown > 0 || !physics.Grounded {
		return false
	}
	tuning := getRules(w).Tuning.Fighter
	if !components.Stamina.Get(e).Spend(tuning.DodgeStaminaCost) {
		return false
	}

	dir := -physics.Facing
	if math.Abs(physics.Velocity.X) > tuning.WalkStopSpeed {
		dir = sign(physics.Velocity.X)
	}

	fighter.Invalidate()
	fighter.Locked = true
	fighter.Dodging = true
	fighter.Invulnerable = true
	fighter.MoveDir = 0
	fighter.DodgeCooldown = tuning.DodgeCooldownMs
	physics.Velocity.X = dir * tuning.DodgeImpulse
	changeState(e, cfg.Dodge)
	return true
}

// Move starts walking in dir. Locked fighters ignore it.
func Move(w donburi.World, e *donburi.Entry, dir float64) bool {
	if !canAct(e) || dir == 0 {
		return false
	}
	fighter := components.Fighter.Get(e)
	fighter.MoveDir = sign(dir)
	components.Physics.Get(e).Velocity.X = fighter.MoveDir * getRules(w).Tuning.Fighter.MoveSpeed
	changeState(e, cfg.Walk)
	return true
}

// Stop ends walking. Friction brings the fighter to rest.
func Stop(e *donburi.Entry) bool {
	if !canAct(e) {
		return false
	}
	components.Fighter.Get(e).MoveDir = 0
	if components.State.Get(e).CurrentState == cfg.Walk {
		changeState(e, cfg.Idle)
	}
	return true
}

// UpdateCooldowns decays timers and regenerates stamina.
func UpdateCooldowns(ecs *ecs.ECS) {
	dt := getMatch(ecs.World).DeltaMs
	regen := getRules(ecs.World).Tuning.Fighter.StaminaRegenPerMs

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.CurrentState == cfg.Defeated {
			return
		}
		state.StateTimer += dt

		fighter := components.Fighter.Get(e)
		fighter.AttackCooldown = math.Max(0, fighter.AttackCooldown-dt)
		fighter.DodgeCooldown = math.Max(0, fighter.DodgeCooldown-dt)

		if !fighter.Attacking && !fighter.Dodging {
			components.Stamina.Get(e).Regen(regen * dt)
		}
	})
}

// UpdateAnimations advances the active clip of every fighter.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := getMatch(ecs.World).DeltaMs
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if clip := components.Animation.Get(e).Current(); clip != nil {
			clip.Advance(dt)
		}
	})
}

// UpdateLocks releases finished locked actions and settles walking fighters
// that stopped moving.
func UpdateLocks(ecs *ecs.ECS) {
	stopSpeed := getRules(ecs.World).Tuning.Fighter.WalkStopSpeed

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		state := components.State.Get(e)
		clip := components.Animation.Get(e).Current()

		switch state.CurrentState {
		case cfg.Attack, cfg.Dodge:
			if clip == nil || clip.Finished() {
				completeAction(e)
			}
		case cfg.Block:
			if fighter.BlockReleased && (clip == nil || clip.Loops() >= 1 || clip.Finished()) {
				completeAction(e)
			}
		case cfg.Walk:
			vx := components.Physics.Get(e).Velocity.X
			if fighter.MoveDir == 0 && math.Abs(vx) < stopSpeed {
				changeState(e, cfg.Idle)
			}
		}
	})
}

// completeAction is the state machine's own transition out of a locked
// action. Deferred tasks of the finished action become stale.
func completeAction(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	fighter.ClearAction()
	fighter.Invalidate()
	changeState(e, cfg.Idle)
}

func sign(v float64) float64 {
	if v < 0 {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}
