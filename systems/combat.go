package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitOutcome classifies a resolved swing.
type HitOutcome int

const (
	HitMiss    HitOutcome = iota // Out of range
	HitNegated                   // Defender invulnerable
	HitBlocked
	HitLanded
)

func (o HitOutcome) String() string {
	switch o {
	case HitNegated:
		return "negated"
	case HitBlocked:
		return "blocked"
	case HitLanded:
		return "landed"
	}
	return "miss"
}

// HitParams are the fixed numbers of one attack.
type HitParams struct {
	Range          float64
	BaseDamage     float64
	Jitter         float64 // Base damage varies uniformly by +/- Jitter
	BlockReduction float64
}

// HitParamsFrom builds hit parameters from the combat configuration.
func HitParamsFrom(c cfg.CombatConfig) HitParams {
	return HitParams{
		Range:          c.AttackRange,
		BaseDamage:     c.BaseDamage,
		Jitter:         c.DamageJitter,
		BlockReduction: c.BlockReduction,
	}
}

// Defender is what hit resolution needs to know about the target.
type Defender struct {
	X            float64
	Blocking     bool
	Invulnerable bool
}

// ResolveHit computes the damage of one swing. It knows nothing about
// animation timing and does not mutate anything; rng may be nil when Jitter
// is zero.
func ResolveHit(attackerX float64, d Defender, p HitParams, rng *rand.Rand) (float64, HitOutcome) {
	if math.Abs(attackerX-d.X) >= p.Range {
		return 0, HitMiss
	}
	if d.Invulnerable {
		return 0, HitNegated
	}

	damage := p.BaseDamage
	if p.Jitter > 0 && rng != nil {
		damage += (rng.Float64()*2 - 1) * p.Jitter
	}
	if d.Blocking {
		return damage * p.BlockReduction, HitBlocked
	}
	return damage, HitLanded
}

// UpdateCombat checks every attacker's hit window. A swing is resolved once
// per activation: the latch is set on the first tick the window is open,
// whether or not the swing connects.
func UpdateCombat(ecs *ecs.ECS) {
	delay := getRules(ecs.World).Tuning.Combat.HitDelayMs

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		if !fighter.Attacking || fighter.HasLanded {
			return
		}
		if components.State.Get(e).CurrentState == cfg.Defeated || components.Health.Get(e).Current <= 0 {
			return
		}
		clip := components.Animation.Get(e).Current()
		if clip == nil || !clip.InHitWindow() {
			return
		}

		fighter.HasLanded = true
		if delay > 0 {
			Schedule(ecs.World, e, delay, applyHit)
			return
		}
		applyHit(ecs.World, e)
	})
}

// applyHit resolves attacker's swing against its opponent as they stand now.
func applyHit(w donburi.World, attacker *donburi.Entry) {
	target := opponentOf(w, attacker)
	if target == nil || components.State.Get(target).CurrentState == cfg.Defeated {
		return
	}
	rules := getRules(w)
	af := components.Fighter.Get(attacker)
	df := components.Fighter.Get(target)

	damage, outcome := ResolveHit(
		components.Object.Get(attacker).X,
		Defender{
			X:            components.Object.Get(target).X,
			Blocking:     df.Blocking,
			Invulnerable: df.Invulnerable,
		},
		HitParamsFrom(rules.Tuning.Combat),
		rules.Rand,
	)
	if outcome == HitMiss || outcome == HitNegated {
		return
	}

	if outcome == HitLanded {
		af.Combo++
	} else {
		af.Combo = 0
	}
	df.Combo = 0

	health := components.Health.Get(target)
	applied := health.Apply(damage)
	DamageEvents.Publish(w, DamageEvent{
		Target:   df.Role,
		Attacker: af.Role,
		Amount:   applied,
		Health:   health.Current,
		Blocked:  outcome == HitBlocked,
		Combo:    af.Combo,
	})

	if health.Current <= 0 {
		Defeat(w, target)
	}
}

func opponentOf(w donburi.World, e *donburi.Entry) *donburi.Entry {
	opp := components.Fighter.Get(e).Opponent
	if !w.Valid(opp) {
		return nil
	}
	return w.Entry(opp)
}
