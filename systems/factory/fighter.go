package factory

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter for role at its initial position. Clips are
// validated before anything is added to the world.
func CreateFighter(ecs *ecs.ECS, role cfg.Role, tuning cfg.Tuning, mc *cfg.MatchConfig, provider animations.Provider) (*donburi.Entry, error) {
	animData, unready, err := GenerateAnimations(tuning.Animation, provider)
	if err != nil {
		return nil, fmt.Errorf("%s fighter: %w", role, err)
	}
	if len(unready) > 0 {
		log.Printf("%s fighter: animations not loaded, using defaults for %s", role, strings.Join(unready, ", "))
	}

	roleTag := tags.Controlled
	if role == cfg.Autonomous {
		roleTag = tags.Autonomous
	}
	fighter := archetypes.Fighter.Spawn(ecs, roleTag)

	obj := resolv.NewObject(mc.SpawnX(role), 0, tuning.Fighter.Width, tuning.Fighter.Height, tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Fighter.SetValue(fighter, components.FighterData{Role: role})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Gravity:  tuning.Physics.Gravity,
		Friction: tuning.Physics.Friction,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: tuning.Fighter.Health,
		Max:     tuning.Fighter.Health,
	})
	components.Stamina.SetValue(fighter, components.StaminaData{
		Current: tuning.Fighter.Stamina,
		Max:     tuning.Fighter.Stamina,
	})
	components.CommandQueue.SetValue(fighter, components.CommandQueueData{})
	components.Animation.Set(fighter, animData)

	ResetFighter(fighter, tuning, mc, 0)
	return fighter, nil
}

// ResetFighter puts a fighter back to the start of a round on stage: full
// vitals, Idle, standing on the floor at its initial position. Pending
// commands and deferred tasks are discarded.
func ResetFighter(e *donburi.Entry, tuning cfg.Tuning, mc *cfg.MatchConfig, stage int) {
	fighter := components.Fighter.Get(e)
	fighter.ClearAction()
	fighter.Invalidate()
	fighter.AttackCooldown = 0
	fighter.DodgeCooldown = 0
	fighter.Combo = 0

	components.Health.Get(e).Reset()
	stamina := components.Stamina.Get(e)
	stamina.Current = stamina.Max
	components.CommandQueue.Get(e).Drain()

	obj := components.Object.Get(e)
	obj.X = mc.SpawnX(fighter.Role)
	obj.Y = mc.StageFloor(stage) - obj.H
	obj.Update()

	physics := components.Physics.Get(e)
	physics.Velocity.X = 0
	physics.Velocity.Y = 0
	physics.Grounded = true
	physics.Facing = cfg.DirectionRight
	if mc.SpawnX(fighter.Role.Opponent()) < obj.X {
		physics.Facing = cfg.DirectionLeft
	}

	state := components.State.Get(e)
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.Idle
	state.StateTimer = 0
	components.Animation.Get(e).SetAnimation(cfg.Idle)
}

// DropIn lifts a reset fighter height above the floor so it falls in.
func DropIn(e *donburi.Entry, height float64) {
	obj := components.Object.Get(e)
	obj.Y -= height
	obj.Update()
	components.Physics.Get(e).Grounded = false
}

// LinkOpponents makes a and b each other's designated opponent.
func LinkOpponents(a, b *donburi.Entry) {
	components.Fighter.Get(a).Opponent = b.Entity()
	components.Fighter.Get(b).Opponent = a.Entity()
}

// AttachBot gives a fighter a decision engine. The first decision is made on
// the fighter's first tick.
func AttachBot(e *donburi.Entry, strategy components.BotStrategy, rng *rand.Rand, level cfg.BotDifficultyConfig) {
	donburi.Add(e, components.Bot, &components.BotData{
		Strategy:      strategy,
		Rand:          rng,
		Aggression:    level.Aggression,
		ReactionScale: level.ReactionScale,
	})
}
