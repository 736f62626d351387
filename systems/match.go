package systems

import (
	"log"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getMatch(w donburi.World) *components.MatchData {
	entry, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

func getRules(w donburi.World) *components.RulesData {
	entry, ok := components.Rules.First(w)
	if !ok {
		return nil
	}
	return components.Rules.Get(entry)
}

// WithMatchChecks wraps a system to skip execution once the match is
// terminal, freezing both fighters.
func WithMatchChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsMatchTerminal(e.World) {
			return
		}
		system(e)
	}
}

// IsMatchTerminal returns true once a fighter has been defeated this round.
func IsMatchTerminal(w donburi.World) bool {
	match := getMatch(w)
	return match != nil && match.Terminal
}

// UpdateMatch defeats any fighter whose health reached zero.
func UpdateMatch(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			Defeat(ecs.World, e)
		}
	})
}

// Defeat moves loser to the terminal Defeated state and ends the round.
// Calling it again for a defeated fighter does nothing.
func Defeat(w donburi.World, loser *donburi.Entry) {
	state := components.State.Get(loser)
	if state.CurrentState == cfg.Defeated {
		return
	}
	fighter := components.Fighter.Get(loser)
	fighter.ClearAction()
	fighter.Invalidate()
	components.Physics.Get(loser).Velocity.X = 0
	components.Physics.Get(loser).Velocity.Y = 0
	changeState(loser, cfg.Defeated)

	match := getMatch(w)
	if match == nil || match.Terminal {
		return
	}
	match.Terminal = true
	match.Loser = fighter.Role
	match.Winner = fighter.Role.Opponent()
	log.Printf("round %d: %s defeated after %.0fms", match.Round, fighter.Role, match.ElapsedMs)

	TerminalEvents.Publish(w, TerminalEvent{
		Winner: match.Winner,
		Loser:  match.Loser,
		Round:  match.Round,
	})
}

// AdvanceRound resets both fighters, moves to the next stage and clears the
// terminal flag. Fighters drop onto the new floor. Decision engine state is
// kept.
func AdvanceRound(ecs *ecs.ECS) {
	match := getMatch(ecs.World)
	rules := getRules(ecs.World)
	if match == nil || rules == nil {
		return
	}

	CancelAll(ecs.World)
	match.Round++
	match.Stage = (match.Stage + 1) % len(rules.Config.Stages)
	match.Terminal = false
	match.ElapsedMs = 0

	factory.PlaceFloor(ecs.World, rules.Config.StageFloor(match.Stage))
	drop := rules.Tuning.Physics.DropInHeight
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		factory.ResetFighter(e, rules.Tuning, rules.Config, match.Stage)
		if drop > 0 {
			factory.DropIn(e, drop)
		}
	})

	name := rules.Config.StageName(match.Stage)
	log.Printf("round %d: stage %d (%s)", match.Round, match.Stage, name)
	RoundAdvanceEvents.Publish(ecs.World, RoundAdvanceEvent{
		Round:     match.Round,
		Stage:     match.Stage,
		StageName: name,
	})
}
