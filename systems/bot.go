package systems

import (
	"math/rand"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TieredStrategy draws from a fixed distribution per distance band. Close
// range favours attack and block, far range always approaches.
type TieredStrategy struct {
	Config cfg.BotConfigData
}

func NewTieredStrategy(c cfg.BotConfigData) *TieredStrategy {
	return &TieredStrategy{Config: c}
}

func (s *TieredStrategy) Decide(p components.Perception, rng *rand.Rand) components.Decision {
	c := s.Config
	if p.Distance >= c.MediumRange {
		return components.Decision{Choice: components.ChoiceApproach, CooldownMs: c.Far.CooldownMs}
	}

	tier := c.Medium
	if p.Distance < c.CloseRange {
		tier = c.Close
	}

	w := tier.Weights
	w.Attack *= 0.5 + p.Aggression
	if p.OpponentAttacking {
		w.Block *= c.ReactiveBlockBoost
	}
	return components.Decision{Choice: draw(w, rng), CooldownMs: tier.CooldownMs}
}

// draw picks one choice with probability proportional to its weight.
func draw(w cfg.BotWeights, rng *rand.Rand) components.BotChoice {
	options := [...]struct {
		choice components.BotChoice
		weight float64
	}{
		{components.ChoiceAttack, w.Attack},
		{components.ChoiceBlock, w.Block},
		{components.ChoiceRetreat, w.Retreat},
		{components.ChoiceApproach, w.Approach},
	}

	total := 0.0
	for _, o := range options {
		if o.weight > 0 {
			total += o.weight
		}
	}
	if total <= 0 {
		return components.ChoiceNone
	}

	r := rng.Float64() * total
	last := components.ChoiceNone
	for _, o := range options {
		if o.weight <= 0 {
			continue
		}
		last = o.choice
		if r < o.weight {
			return o.choice
		}
		r -= o.weight
	}
	return last
}

// UpdateBots runs the decision engine of every autonomous fighter. Decisions
// become commands in the fighter's own queue, so they are validated exactly
// like human input. Must run before UpdateCommands.
func UpdateBots(ecs *ecs.ECS) {
	dt := getMatch(ecs.World).DeltaMs
	tuning := getRules(ecs.World).Tuning.Bot

	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		if components.State.Get(e).CurrentState == cfg.Defeated {
			return
		}
		opp := opponentOf(ecs.World, e)
		if opp == nil {
			return
		}
		bot := components.Bot.Get(e)
		fighter := components.Fighter.Get(e)
		queue := components.CommandQueue.Get(e)
		p := perceive(e, opp, bot)

		if fighter.MoveDir != 0 && walkDone(bot.LastChoice, p.Distance, tuning) {
			queue.Push(components.Command{ID: cfg.CommandMoveStop})
		}

		if bot.DecisionCooldown > 0 {
			bot.DecisionCooldown -= dt
		}
		if bot.DecisionCooldown > 0 || fighter.Locked || bot.Strategy == nil {
			return
		}

		decision := bot.Strategy.Decide(p, bot.Rand)
		bot.LastChoice = decision.Choice
		bot.DecisionCooldown = decision.CooldownMs * bot.ReactionScale

		switch decision.Choice {
		case components.ChoiceAttack:
			queue.Push(components.Command{ID: cfg.CommandAttack})
		case components.ChoiceBlock:
			queue.Push(components.Command{ID: cfg.CommandBlock, HoldMs: tuning.BlockHoldMs})
		case components.ChoiceApproach:
			if !walkDone(decision.Choice, p.Distance, tuning) {
				queue.Push(components.Command{ID: moveCommand(p.Offset)})
			}
		case components.ChoiceRetreat:
			if !walkDone(decision.Choice, p.Distance, tuning) {
				queue.Push(components.Command{ID: moveCommand(-p.Offset)})
			}
		}
	})
}

// walkDone reports whether a walk started for choice has reached its goal
// distance. Walks from other choices are left alone.
func walkDone(choice components.BotChoice, distance float64, c cfg.BotConfigData) bool {
	switch choice {
	case components.ChoiceApproach:
		return distance <= c.ApproachStop
	case components.ChoiceRetreat:
		return distance >= c.RetreatStop
	}
	return false
}

func perceive(self, opp *donburi.Entry, bot *components.BotData) components.Perception {
	offset := components.Object.Get(opp).X - components.Object.Get(self).X
	distance := offset
	if distance < 0 {
		distance = -distance
	}
	return components.Perception{
		Offset:            offset,
		Distance:          distance,
		OpponentAttacking: components.Fighter.Get(opp).Attacking,
		Stamina:           components.Stamina.Get(self).Current,
		Aggression:        bot.Aggression,
	}
}

func moveCommand(dir float64) cfg.CommandID {
	if dir < 0 {
		return cfg.CommandMoveLeft
	}
	return cfg.CommandMoveRight
}
