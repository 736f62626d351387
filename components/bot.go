package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// BotChoice is one outcome of a decision.
type BotChoice int

const (
	ChoiceNone BotChoice = iota
	ChoiceAttack
	ChoiceBlock
	ChoiceRetreat
	ChoiceApproach
)

func (c BotChoice) String() string {
	switch c {
	case ChoiceAttack:
		return "attack"
	case ChoiceBlock:
		return "block"
	case ChoiceRetreat:
		return "retreat"
	case ChoiceApproach:
		return "approach"
	}
	return "none"
}

// Perception is everything a strategy may know when it decides. It is built
// from public fighter state only.
type Perception struct {
	Offset            float64 // Opponent x minus own x
	Distance          float64 // |Offset|
	OpponentAttacking bool
	Stamina           float64
	Aggression        float64
}

// Decision is a strategy's answer: what to do and how long to wait before
// deciding again.
type Decision struct {
	Choice     BotChoice
	CooldownMs float64
}

// BotStrategy picks the next move for an autonomous fighter.
type BotStrategy interface {
	Decide(p Perception, rng *rand.Rand) Decision
}

// BotData is attached only to autonomous fighters. It survives round resets.
type BotData struct {
	Strategy         BotStrategy
	Rand             *rand.Rand
	DecisionCooldown float64 // ms until the next decision
	Aggression       float64
	ReactionScale    float64 // Multiplier on every decision cooldown
	LastChoice       BotChoice
}

var Bot = donburi.NewComponentType[BotData]()
