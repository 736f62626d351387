package systems

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// DamageEvent is published whenever a hit removes health, blocked or not.
type DamageEvent struct {
	Target   cfg.Role
	Attacker cfg.Role
	Amount   float64
	Health   float64 // Target health after the hit
	Blocked  bool
	Combo    int
}

// TerminalEvent is published once when a fighter is defeated.
type TerminalEvent struct {
	Winner cfg.Role
	Loser  cfg.Role
	Round  int
}

// RoundAdvanceEvent is published after the next round has been set up.
type RoundAdvanceEvent struct {
	Round     int
	Stage     int
	StageName string
}

var (
	DamageEvents       = events.NewEventType[DamageEvent]()
	TerminalEvents     = events.NewEventType[TerminalEvent]()
	RoundAdvanceEvents = events.NewEventType[RoundAdvanceEvent]()
)

// UpdateEvents delivers the events published during the tick. It runs last
// and is never gated, so the terminal event reaches subscribers.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
