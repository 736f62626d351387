package factory

import (
	"math/rand"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the match singleton holding round state, rules and the
// deferred task scheduler.
func CreateMatch(ecs *ecs.ECS, tuning cfg.Tuning, mc *cfg.MatchConfig, rng *rand.Rand) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.SetValue(match, components.MatchData{
		Round: 1,
		Stage: 0,
	})
	components.Rules.SetValue(match, components.RulesData{
		Tuning: tuning,
		Config: mc,
		Rand:   rng,
	})
	components.Scheduler.SetValue(match, components.SchedulerData{})
	return match
}
