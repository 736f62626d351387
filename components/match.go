package components

import (
	"math/rand"

	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// MatchData stores round and terminal state.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	Round    int // 1-based
	Stage    int // Index into the configured stage rotation
	Terminal bool
	Winner   cfg.Role
	Loser    cfg.Role

	Tick      uint64
	ElapsedMs float64
	DeltaMs   float64 // Duration of the tick being processed
}

var Match = donburi.NewComponentType[MatchData]()

// RulesData is the immutable configuration of a match.
type RulesData struct {
	Tuning cfg.Tuning
	Config *cfg.MatchConfig
	Rand   *rand.Rand // Damage jitter
}

var Rules = donburi.NewComponentType[RulesData]()
