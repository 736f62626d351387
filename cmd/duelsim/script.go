package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
)

// Script plays the controlled fighter in a headless match.
type Script interface {
	Commands(self, opponent systems.Snapshot) []components.Command
}

// Scripts lists the available input scripts by name.
var Scripts = []string{"idle", "aggressive", "turtle", "random"}

// NewScript returns the script called name.
func NewScript(name string, rng *rand.Rand, attackRange float64) (Script, error) {
	switch name {
	case "idle":
		return idle{}, nil
	case "aggressive":
		return aggressive{reach: attackRange}, nil
	case "turtle":
		return &turtle{reach: attackRange}, nil
	case "random":
		return &random{rng: rng}, nil
	}
	return nil, fmt.Errorf("unknown script %q (want one of %v)", name, Scripts)
}

type idle struct{}

func (idle) Commands(_, _ systems.Snapshot) []components.Command {
	return nil
}

// aggressive walks into range and attacks whenever it can.
type aggressive struct {
	reach float64
}

func (a aggressive) Commands(self, opp systems.Snapshot) []components.Command {
	if self.Locked {
		return nil
	}
	if math.Abs(opp.X-self.X) > a.reach*0.8 {
		return []components.Command{{ID: toward(self, opp)}}
	}
	return []components.Command{{ID: cfg.CommandMoveStop}, {ID: cfg.CommandAttack}}
}

// turtle holds its guard while the opponent swings and counters otherwise.
type turtle struct {
	reach    float64
	guarding bool
}

func (t *turtle) Commands(self, opp systems.Snapshot) []components.Command {
	if opp.Action == cfg.Attack {
		if !t.guarding {
			t.guarding = true
			return []components.Command{{ID: cfg.CommandBlock}}
		}
		return nil
	}
	if t.guarding {
		t.guarding = false
		return []components.Command{{ID: cfg.CommandBlockRelease}}
	}
	if !self.Locked && math.Abs(opp.X-self.X) <= t.reach {
		return []components.Command{{ID: cfg.CommandAttack}}
	}
	return nil
}

// random presses a uniformly chosen command now and then.
type random struct {
	rng *rand.Rand
}

func (r *random) Commands(_, _ systems.Snapshot) []components.Command {
	if r.rng.Float64() > 0.1 {
		return nil
	}
	id := cfg.CommandID(1 + r.rng.Intn(int(cfg.CommandCount)-1))
	return []components.Command{{ID: id}}
}

func toward(self, opp systems.Snapshot) cfg.CommandID {
	if opp.X < self.X {
		return cfg.CommandMoveLeft
	}
	return cfg.CommandMoveRight
}
