// Package arena runs a complete duel: two fighters, the decision engine and
// the round controller, all driven by Tick.
package arena

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Match owns one ECS world. It is not safe for concurrent use; a single
// caller drives it with Tick.
type Match struct {
	ecs      *ecs.ECS
	entry    *donburi.Entry
	fighters [len(cfg.Roles)]*donburi.Entry
}

type options struct {
	tuning     cfg.Tuning
	seed       int64
	seeded     bool
	strategy   components.BotStrategy
	provider   animations.Provider
	difficulty cfg.BotDifficulty
}

// Option customizes a match.
type Option func(*options)

// WithTuning replaces the default tuning.
func WithTuning(t cfg.Tuning) Option {
	return func(o *options) { o.tuning = t }
}

// WithSeed makes every random draw of the match reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithStrategy replaces the tiered decision engine of the autonomous fighter.
func WithStrategy(s components.BotStrategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithProvider supplies animation geometry and readiness.
func WithProvider(p animations.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithDifficulty picks the decision engine's reaction and aggression level.
func WithDifficulty(d cfg.BotDifficulty) Option {
	return func(o *options) { o.difficulty = d }
}

// New builds a match from mc. Invalid tuning, stage layout or animation
// geometry fails here and never later.
func New(mc *cfg.MatchConfig, opts ...Option) (*Match, error) {
	o := options{
		tuning:   cfg.DefaultTuning(),
		provider: animations.Unready{},
	}
	o.difficulty = o.tuning.Bot.Difficulty
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}

	if mc == nil {
		mc = cfg.DefaultMatchConfig()
	}
	if err := o.tuning.Validate(); err != nil {
		return nil, err
	}
	if err := mc.Validate(o.tuning.Fighter.Width); err != nil {
		return nil, err
	}

	e := ecs.NewECS(donburi.NewWorld())
	m := &Match{ecs: e}

	factory.CreateArena(e, mc)
	m.entry = factory.CreateMatch(e, o.tuning, mc, rand.New(rand.NewSource(o.seed)))
	for i, role := range cfg.Roles {
		f, err := factory.CreateFighter(e, role, o.tuning, mc, o.provider)
		if err != nil {
			return nil, fmt.Errorf("create match: %w", err)
		}
		m.fighters[i] = f
	}
	factory.LinkOpponents(m.fighters[cfg.Controlled], m.fighters[cfg.Autonomous])

	strategy := o.strategy
	if strategy == nil {
		strategy = systems.NewTieredStrategy(o.tuning.Bot)
	}
	bots := o.tuning.Bot
	bots.Difficulty = o.difficulty
	factory.AttachBot(m.fighters[cfg.Autonomous], strategy, rand.New(rand.NewSource(o.seed+1)), bots.Level())

	e.AddSystem(systems.WithMatchChecks(systems.UpdateBots))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateCommands))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateCooldowns))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateAnimations))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateScheduler))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateCombat))
	e.AddSystem(systems.WithMatchChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateLocks))
	e.AddSystem(systems.WithMatchChecks(systems.UpdateMatch))
	e.AddSystem(systems.UpdateEvents)

	return m, nil
}

// Tick advances the simulation by deltaMs. Non-positive deltas are ignored.
func (m *Match) Tick(deltaMs float64) {
	if deltaMs <= 0 {
		return
	}
	match := components.Match.Get(m.entry)
	match.DeltaMs = deltaMs
	match.Tick++
	if !match.Terminal {
		match.ElapsedMs += deltaMs
	}
	m.ecs.Update()
}

// Command queues a command for role. It is validated on the next tick.
func (m *Match) Command(role cfg.Role, cmd components.Command) {
	components.CommandQueue.Get(m.fighter(role)).Push(cmd)
}

// Press queues a command without parameters.
func (m *Match) Press(role cfg.Role, id cfg.CommandID) {
	m.Command(role, components.Command{ID: id})
}

// Snapshot returns the public state of role's fighter.
func (m *Match) Snapshot(role cfg.Role) systems.Snapshot {
	return systems.TakeSnapshot(m.fighter(role))
}

// State returns a copy of the round state.
func (m *Match) State() components.MatchData {
	return *components.Match.Get(m.entry)
}

// StageName is the display name of the current stage.
func (m *Match) StageName() string {
	rules := components.Rules.Get(m.entry)
	return rules.Config.StageName(m.State().Stage)
}

// AdvanceRound starts the next round on the next stage. The round advance
// event is delivered before it returns.
func (m *Match) AdvanceRound() {
	systems.AdvanceRound(m.ecs)
	systems.RoundAdvanceEvents.ProcessEvents(m.ecs.World)
}

// OnDamage subscribes fn to damage notifications.
func (m *Match) OnDamage(fn func(systems.DamageEvent)) {
	systems.DamageEvents.Subscribe(m.ecs.World, func(_ donburi.World, e systems.DamageEvent) {
		fn(e)
	})
}

// OnTerminal subscribes fn to the end of each round.
func (m *Match) OnTerminal(fn func(systems.TerminalEvent)) {
	systems.TerminalEvents.Subscribe(m.ecs.World, func(_ donburi.World, e systems.TerminalEvent) {
		fn(e)
	})
}

// OnRoundAdvance subscribes fn to round changes.
func (m *Match) OnRoundAdvance(fn func(systems.RoundAdvanceEvent)) {
	systems.RoundAdvanceEvents.Subscribe(m.ecs.World, func(_ donburi.World, e systems.RoundAdvanceEvent) {
		fn(e)
	})
}

// ECS exposes the underlying world to presentation code.
func (m *Match) ECS() *ecs.ECS {
	return m.ecs
}

// Fighter returns the entity of role.
func (m *Match) Fighter(role cfg.Role) *donburi.Entry {
	return m.fighter(role)
}

func (m *Match) fighter(role cfg.Role) *donburi.Entry {
	return m.fighters[role]
}
