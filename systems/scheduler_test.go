package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-duel/assets/animations"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems/factory"
)

func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	mc := cfg.DefaultMatchConfig()
	tuning := cfg.DefaultTuning()
	factory.CreateArena(e, mc)
	factory.CreateMatch(e, tuning, mc, rand.New(rand.NewSource(1)))
	f, err := factory.CreateFighter(e, cfg.Controlled, tuning, mc, animations.Unready{})
	require.NoError(t, err)
	e.AddSystem(UpdateScheduler)
	return e, f
}

func step(e *ecs.ECS, ms float64) {
	getMatch(e.World).DeltaMs = ms
	e.Update()
}

func TestScheduledTaskFiresAfterDelay(t *testing.T) {
	e, f := newTestWorld(t)
	fired := 0
	Schedule(e.World, f, 100, func(donburi.World, *donburi.Entry) { fired++ })

	step(e, 60)
	assert.Zero(t, fired)
	step(e, 60)
	assert.Equal(t, 1, fired)
	step(e, 500)
	assert.Equal(t, 1, fired)
	assert.Zero(t, PendingTasks(e.World))
}

func TestStaleTaskIsDropped(t *testing.T) {
	e, f := newTestWorld(t)
	fired := false
	Schedule(e.World, f, 100, func(donburi.World, *donburi.Entry) { fired = true })

	components.Fighter.Get(f).Invalidate()
	step(e, 200)

	assert.False(t, fired)
	assert.Zero(t, PendingTasks(e.World))
}

func TestNewLockedActionCancelsPreviousTasks(t *testing.T) {
	e, f := newTestWorld(t)
	require.True(t, Block(e.World, f, 600))
	require.Equal(t, 1, PendingTasks(e.World))

	completeAction(f)
	require.True(t, Attack(e.World, f))

	step(e, 700)
	assert.True(t, components.Fighter.Get(f).Attacking, "stale release must not touch the attack")
	assert.Zero(t, PendingTasks(e.World))
}

func TestTaskMayScheduleAnother(t *testing.T) {
	e, f := newTestWorld(t)
	second := false
	Schedule(e.World, f, 10, func(w donburi.World, owner *donburi.Entry) {
		Schedule(w, owner, 10, func(donburi.World, *donburi.Entry) { second = true })
	})

	step(e, 20)
	assert.Equal(t, 1, PendingTasks(e.World))
	step(e, 20)
	assert.True(t, second)
}
