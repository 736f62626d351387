package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

func TestDodgeFollowsWalkDirection(t *testing.T) {
	e, f := newTestWorld(t)
	require.True(t, Move(e.World, f, cfg.DirectionRight))
	require.True(t, Dodge(e.World, f))

	physics := components.Physics.Get(f)
	assert.Equal(t, 8.0, physics.Velocity.X)
	fighter := components.Fighter.Get(f)
	assert.True(t, fighter.Invulnerable)
	assert.True(t, fighter.Locked)
	assert.Equal(t, 800.0, fighter.DodgeCooldown)
	assert.Equal(t, 70.0, components.Stamina.Get(f).Current)
}

func TestDodgeNeedsGround(t *testing.T) {
	e, f := newTestWorld(t)
	components.Physics.Get(f).Grounded = false
	assert.False(t, Dodge(e.World, f))
	assert.Equal(t, cfg.Idle, components.State.Get(f).CurrentState)
}

func TestDodgeRejectedOnCooldown(t *testing.T) {
	e, f := newTestWorld(t)
	components.Fighter.Get(f).DodgeCooldown = 1
	assert.False(t, Dodge(e.World, f))
}

func TestAttackResetsClipAndLatch(t *testing.T) {
	e, f := newTestWorld(t)
	anim := components.Animation.Get(f)
	attackClip := anim.Clips[cfg.Attack]
	attackClip.Advance(125)
	components.Fighter.Get(f).HasLanded = true

	require.True(t, Attack(e.World, f))
	assert.Equal(t, 0, attackClip.Frame())
	assert.False(t, components.Fighter.Get(f).HasLanded)
	assert.Same(t, attackClip, anim.Current())

	state := components.State.Get(f)
	assert.Equal(t, cfg.Attack, state.CurrentState)
	assert.Equal(t, cfg.Idle, state.PreviousState)
}

func TestStopReturnsToIdle(t *testing.T) {
	e, f := newTestWorld(t)
	require.True(t, Move(e.World, f, cfg.DirectionLeft))
	assert.Equal(t, cfg.Walk, components.State.Get(f).CurrentState)
	assert.Equal(t, -5.0, components.Physics.Get(f).Velocity.X)

	require.True(t, Stop(f))
	assert.Equal(t, cfg.Idle, components.State.Get(f).CurrentState)
	assert.Zero(t, components.Fighter.Get(f).MoveDir)
}

func TestDefeatedFighterRejectsEverything(t *testing.T) {
	e, f := newTestWorld(t)
	Defeat(e.World, f)

	assert.True(t, IsMatchTerminal(e.World))
	assert.False(t, Attack(e.World, f))
	assert.False(t, Block(e.World, f, 0))
	assert.False(t, Dodge(e.World, f))
	assert.False(t, Move(e.World, f, cfg.DirectionRight))
	assert.False(t, Stop(f))
	assert.Equal(t, cfg.Defeated, components.State.Get(f).CurrentState)

	Defeat(e.World, f)
	assert.Equal(t, cfg.Defeated, components.State.Get(f).CurrentState)
}

func TestApplyCommandRoutes(t *testing.T) {
	e, f := newTestWorld(t)
	assert.True(t, ApplyCommand(e.World, f, components.Command{ID: cfg.CommandBlock}))
	assert.True(t, components.Fighter.Get(f).Blocking)
	assert.True(t, ApplyCommand(e.World, f, components.Command{ID: cfg.CommandBlockRelease}))
	assert.True(t, components.Fighter.Get(f).BlockReleased)
	assert.False(t, ApplyCommand(e.World, f, components.Command{ID: cfg.CommandNone}))
}
