package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func tally(s components.BotStrategy, p components.Perception, n int) map[components.BotChoice]int {
	rng := testRNG()
	out := map[components.BotChoice]int{}
	for i := 0; i < n; i++ {
		out[s.Decide(p, rng).Choice]++
	}
	return out
}

func TestFarRangeAlwaysApproaches(t *testing.T) {
	s := NewTieredStrategy(cfg.DefaultTuning().Bot)
	got := tally(s, components.Perception{Offset: -500, Distance: 500, Aggression: 1}, 200)
	assert.Equal(t, map[components.BotChoice]int{components.ChoiceApproach: 200}, got)

	d := s.Decide(components.Perception{Distance: 500}, testRNG())
	assert.Equal(t, 1000.0, d.CooldownMs)
}

func TestCloseRangeFavoursAttackAndBlock(t *testing.T) {
	s := NewTieredStrategy(cfg.DefaultTuning().Bot)
	got := tally(s, components.Perception{Offset: 60, Distance: 60, Aggression: 0.5}, 2000)

	assert.Zero(t, got[components.ChoiceApproach])
	assert.Greater(t, got[components.ChoiceAttack], got[components.ChoiceRetreat])
	assert.Greater(t, got[components.ChoiceBlock], 0)
	assert.Equal(t, 500.0, s.Decide(components.Perception{Distance: 60}, testRNG()).CooldownMs)
}

func TestMediumRangeNeverBlocks(t *testing.T) {
	s := NewTieredStrategy(cfg.DefaultTuning().Bot)
	got := tally(s, components.Perception{Offset: 200, Distance: 200, OpponentAttacking: true, Aggression: 0.5}, 1000)

	assert.Zero(t, got[components.ChoiceBlock])
	assert.Zero(t, got[components.ChoiceRetreat])
	assert.Greater(t, got[components.ChoiceApproach], got[components.ChoiceAttack])
	assert.Equal(t, 800.0, s.Decide(components.Perception{Distance: 200}, testRNG()).CooldownMs)
}

func TestOpponentAttackRaisesBlockRate(t *testing.T) {
	s := NewTieredStrategy(cfg.DefaultTuning().Bot)
	calm := tally(s, components.Perception{Distance: 60, Aggression: 0.5}, 2000)
	threatened := tally(s, components.Perception{Distance: 60, Aggression: 0.5, OpponentAttacking: true}, 2000)

	assert.Greater(t, threatened[components.ChoiceBlock], calm[components.ChoiceBlock])
}

func TestDecisionsAreReproducible(t *testing.T) {
	s := NewTieredStrategy(cfg.DefaultTuning().Bot)
	p := components.Perception{Distance: 60, Aggression: 0.6}
	a, b := testRNG(), testRNG()
	for i := 0; i < 50; i++ {
		assert.Equal(t, s.Decide(p, a), s.Decide(p, b))
	}
}

func TestDrawWithoutWeights(t *testing.T) {
	assert.Equal(t, components.ChoiceNone, draw(cfg.BotWeights{}, testRNG()))
	assert.Equal(t, components.ChoiceRetreat, draw(cfg.BotWeights{Retreat: 1}, testRNG()))
}

func TestMoveCommand(t *testing.T) {
	assert.Equal(t, cfg.CommandMoveLeft, moveCommand(-3))
	assert.Equal(t, cfg.CommandMoveRight, moveCommand(3))
}

func TestWalkDone(t *testing.T) {
	c := cfg.DefaultTuning().Bot

	assert.False(t, walkDone(components.ChoiceApproach, c.ApproachStop+1, c))
	assert.True(t, walkDone(components.ChoiceApproach, c.ApproachStop, c))
	assert.False(t, walkDone(components.ChoiceRetreat, c.RetreatStop-1, c))
	assert.True(t, walkDone(components.ChoiceRetreat, c.RetreatStop, c))
	assert.False(t, walkDone(components.ChoiceAttack, 0, c))
}
