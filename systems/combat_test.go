package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testHit() HitParams {
	return HitParams{Range: 100, BaseDamage: 12, BlockReduction: 0.7}
}

func TestResolveHit(t *testing.T) {
	cases := []struct {
		name     string
		defender Defender
		damage   float64
		outcome  HitOutcome
	}{
		{"in range", Defender{X: 260}, 12, HitLanded},
		{"out of range", Defender{X: 400}, 0, HitMiss},
		{"exactly at range", Defender{X: 300}, 0, HitMiss},
		{"behind attacker", Defender{X: 150}, 12, HitLanded},
		{"blocking", Defender{X: 260, Blocking: true}, 12 * 0.7, HitBlocked},
		{"invulnerable", Defender{X: 260, Invulnerable: true}, 0, HitNegated},
		{"invulnerable and blocking", Defender{X: 260, Blocking: true, Invulnerable: true}, 0, HitNegated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			damage, outcome := ResolveHit(200, tc.defender, testHit(), nil)
			assert.Equal(t, tc.outcome, outcome)
			assert.InDelta(t, tc.damage, damage, 1e-9)
		})
	}
}

func TestResolveHitJitterStaysInBand(t *testing.T) {
	p := testHit()
	p.Jitter = 2
	rng := rand.New(rand.NewSource(5))

	varied := false
	for i := 0; i < 200; i++ {
		damage, outcome := ResolveHit(200, Defender{X: 220}, p, rng)
		assert.Equal(t, HitLanded, outcome)
		assert.GreaterOrEqual(t, damage, 10.0)
		assert.LessOrEqual(t, damage, 14.0)
		varied = varied || damage != 12
	}
	assert.True(t, varied)
}

func TestHitOutcomeString(t *testing.T) {
	assert.Equal(t, "blocked", HitBlocked.String())
	assert.Equal(t, "miss", HitMiss.String())
}
