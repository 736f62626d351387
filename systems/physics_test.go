package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
)

func testBody(x, y float64) (*resolv.Object, *components.PhysicsData) {
	space := resolv.NewSpace(1024, 600, 16, 16)
	floor := resolv.NewObject(0, 450, 1024, 32, tags.ResolvSolid)
	body := resolv.NewObject(x, y, 80, 80, tags.ResolvFighter)
	space.Add(floor, body)
	return body, &components.PhysicsData{Gravity: 0.8, Friction: 0.85}
}

func TestIntegrateAppliesFrictionAndClamps(t *testing.T) {
	body, ph := testBody(100, 370)
	ph.Grounded = true
	ph.Velocity.X = 10

	Integrate(body, ph, 450, 50, 894)
	assert.Equal(t, 110.0, body.X)
	assert.InDelta(t, 8.5, ph.Velocity.X, 1e-9)

	ph.Velocity.X = -200
	Integrate(body, ph, 450, 50, 894)
	assert.Equal(t, 50.0, body.X)

	ph.Velocity.X = 2000
	Integrate(body, ph, 450, 50, 894)
	assert.Equal(t, 894.0, body.X)
}

func TestIntegrateFallsAndLands(t *testing.T) {
	body, ph := testBody(100, 200)

	Integrate(body, ph, 450, 50, 894)
	assert.False(t, ph.Grounded)
	assert.InDelta(t, 0.8, ph.Velocity.Y, 1e-9)

	for i := 0; i < 100 && !ph.Grounded; i++ {
		Integrate(body, ph, 450, 50, 894)
	}
	assert.True(t, ph.Grounded)
	assert.Equal(t, 370.0, body.Y)
	assert.Zero(t, ph.Velocity.Y)
}

func TestIntegrateKeepsGroundedBodyOnFloor(t *testing.T) {
	body, ph := testBody(100, 370)
	ph.Grounded = true
	for i := 0; i < 10; i++ {
		Integrate(body, ph, 450, 50, 894)
	}
	assert.Equal(t, 370.0, body.Y)
	assert.True(t, ph.Grounded)
}

func TestFacing(t *testing.T) {
	right, left := 300.0, 100.0
	same := 200.0

	assert.Equal(t, cfg.DirectionRight, Facing(200, &right, -5, cfg.DirectionLeft, 0.5))
	assert.Equal(t, cfg.DirectionLeft, Facing(200, &left, 5, cfg.DirectionRight, 0.5))
	assert.Equal(t, cfg.DirectionLeft, Facing(200, &same, -3, cfg.DirectionRight, 0.5))
	assert.Equal(t, cfg.DirectionRight, Facing(200, nil, 0.2, cfg.DirectionRight, 0.5), "slow drift keeps facing")
	assert.Equal(t, cfg.DirectionLeft, Facing(200, nil, -1, cfg.DirectionRight, 0.5))
	assert.Equal(t, cfg.DirectionRight, Facing(200, nil, 0, 0, 0.5))
}
