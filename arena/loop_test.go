package arena

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	cfg "github.com/automoto/doomerang-duel/config"
)

func TestLoopRunForSteps(t *testing.T) {
	m := newTestMatch(t, 200, 700)
	calls := 0
	loop := NewLoop(m, 60, func(*Match) { calls++ })

	ticks := loop.RunFor(490)

	assert.Equal(t, 30, ticks)
	assert.Equal(t, ticks, calls)
	assert.Equal(t, uint64(ticks), m.State().Tick)
	assert.InDelta(t, 500.0, m.State().ElapsedMs, 1e-6)
}

func TestLoopRunForStopsAtTerminal(t *testing.T) {
	m := newTestMatch(t, 200, 260)
	loop := NewLoop(m, 60, func(m *Match) { m.Press(cfg.Controlled, cfg.CommandAttack) })

	ticks := loop.RunFor(60_000)

	assert.True(t, m.State().Terminal)
	assert.Less(t, ticks, 60*60)
	assert.Equal(t, cfg.Controlled, m.State().Winner)
}

func TestLoopDefaultsTickRate(t *testing.T) {
	loop := NewLoop(newTestMatch(t, 200, 700), 0, nil)
	assert.InDelta(t, 1000.0/60, loop.DeltaMs(), 1e-9)
}

func TestLoopRunStops(t *testing.T) {
	m := newTestMatch(t, 200, 700)
	loop := NewLoop(m, 200, nil)

	done := make(chan struct{})
	go func() {
		loop.Run(0)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopRunHonoursLimit(t *testing.T) {
	m := newTestMatch(t, 200, 700)
	loop := NewLoop(m, 200, nil)

	done := make(chan struct{})
	go func() {
		loop.Run(40 * time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		loop.Stop()
		t.Fatal("loop ignored its limit")
	}
	assert.False(t, m.State().Terminal)
}
