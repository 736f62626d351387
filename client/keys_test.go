package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
)

type fakeDevice struct {
	pressed, justPressed, justReleased map[Action]bool
}

func frame() *fakeDevice {
	return &fakeDevice{
		pressed:      map[Action]bool{},
		justPressed:  map[Action]bool{},
		justReleased: map[Action]bool{},
	}
}

func (d *fakeDevice) Pressed(a Action) bool      { return d.pressed[a] }
func (d *fakeDevice) JustPressed(a Action) bool  { return d.justPressed[a] }
func (d *fakeDevice) JustReleased(a Action) bool { return d.justReleased[a] }

func ids(cmds []components.Command) []cfg.CommandID {
	out := make([]cfg.CommandID, len(cmds))
	for i, c := range cmds {
		out[i] = c.ID
	}
	return out
}

func TestControlsWalkRepeatsThenStops(t *testing.T) {
	var c Controls

	held := frame()
	held.pressed[ActionMoveRight] = true
	assert.Equal(t, []cfg.CommandID{cfg.CommandMoveRight}, ids(c.Commands(held)))
	assert.Equal(t, []cfg.CommandID{cfg.CommandMoveRight}, ids(c.Commands(held)))

	assert.Equal(t, []cfg.CommandID{cfg.CommandMoveStop}, ids(c.Commands(frame())))
	assert.Empty(t, c.Commands(frame()), "stop is sent once")
}

func TestControlsOpposingDirectionsStop(t *testing.T) {
	var c Controls
	left := frame()
	left.pressed[ActionMoveLeft] = true
	c.Commands(left)

	both := frame()
	both.pressed[ActionMoveLeft] = true
	both.pressed[ActionMoveRight] = true
	assert.Equal(t, []cfg.CommandID{cfg.CommandMoveStop}, ids(c.Commands(both)))
}

func TestControlsBlockHoldAndRelease(t *testing.T) {
	var c Controls

	down := frame()
	down.justPressed[ActionBlock] = true
	assert.Equal(t, []cfg.CommandID{cfg.CommandBlock}, ids(c.Commands(down)))

	up := frame()
	up.justReleased[ActionBlock] = true
	assert.Equal(t, []cfg.CommandID{cfg.CommandBlockRelease}, ids(c.Commands(up)))
}

func TestControlsActionsAfterMovement(t *testing.T) {
	var c Controls
	d := frame()
	d.pressed[ActionMoveLeft] = true
	d.justPressed[ActionAttack] = true
	d.justPressed[ActionDodge] = true

	assert.Equal(t,
		[]cfg.CommandID{cfg.CommandMoveLeft, cfg.CommandAttack, cfg.CommandDodge},
		ids(c.Commands(d)))
}

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for a := Action(0); a < ActionCount; a++ {
		assert.NotEmpty(t, b[a].Keys, "action %d", a)
	}
}

func TestHealthTrailLagsDamage(t *testing.T) {
	trail := NewHealthTrail(100)

	trail.Update(70, 0.1)
	assert.Less(t, trail.Value(), 100.0)
	assert.Greater(t, trail.Value(), 70.0)

	trail.Update(70, trailSeconds)
	assert.Equal(t, 70.0, trail.Value())

	trail.Update(100, 0.01)
	assert.Equal(t, 100.0, trail.Value(), "healing snaps")
}
