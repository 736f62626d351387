package client

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical control of the local player.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionAttack
	ActionBlock
	ActionDodge
	ActionRestart
	ActionCount // Must be last
)

// Binding is the set of keys and gamepad buttons mapped to one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its inputs.
type Bindings [ActionCount]Binding

// DefaultBindings mirrors the arcade layout: arrows or A/D to walk,
// Z attack, X block, C dodge.
func DefaultBindings() Bindings {
	return Bindings{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionAttack: {
			Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionBlock: {
			Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeyK},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
		},
		ActionDodge: {
			Keys:                   []ebiten.Key{ebiten.KeyC, ebiten.KeyL},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionRestart: {
			Keys:                   []ebiten.Key{ebiten.KeyR},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
	}
}

// Device is the raw input state for one frame.
type Device interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
	JustReleased(a Action) bool
}

// Ebiten reads keyboard and the first standard gamepad.
type Ebiten struct {
	Bindings Bindings
	gamepads []ebiten.GamepadID
}

func (d *Ebiten) refresh() {
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
}

func (d *Ebiten) Pressed(a Action) bool {
	b := d.Bindings[a]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range d.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func (d *Ebiten) JustPressed(a Action) bool {
	b := d.Bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range d.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func (d *Ebiten) JustReleased(a Action) bool {
	b := d.Bindings[a]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	for _, id := range d.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustReleased(id, btn) {
				return true
			}
		}
	}
	return false
}

// Controls turns per-frame device state into fighter commands. Walking is
// re-sent every frame while held so it resumes after a locked action ends.
type Controls struct {
	walking bool
}

// Commands returns the commands for this frame in the order they should be
// queued.
func (c *Controls) Commands(d Device) []components.Command {
	var out []components.Command

	left, right := d.Pressed(ActionMoveLeft), d.Pressed(ActionMoveRight)
	switch {
	case left && !right:
		out = append(out, components.Command{ID: cfg.CommandMoveLeft})
		c.walking = true
	case right && !left:
		out = append(out, components.Command{ID: cfg.CommandMoveRight})
		c.walking = true
	case c.walking:
		out = append(out, components.Command{ID: cfg.CommandMoveStop})
		c.walking = false
	}

	if d.JustPressed(ActionBlock) {
		out = append(out, components.Command{ID: cfg.CommandBlock})
	}
	if d.JustReleased(ActionBlock) {
		out = append(out, components.Command{ID: cfg.CommandBlockRelease})
	}
	if d.JustPressed(ActionAttack) {
		out = append(out, components.Command{ID: cfg.CommandAttack})
	}
	if d.JustPressed(ActionDodge) {
		out = append(out, components.Command{ID: cfg.CommandDodge})
	}
	return out
}
