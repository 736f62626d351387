package systems

import (
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCommands applies every queued command in arrival order. Rejected
// commands are dropped without a trace.
func UpdateCommands(ecs *ecs.ECS) {
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		for _, cmd := range components.CommandQueue.Get(e).Drain() {
			ApplyCommand(ecs.World, e, cmd)
		}
	})
}

// ApplyCommand feeds one command to the state machine and reports whether it
// was accepted.
func ApplyCommand(w donburi.World, e *donburi.Entry, cmd components.Command) bool {
	switch cmd.ID {
	case cfg.CommandMoveLeft:
		return Move(w, e, cfg.DirectionLeft)
	case cfg.CommandMoveRight:
		return Move(w, e, cfg.DirectionRight)
	case cfg.CommandMoveStop:
		return Stop(e)
	case cfg.CommandAttack:
		return Attack(w, e)
	case cfg.CommandBlock:
		return Block(w, e, cmd.HoldMs)
	case cfg.CommandBlockRelease:
		ReleaseBlock(e)
		return true
	case cfg.CommandDodge:
		return Dodge(w, e)
	}
	return false
}
