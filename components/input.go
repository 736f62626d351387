package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// Command is one discrete input event. Human input and the decision engine
// both produce commands.
type Command struct {
	ID     cfg.CommandID
	HoldMs float64 // Block only: release the guard after this long, 0 = until released
}

// CommandQueueData buffers commands until the next command intake step.
type CommandQueueData struct {
	Pending []Command
}

func (q *CommandQueueData) Push(c Command) {
	q.Pending = append(q.Pending, c)
}

// Drain returns the pending commands and empties the queue.
func (q *CommandQueueData) Drain() []Command {
	out := q.Pending
	q.Pending = nil
	return out
}

var CommandQueue = donburi.NewComponentType[CommandQueueData]()
