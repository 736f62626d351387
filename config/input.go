package config

// CommandID is a discrete command delivered to a fighter. Human input and the
// decision engine produce the same commands.
type CommandID int

const (
	CommandNone CommandID = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveStop
	CommandAttack
	CommandBlock        // guard raised (blockHeld(true))
	CommandBlockRelease // guard released (blockHeld(false))
	CommandDodge
	CommandCount // Must be last
)

var commandNames = [CommandCount]string{
	CommandNone:         "none",
	CommandMoveLeft:     "moveLeft",
	CommandMoveRight:    "moveRight",
	CommandMoveStop:     "moveStop",
	CommandAttack:       "attack",
	CommandBlock:        "blockHeld",
	CommandBlockRelease: "blockReleased",
	CommandDodge:        "dodge",
}

func (c CommandID) String() string {
	if c < 0 || c >= CommandCount {
		return "unknown"
	}
	return commandNames[c]
}

// Direction constants for facing and movement
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
