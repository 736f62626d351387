package config

// StateID identifies a fighter action. It selects both the animation clip and
// the transition rules of the fighter state machine.
type StateID int

const StateNone StateID = -1

const (
	Idle StateID = iota
	Walk
	Attack
	Block
	Dodge
	Defeated
)

// StateToName maps a StateID to the resource name used by animation providers.
var StateToName = map[StateID]string{
	Idle:     "idle",
	Walk:     "walk",
	Attack:   "attack",
	Block:    "block",
	Dodge:    "dodge",
	Defeated: "defeated",
}

func (s StateID) String() string {
	if n, ok := StateToName[s]; ok {
		return n
	}
	return "none"
}

// Locks reports whether entering the state commits the fighter until the
// state machine itself releases it.
func (s StateID) Locks() bool {
	return s == Attack || s == Block || s == Dodge
}

// Role is the identity of a fighter within a match.
type Role int

const (
	Controlled Role = iota
	Autonomous
)

// Roles lists every fighter slot in update order.
var Roles = [...]Role{Controlled, Autonomous}

func (r Role) String() string {
	if r == Autonomous {
		return "autonomous"
	}
	return "controlled"
}

// Opponent returns the other role.
func (r Role) Opponent() Role {
	if r == Controlled {
		return Autonomous
	}
	return Controlled
}
