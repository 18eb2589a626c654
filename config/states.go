package config

// StateID identifies the player's animation state.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
	Jumping
	Falling
	Dying
)

// StateToName maps StateID to a display name used by the debug overlay.
var StateToName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
	Jumping: "jumping",
	Falling: "falling",
	Dying:   "dying",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}
