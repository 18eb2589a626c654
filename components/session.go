package components

import (
	"github.com/automoto/coyote-run/progress"
	"github.com/yohamta/donburi"
)

// SessionData gives systems access to the persisted run statistics.
type SessionData struct {
	Session *progress.Session
}

var Session = donburi.NewComponentType[SessionData]()

// DebugData toggles the collision overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
