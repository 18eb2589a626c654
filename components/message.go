package components

import "github.com/yohamta/donburi"

// MessageData is a singleton holding the banner currently on screen
type MessageData struct {
	Text         string
	DisplayTimer int // Frames remaining, 0 = hidden
}

var Message = donburi.NewComponentType[MessageData]()
