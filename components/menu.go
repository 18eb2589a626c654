package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuContinue
	MainMenuExit
)

func (o MainMenuOption) String() string {
	switch o {
	case MainMenuStart:
		return "Start"
	case MainMenuContinue:
		return "Continue"
	case MainMenuExit:
		return "Quit"
	}
	return "?"
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // Current selection index in VisibleOptions
	VisibleOptions []MainMenuOption // Continue only shows when a level is in progress
	ContinueLevel  int

	TitlePulse *gween.Tween
	TitleAlpha float32
	PulseUp    bool
}

var Menu = donburi.NewComponentType[MenuData]()
