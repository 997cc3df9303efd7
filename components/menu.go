package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuQuit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	Selected MainMenuOption
	Best     float64
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
