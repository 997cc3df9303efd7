package systems

import (
	"fmt"
	"math"
	"os"

	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createRunnerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := int(components.MainMenuQuit) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.Selected = components.MainMenuOption((int(menu.Selected) - 1 + numOptions) % numOptions)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.Selected = components.MainMenuOption((int(menu.Selected) + 1) % numOptions)
		}

		// A tap starts a run on touch screens
		if input.PointerTapped {
			sceneChanger.ChangeScene(createRunnerScene())
			return
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Selected {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createRunnerScene())
			case components.MainMenuQuit:
				os.Exit(0)
			}
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Draw title
	title := "ROLLAWAY"
	titleWidth := len(title) * 26 // Approximate width for 40pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if menu.Best > 0 {
		best := fmt.Sprintf("BEST %dm", int(math.Floor(menu.Best)))
		bestX := int((width - float64(len(best)*8)) / 2)
		text.Draw(screen, best, fonts.Regular.Get(), bestX, int(cfg.Menu.TitleY)+40, cfg.HUD.BestColor)
	}

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.Menu.MenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		// Determine color based on selection
		textColor := cfg.Menu.TextColorNormal
		if components.MainMenuOption(i) == menu.Selected {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(option) * 14
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Tap: Play"
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Selected: components.MainMenuPlay,
			Best:     BestDistance(),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
