package systems

import (
	"github.com/automoto/rollaway/components"
	cfg "github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs      []ebiten.GamepadID
	touchIDs        []ebiten.TouchID
	pressedTouches  []ebiten.TouchID
	releasedTouches []ebiten.TouchID
)

// rawInput is one tick of device state, before smoothing.
type rawInput struct {
	actions      [cfg.ActionCount]bool
	analog       float64 // left stick horizontal, 0 inside the deadzone
	analogActive bool

	mouseHeld   bool
	mouseTapped bool
	cursor      gamemath.Vec2

	touchHeld  bool
	firstTouch gamemath.Vec2
	touches    []components.TouchEvent
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	applyRawInput(input, pollDevices(), 1.0/cfg.TPS)
}

func pollDevices() rawInput {
	var raw rawInput

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				raw.actions[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					raw.actions[actionID] = true
				}
			}
		}
	}

	// First stick outside the deadzone wins
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -cfg.Input.AnalogDeadzone || h > cfg.Input.AnalogDeadzone {
			raw.analog = h
			raw.analogActive = true
			break
		}
	}

	raw.mouseHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	raw.mouseTapped = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	cx, cy := ebiten.CursorPosition()
	raw.cursor = gamemath.Vec2{X: float64(cx), Y: float64(cy)}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		raw.touchHeld = true
		raw.firstTouch = gamemath.Vec2{X: float64(tx), Y: float64(ty)}
	}

	pressedTouches = inpututil.AppendJustPressedTouchIDs(pressedTouches[:0])
	for _, id := range pressedTouches {
		x, y := ebiten.TouchPosition(id)
		raw.touches = append(raw.touches, components.TouchEvent{
			ID:       int(id),
			Phase:    components.TouchBegan,
			Position: gamemath.Vec2{X: float64(x), Y: float64(y)},
		})
	}
	releasedTouches = inpututil.AppendJustReleasedTouchIDs(releasedTouches[:0])
	for _, id := range releasedTouches {
		// Released touches no longer report a live position
		x, y := inpututil.TouchPositionInPreviousTick(id)
		raw.touches = append(raw.touches, components.TouchEvent{
			ID:       int(id),
			Phase:    components.TouchEnded,
			Position: gamemath.Vec2{X: float64(x), Y: float64(y)},
		})
	}

	return raw
}

// applyRawInput folds one tick of device state into input.
func applyRawInput(input *components.InputData, raw rawInput, dt float64) {
	// Swap buffers: current becomes previous
	input.Previous = input.Current
	input.Current = raw.actions

	if raw.analogActive {
		input.Axis = raw.analog
	} else {
		target := 0.0
		if raw.actions[cfg.ActionMoveLeft] {
			target--
		}
		if raw.actions[cfg.ActionMoveRight] {
			target++
		}
		input.Axis = gamemath.StepAxis(input.Axis, target, cfg.Input.AxisSensitivity, cfg.Input.AxisGravity, dt)
	}

	input.PointerActive = raw.mouseHeld
	input.Pointer = raw.cursor
	if !raw.mouseHeld && raw.touchHeld && cfg.Controls.TouchMovement {
		input.PointerActive = true
		input.Pointer = raw.firstTouch
	}
	input.PointerTapped = raw.mouseTapped

	input.Touches = append(input.Touches[:0], raw.touches...)
	for _, t := range raw.touches {
		if t.Phase == components.TouchBegan {
			input.PointerTapped = true
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
