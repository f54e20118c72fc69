package systems

import (
	"github.com/automoto/fling/components"
	cfg "github.com/automoto/fling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls keys, gamepads and the pointer.
// Must run BEFORE UpdateBall and UpdateControls in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	updatePointer(GetOrCreatePointer(ecs))
}

// updatePointer follows the first active touch, falling back to the left mouse button.
func updatePointer(p *components.PointerData) {
	p.JustPressed = false
	p.JustReleased = false

	if p.Touching {
		if inpututil.IsTouchJustReleased(p.TouchID) {
			p.Down = false
			p.Touching = false
			p.JustReleased = true
			return
		}
		x, y := ebiten.TouchPosition(p.TouchID)
		p.X, p.Y = float64(x), float64(y)
		return
	}

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 && !p.Down {
		p.TouchID = touchIDs[0]
		p.Touching = true
		x, y := ebiten.TouchPosition(p.TouchID)
		p.X, p.Y = float64(x), float64(y)
		p.Down = true
		p.JustPressed = true
		return
	}

	x, y := ebiten.CursorPosition()
	p.X, p.Y = float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.Down = true
		p.JustPressed = true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.Down = false
		p.JustReleased = true
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetOrCreatePointer returns the singleton Pointer component, creating if needed
func GetOrCreatePointer(ecs *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}

// JustPressed reports whether an action went down this frame.
func JustPressed(input *components.InputData, id cfg.ActionID) bool {
	return input.Current[id] && !input.Previous[id]
}
