package components

import (
	cfg "github.com/automoto/fling/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// PointerData tracks the primary pointer, either the mouse or the first touch.
type PointerData struct {
	X, Y         float64
	Down         bool
	JustPressed  bool
	JustReleased bool
	TouchID      ebiten.TouchID
	Touching     bool // pointer is driven by a touch rather than the mouse
}

var Pointer = donburi.NewComponentType[PointerData]()
