package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the border flash shown after a wall hit
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white)
}

var Flash = donburi.NewComponentType[FlashData]()

// SquashStretchData tracks the ball's bounce deformation. Each axis relaxes
// back to 1.0 through its own tween.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
