package components

import (
	"github.com/automoto/fling/assets"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena *assets.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()

// ClockData accumulates simulation time in seconds.
type ClockData struct {
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
