package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the collision space shared by the arena walls and the ball.
var Space = donburi.NewComponentType[resolv.Space]()
