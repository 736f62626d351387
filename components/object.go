package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the stage collision space. There is exactly one per match.
var Space = donburi.NewComponentType[resolv.Space]()
