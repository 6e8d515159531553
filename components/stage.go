package components

import (
	"github.com/yohamta/donburi"
)

// StageData describes the static play area.
type StageData struct {
	Width  float64
	Height float64
	FloorY float64
}

var Stage = donburi.NewComponentType[StageData]()
