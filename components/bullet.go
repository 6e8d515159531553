package components

import (
	"github.com/yohamta/donburi"
)

type BulletData struct {
	Direction float64 // 1 right, -1 left
	Speed     float64
}

var Bullet = donburi.NewComponentType[BulletData]()
