package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	InAir        bool
	OnGround     *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
