package systems

import (
	"github.com/automoto/shooter/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade advances fade overlays by one tick.
func UpdateFade(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.TPS()))
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		advanceFade(components.Fade.Get(e), dt)
	})
}

func advanceFade(fade *components.FadeData, dt float32) {
	if fade.Done || fade.Tween == nil {
		return
	}
	alpha, finished := fade.Tween.Update(dt)
	fade.Alpha = alpha
	if finished {
		fade.Alpha = 0
		fade.Done = true
	}
}
