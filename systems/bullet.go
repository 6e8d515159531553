package systems

import (
	"github.com/automoto/shooter/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBullets moves bullets along their direction and removes those that
// have fully left the screen horizontally.
func UpdateBullets(ecs *ecs.ECS) {
	screenWidth := 0.0
	if stage, ok := components.Stage.First(ecs.World); ok {
		screenWidth = components.Stage.Get(stage).Width
	}

	var toRemove []*donburi.Entry

	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		obj.X += bullet.Direction * bullet.Speed

		if obj.X+obj.W < 0 || (screenWidth > 0 && obj.X > screenWidth) {
			toRemove = append(toRemove, e)
		}
	})

	for _, b := range toRemove {
		destroyBullet(ecs, b)
	}
}

func destroyBullet(ecs *ecs.ECS, bulletEntry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		obj := components.Object.Get(bulletEntry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(bulletEntry.Entity())
}
