package systems

import (
	"github.com/automoto/shooter/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved rectangles with the collision space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
