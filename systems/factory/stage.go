package factory

import (
	"github.com/automoto/shooter/archetypes"
	"github.com/automoto/shooter/components"
	"github.com/automoto/shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage creates the stage singleton and the solid floor beneath floorY.
// The floor spans the full width and reaches the bottom of the screen.
func CreateStage(ecs *ecs.ECS, width, height, floorY float64) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{
		Width:  width,
		Height: height,
		FloorY: floorY,
	})

	CreateFloor(ecs, 0, floorY, width, height-floorY)
	return stage
}

func CreateFloor(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return floor
}
