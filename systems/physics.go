package systems

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics moves every soldier by its intents: horizontal speed,
// jump impulse, gravity and the floor clamp.
func UpdatePhysics(ecs *ecs.ECS) {
	floorY := cfg.Physics.FloorY
	if stage, ok := components.Stage.First(ecs.World); ok {
		floorY = components.Stage.Get(stage).FloorY
	}

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Soldier) {
			return
		}
		soldier := components.Soldier.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx := horizontalStep(soldier)
		dy := verticalStep(soldier, physics)
		dy = resolveFloor(physics, obj.Object, floorY, dx, dy)

		physics.SpeedX = dx
		obj.X += dx
		obj.Y += dy
	})
}

// horizontalStep returns this tick's horizontal delta and updates facing.
// Right is evaluated last, so it wins when both directions are held.
func horizontalStep(soldier *components.SoldierData) float64 {
	dx := 0.0
	if soldier.MovingLeft {
		dx = -soldier.Speed
		soldier.Flip = true
		soldier.Direction = cfg.DirectionLeft
	}
	if soldier.MovingRight {
		dx = soldier.Speed
		soldier.Flip = false
		soldier.Direction = cfg.DirectionRight
	}
	return dx
}

// verticalStep applies a pending jump and gravity, returning the vertical delta.
func verticalStep(soldier *components.SoldierData, physics *components.PhysicsData) float64 {
	if soldier.JumpRequested && !physics.InAir {
		physics.SpeedY = -cfg.Physics.JumpSpeed
		physics.InAir = true
	}
	// A request that could not be honoured is dropped, not buffered.
	soldier.JumpRequested = false

	physics.SpeedY += physics.Gravity
	if physics.SpeedY > physics.MaxFallSpeed {
		physics.SpeedY = physics.MaxFallSpeed
	}
	return physics.SpeedY
}

// resolveFloor clamps dy so the object's bottom edge stops on the floor line,
// which extends past both screen edges. OnGround is the solid below the
// object while it is inside the collision space.
func resolveFloor(physics *components.PhysicsData, object *resolv.Object, floorY, dx, dy float64) float64 {
	physics.OnGround = nil

	bottom := object.Y + object.H
	if bottom+dy <= floorY {
		physics.InAir = true
		return dy
	}

	dy = floorY - bottom
	physics.InAir = false
	if check := object.Check(dx, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			physics.OnGround = solids[0]
		}
	}
	return dy
}
