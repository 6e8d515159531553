package systems

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerControl turns the Input singleton into the player soldier's
// intents for this tick. Enemies have no controller and keep zero intents.
func UpdatePlayerControl(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		soldier := components.Soldier.Get(e)

		soldier.MovingLeft = input.Action(cfg.ActionMoveLeft).Pressed
		soldier.MovingRight = input.Action(cfg.ActionMoveRight).Pressed
		soldier.ShootHeld = input.Action(cfg.ActionShoot).Pressed

		if input.Action(cfg.ActionJump).JustPressed && soldier.Alive {
			soldier.JumpRequested = true
		}
	})
}
