package systems

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSoldiers ticks shoot cooldowns and fires for soldiers holding the
// shoot intent.
func UpdateSoldiers(ecs *ecs.ECS) {
	components.Soldier.Each(ecs.World, func(e *donburi.Entry) {
		soldier := components.Soldier.Get(e)

		if soldier.ShootCooldown > 0 {
			soldier.ShootCooldown--
		}

		if soldier.ShootHeld && soldier.Alive {
			Shoot(ecs, e)
		}
	})
}

// Shoot fires one bullet from the soldier's muzzle if the cooldown has
// elapsed and it still has ammo. It returns the bullet, or nil.
func Shoot(ecs *ecs.ECS, e *donburi.Entry) *donburi.Entry {
	soldier := components.Soldier.Get(e)
	if soldier.ShootCooldown != 0 || soldier.Ammo <= 0 {
		return nil
	}

	obj := components.Object.Get(e)
	soldier.ShootCooldown = cfg.Bullet.ShootCooldown
	soldier.Ammo--

	x := obj.CenterX() + cfg.Bullet.SpawnOffset*obj.W*soldier.Direction
	y := obj.CenterY()
	return factory.CreateBullet(ecs, x, y, soldier.Direction)
}
