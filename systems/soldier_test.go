package systems

import (
	"testing"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShootSpawnsBulletAtMuzzle(t *testing.T) {
	e, player := newTestWorld(t)
	obj := components.Object.Get(player)
	soldier := components.Soldier.Get(player)

	b := Shoot(e, player)
	require.NotNil(t, b)

	bulletObj := components.Object.Get(b)
	bullet := components.Bullet.Get(b)
	assert.InDelta(t, obj.CenterX()+0.6*obj.W, bulletObj.CenterX(), 1e-9)
	assert.InDelta(t, obj.CenterY(), bulletObj.CenterY(), 1e-9)
	assert.Equal(t, 1.0, bullet.Direction)
	assert.Equal(t, cfg.Bullet.Speed, bullet.Speed)

	assert.Equal(t, cfg.Player.Ammo-1, soldier.Ammo)
	assert.Equal(t, cfg.Bullet.ShootCooldown, soldier.ShootCooldown)
}

func TestShootFacingLeft(t *testing.T) {
	e, player := newTestWorld(t)
	obj := components.Object.Get(player)
	soldier := components.Soldier.Get(player)
	soldier.Direction = cfg.DirectionLeft

	b := Shoot(e, player)
	require.NotNil(t, b)
	assert.InDelta(t, obj.CenterX()-0.6*obj.W, components.Object.Get(b).CenterX(), 1e-9)
	assert.Equal(t, -1.0, components.Bullet.Get(b).Direction)
}

func TestShootRespectsCooldown(t *testing.T) {
	e, player := newTestWorld(t)
	soldier := components.Soldier.Get(player)
	soldier.ShootHeld = true

	step(e)
	assert.Equal(t, 1, countBullets(e))

	// Holding the trigger fires again only once the cooldown has run out.
	shotsAt := []int{}
	for tick := 1; tick <= 45; tick++ {
		before := soldier.Ammo
		UpdateSoldiers(e)
		if soldier.Ammo < before {
			shotsAt = append(shotsAt, tick)
		}
	}
	assert.Equal(t, []int{20, 40}, shotsAt)
}

func TestShootNeedsAmmo(t *testing.T) {
	e, player := newTestWorld(t)
	soldier := components.Soldier.Get(player)
	soldier.Ammo = 1

	require.NotNil(t, Shoot(e, player))
	soldier.ShootCooldown = 0
	assert.Nil(t, Shoot(e, player))
	assert.Equal(t, 0, soldier.Ammo)
	assert.Equal(t, 1, countBullets(e))
}

func TestDeadSoldierDoesNotShoot(t *testing.T) {
	e, player := newTestWorld(t)
	soldier := components.Soldier.Get(player)
	soldier.Alive = false
	soldier.ShootHeld = true

	step(e)
	assert.Equal(t, 0, countBullets(e))
	assert.Equal(t, cfg.Player.Ammo, soldier.Ammo)
}

func TestCooldownTicksDown(t *testing.T) {
	e, player := newTestWorld(t)
	soldier := components.Soldier.Get(player)
	soldier.ShootCooldown = 2

	UpdateSoldiers(e)
	assert.Equal(t, 1, soldier.ShootCooldown)
	UpdateSoldiers(e)
	UpdateSoldiers(e)
	assert.Equal(t, 0, soldier.ShootCooldown)
}

func TestAmmoLabel(t *testing.T) {
	assert.Equal(t, "AMMO: 20", AmmoLabel(20))
	assert.Equal(t, "AMMO: 0", AmmoLabel(0))
}
