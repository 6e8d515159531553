package systems

import (
	"testing"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletMovesAlongDirection(t *testing.T) {
	e, _ := newTestWorld(t)

	right := factory.CreateBullet(e, 400, 250, cfg.DirectionRight)
	left := factory.CreateBullet(e, 400, 250, cfg.DirectionLeft)
	rightX := components.Object.Get(right).X
	leftX := components.Object.Get(left).X

	UpdateBullets(e)

	assert.InDelta(t, rightX+cfg.Bullet.Speed, components.Object.Get(right).X, 1e-9)
	assert.InDelta(t, leftX-cfg.Bullet.Speed, components.Object.Get(left).X, 1e-9)
	assert.InDelta(t, 250, components.Object.Get(right).CenterY(), 1e-9, "no vertical motion")
}

func TestBulletRemovedOffScreen(t *testing.T) {
	e, _ := newTestWorld(t)
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	objectsBefore := len(space.Objects())

	b := factory.CreateBullet(e, float64(cfg.C.Width)-15, 250, cfg.DirectionRight)
	assert.Len(t, space.Objects(), objectsBefore+1)

	UpdateBullets(e)
	assert.True(t, b.Valid(), "still partly on screen")

	UpdateBullets(e)
	assert.False(t, b.Valid())
	assert.Equal(t, 0, countBullets(e))
	assert.Len(t, space.Objects(), objectsBefore)
}

func TestBulletRemovedLeftOfScreen(t *testing.T) {
	e, _ := newTestWorld(t)
	b := factory.CreateBullet(e, 5, 250, cfg.DirectionLeft)

	UpdateBullets(e)
	assert.False(t, b.Valid())
}

func TestBulletsIgnoreSoldiers(t *testing.T) {
	e, player := newTestWorld(t)
	obj := components.Object.Get(player)

	b := factory.CreateBullet(e, obj.CenterX()-20, obj.CenterY(), cfg.DirectionRight)
	for i := 0; i < 5; i++ {
		UpdateBullets(e)
		UpdateObjects(e)
	}

	assert.True(t, b.Valid())
	assert.True(t, components.Soldier.Get(player).Alive)
}

func TestFiredBulletLeavesScreen(t *testing.T) {
	e, player := newTestWorld(t)
	components.Soldier.Get(player).ShootHeld = true
	step(e)
	components.Soldier.Get(player).ShootHeld = false
	assert.Equal(t, 1, countBullets(e))

	for i := 0; i < 100; i++ {
		step(e)
	}
	assert.Equal(t, 0, countBullets(e))
}
