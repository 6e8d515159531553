package factory

import (
	"github.com/automoto/shooter/archetypes"
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var bulletSprite *ebiten.Image

// SetBulletSprite sets the image used by every bullet created afterwards.
func SetBulletSprite(img *ebiten.Image) {
	bulletSprite = img
}

// CreateBullet spawns a bullet centred on (x, y) travelling along direction.
func CreateBullet(ecs *ecs.ECS, x, y, direction float64) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	w, h := float64(cfg.Bullet.FallbackWidth), float64(cfg.Bullet.FallbackHeight)
	if bulletSprite != nil {
		w, h = float64(bulletSprite.Bounds().Dx()), float64(bulletSprite.Bounds().Dy())
	}

	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvBullet)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bullet.SetValue(b, components.BulletData{
		Direction: direction,
		Speed:     cfg.Bullet.Speed,
	})
	components.Sprite.SetValue(b, components.SpriteData{Image: bulletSprite})

	return b
}
