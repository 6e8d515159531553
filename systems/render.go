package systems

import (
	"image/color"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground fills the screen and marks the floor with a line.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	stageEntry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(stageEntry)
	vector.StrokeLine(screen, 0, float32(stage.FloorY), float32(stage.Width), float32(stage.FloorY), 1, cfg.Colors.FloorLine, false)
}

// DrawSoldiers renders each soldier's current animation frame at its
// rectangle, mirrored when facing left.
func DrawSoldiers(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Soldier.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		soldier := components.Soldier.Get(e)
		animData := components.Animation.Get(e)

		img := animData.Sprites.Frame(animData.CurrentSheet, animData.Frame())
		if img == nil {
			c := cfg.Colors.Player
			if e.HasComponent(tags.Enemy) {
				c = cfg.Colors.Enemy
			}
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if soldier.Flip {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		drawOp.GeoM.Translate(o.X, o.Y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawBullets renders bullet sprites centred on their rectangles.
func DrawBullets(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		if sprite.Image == nil {
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Colors.Bullet, false)
			return
		}

		bounds := sprite.Image.Bounds()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(o.CenterX()-float64(bounds.Dx())/2, o.CenterY()-float64(bounds.Dy())/2)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

// DrawFade darkens the screen while a fade overlay is active.
func DrawFade(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Done || fade.Alpha <= 0 {
			return
		}
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		c := color.RGBA{0, 0, 0, uint8(fade.Alpha * 255)}
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
	})
}
