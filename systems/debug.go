package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/fonts"
	"github.com/automoto/shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	debugTextOp = &text.DrawOptions{}
	bulletQuery = donburi.NewQuery(filter.Contains(components.Bullet))
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Colors.Hitbox
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255}
			}

			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	msg := fmt.Sprintf("TPS: %0.1f  ", ebiten.ActualTPS()) + debugStatus(ecs)

	debugTextOp.GeoM.Reset()
	debugTextOp.GeoM.Translate(hudMargin, float64(screen.Bounds().Dy())-48)
	debugTextOp.LineSpacing = 16
	text.Draw(screen, msg, fonts.Debug.Get(), debugTextOp)
}

// debugStatus describes the bullet count and the player's state machine and
// contact with the floor.
func debugStatus(ecs *ecs.ECS) string {
	msg := fmt.Sprintf("bullets: %d", bulletQuery.Count(ecs.World))
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		state := components.State.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		msg += fmt.Sprintf("\nstate: %s (from %s, %d ticks)  vy: %0.2f  in air: %t  on solid: %t",
			state.CurrentState, state.PreviousState, state.StateTimer, physics.SpeedY, physics.InAir, physics.OnGround != nil)
	}
	return msg
}
