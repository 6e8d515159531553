package systems

import (
	"fmt"

	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/fonts"
	"github.com/automoto/shooter/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

var hudTextOp = &text.DrawOptions{}

// DrawHUD renders the player's remaining ammo in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	soldier := components.Soldier.Get(playerEntry)

	hudTextOp.GeoM.Reset()
	hudTextOp.ColorScale.Reset()
	hudTextOp.GeoM.Translate(hudMargin, hudMargin)
	hudTextOp.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
	text.Draw(screen, AmmoLabel(soldier.Ammo), fonts.HUD.Get(), hudTextOp)
}

// AmmoLabel is the HUD text for the given ammo count.
func AmmoLabel(ammo int) string {
	return fmt.Sprintf("AMMO: %d", ammo)
}
