package factory

import (
	"github.com/automoto/shooter/archetypes"
	"github.com/automoto/shooter/assets"
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SoldierSpec describes a soldier to spawn. Width and Height are the
// collision size, normally taken from the first idle frame.
type SoldierSpec struct {
	Config  cfg.SoldierConfig
	Width   float64
	Height  float64
	Sprites *assets.SpriteSet
}

// SpecFromFrames sizes a spec from loaded character frames.
func SpecFromFrames(c cfg.SoldierConfig, frames assets.CharacterFrames, sprites *assets.SpriteSet) SoldierSpec {
	return SoldierSpec{
		Config:  c,
		Width:   float64(frames.Width),
		Height:  float64(frames.Height),
		Sprites: sprites,
	}
}

func CreatePlayer(ecs *ecs.ECS, spec SoldierSpec) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setupSoldier(ecs, player, spec, tags.ResolvPlayer)
	return player
}

func CreateEnemy(ecs *ecs.ECS, spec SoldierSpec) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupSoldier(ecs, enemy, spec, tags.ResolvEnemy)
	return enemy
}

func setupSoldier(ecs *ecs.ECS, e *donburi.Entry, spec SoldierSpec, resolvTag string) {
	w, h := spec.Width, spec.Height
	if w <= 0 || h <= 0 {
		w = float64(spec.Config.FallbackWidth) * spec.Config.Scale
		h = float64(spec.Config.FallbackHeight) * spec.Config.Scale
	}

	// The spawn point is the centre of the rectangle.
	obj := resolv.NewObject(spec.Config.X-w/2, spec.Config.Y-h/2, w, h, "character", resolvTag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Soldier.SetValue(e, components.SoldierData{
		CharType:  spec.Config.CharType,
		Alive:     true,
		Speed:     spec.Config.Speed,
		Direction: cfg.DirectionRight,
		Ammo:      spec.Config.Ammo,
	})
	components.State.SetValue(e, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		InAir:        true,
	})

	components.Animation.Set(e, GenerateAnimations(spec.Config.CharType, spec.Sprites))
}
