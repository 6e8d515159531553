package archetypes

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Soldier,
		components.Object,
		components.Physics,
		components.State,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Soldier,
		components.Object,
		components.Physics,
		components.State,
		components.Animation,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Sprite,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Fade = newArchetype(
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
