package factory

import (
	"github.com/automoto/shooter/archetypes"
	"github.com/automoto/shooter/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFadeIn adds an overlay that goes from opaque to clear over duration seconds.
func CreateFadeIn(ecs *ecs.ECS, duration float32) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		Tween: gween.New(1, 0, duration, ease.OutQuad),
		Alpha: 1,
	})
	return fade
}
