package factory

import (
	"github.com/automoto/shooter/assets"
	"github.com/automoto/shooter/assets/animations"
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
)

// GenerateAnimations builds the AnimationData for a character type. Frame
// counts come from the loaded sprites when present, otherwise from config.
func GenerateAnimations(charType string, sprites *assets.SpriteSet) *components.AnimationData {
	defs := cfg.AnimationsFor(charType)

	animData := &components.AnimationData{
		Animations: make(map[cfg.StateID]*animations.Animation, len(defs)),
		Sprites:    sprites,
	}

	for state, def := range defs {
		frames := def.Frames
		if sprites != nil {
			if n := len(sprites.Frames[state]); n > 0 {
				frames = n
			}
		}
		animData.Animations[state] = animations.NewCycle(frames, def.Speed)
	}

	animData.SetAnimation(cfg.Idle)
	return animData
}
