package components

import (
	"github.com/automoto/shooter/assets"
	"github.com/automoto/shooter/assets/animations"
	"github.com/automoto/shooter/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	Sprites          *assets.SpriteSet // nil when rendering with fallback rectangles
}

// SetAnimation switches to the animation for state. Switching restarts the
// new animation from its first frame; asking for the current state again
// leaves the frame index alone.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return false
	}

	a.CurrentSheet = state
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		return true
	}
	a.CurrentAnimation = anim
	a.CurrentAnimation.Restart()
	return true
}

// Frame returns the current frame index, 0 when nothing is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
