package assets

import (
	"image"

	"github.com/automoto/shooter/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSet is the GPU side of CharacterFrames.
type SpriteSet struct {
	Frames map[config.StateID][]*ebiten.Image
}

func NewSpriteSet(cf CharacterFrames) *SpriteSet {
	s := &SpriteSet{Frames: make(map[config.StateID][]*ebiten.Image, len(cf.Frames))}
	for state, frames := range cf.Frames {
		imgs := make([]*ebiten.Image, len(frames))
		for i, f := range frames {
			imgs[i] = ebiten.NewImageFromImage(f)
		}
		s.Frames[state] = imgs
	}
	return s
}

// Frame returns the image for state at index, or nil when out of range.
func (s *SpriteSet) Frame(state config.StateID, index int) *ebiten.Image {
	if s == nil {
		return nil
	}
	frames := s.Frames[state]
	if index < 0 || index >= len(frames) {
		return nil
	}
	return frames[index]
}

func NewImage(img image.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img)
}
