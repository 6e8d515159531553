package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds all keyboard mappings
type InputConfig struct {
	Bindings map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]ebiten.Key{
			ActionMoveLeft:  {ebiten.KeyLeft, ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyRight, ebiten.KeyD},
			ActionJump:      {ebiten.KeyUp, ebiten.KeyW},
			ActionShoot:     {ebiten.KeySpace},
			ActionQuit:      {ebiten.KeyEscape},
		},
	}
}
