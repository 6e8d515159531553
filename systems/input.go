package systems

import (
	"github.com/automoto/shooter/components"
	cfg "github.com/automoto/shooter/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports raw keyboard and window state.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsWindowBeingClosed() bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) IsWindowBeingClosed() bool        { return ebiten.IsWindowBeingClosed() }

var keys KeySource = ebitenKeys{}

// SetKeySource replaces the keyboard used by UpdateInput and returns the
// previous one.
func SetKeySource(k KeySource) KeySource {
	prev := keys
	keys = k
	return prev
}

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE UpdatePlayerControl in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, bound := range cfg.Input.Bindings {
		for _, key := range bound {
			if keys.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.CloseRequested = keys.IsWindowBeingClosed()
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// QuitRequested reports whether the player asked to leave the game this tick.
func QuitRequested(ecs *ecs.ECS) bool {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return false
	}
	input := components.Input.Get(entry)
	return input.CloseRequested || input.Action(cfg.ActionQuit).Pressed
}
