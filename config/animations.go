package config

type AnimationDef struct {
	// Frames is used when the frame count cannot be discovered from disk.
	Frames int
	Speed  float32 // ticks the counter waits before advancing
}

// AnimationCooldownTicks is 100ms at 60 TPS. The counter advances once it
// drops below zero, so a new frame shows every AnimationCooldownTicks+1 ticks.
const AnimationCooldownTicks = 6

// CharacterAnimations maps a character type to its animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {Frames: 5, Speed: AnimationCooldownTicks},
		Running: {Frames: 6, Speed: AnimationCooldownTicks},
		Jump:    {Frames: 1, Speed: AnimationCooldownTicks},
	},
	"enemy": {
		Idle:    {Frames: 5, Speed: AnimationCooldownTicks},
		Running: {Frames: 6, Speed: AnimationCooldownTicks},
		Jump:    {Frames: 1, Speed: AnimationCooldownTicks},
	},
}

// AnimationsFor returns the definitions for charType, falling back to the
// player set for unknown types.
func AnimationsFor(charType string) map[StateID]AnimationDef {
	if defs, ok := CharacterAnimations[charType]; ok {
		return defs
	}
	return CharacterAnimations["player"]
}
