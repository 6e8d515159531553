package components

import (
	"github.com/yohamta/donburi"
)

// SoldierData is shared by the player and enemies.
type SoldierData struct {
	CharType  string
	Alive     bool
	Speed     float64
	Direction float64 // 1 when facing right, -1 when facing left
	Flip      bool

	// Intents for the current tick, written by input (or nothing, for enemies).
	MovingLeft    bool
	MovingRight   bool
	JumpRequested bool
	ShootHeld     bool

	ShootCooldown int
	Ammo          int
}

// Moving reports whether the soldier is trying to move horizontally.
func (s *SoldierData) Moving() bool {
	return s.MovingLeft || s.MovingRight
}

var Soldier = donburi.NewComponentType[SoldierData]()
