package config

// Horizontal facing, stored in SoldierData.Direction.
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
