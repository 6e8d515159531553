package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`

	// AssetsDir is the directory holding the img/ tree.
	AssetsDir string `yaml:"assets_dir"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FloorY       float64 `yaml:"floor_y"`
}

// SoldierConfig describes one kind of soldier (player or enemy).
type SoldierConfig struct {
	CharType string  `yaml:"char_type"`
	X        float64 `yaml:"x"` // spawn centre
	Y        float64 `yaml:"y"`
	Scale    float64 `yaml:"scale"`
	Speed    float64 `yaml:"speed"`
	Ammo     int     `yaml:"ammo"`

	// Collision size used when no sprite could be loaded.
	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Speed         float64 `yaml:"speed"`
	ShootCooldown int     `yaml:"shoot_cooldown"` // ticks between shots
	SpawnOffset   float64 `yaml:"spawn_offset"`   // fraction of shooter width in front of centre
	Image         string  `yaml:"image"`

	FallbackWidth  int `yaml:"fallback_width"`
	FallbackHeight int `yaml:"fallback_height"`
}

// FadeConfig controls the scene fade-in overlay.
type FadeConfig struct {
	Duration float32 `yaml:"duration"` // seconds
}

// DebugConfig toggles development overlays.
type DebugConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ColorsConfig holds the palette used by the renderers.
type ColorsConfig struct {
	Background color.RGBA
	FloorLine  color.RGBA
	Player     color.RGBA
	Enemy      color.RGBA
	Bullet     color.RGBA
	HUDText    color.RGBA
	Hitbox     color.RGBA
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player SoldierConfig
var Enemy SoldierConfig
var Bullet BulletConfig
var Fade FadeConfig
var Debug DebugConfig
var Colors ColorsConfig

func init() {
	Reset()
}

// Reset restores every global to its default value.
func Reset() {
	C = &Config{
		Width:     800,
		Height:    int(800 * 0.8),
		Title:     "Shooter",
		TPS:       60,
		AssetsDir: ".",
	}

	Physics = PhysicsConfig{
		Gravity:      0.75,
		JumpSpeed:    11,
		MaxFallSpeed: 10,
		FloorY:       300,
	}

	Player = SoldierConfig{
		CharType:       "player",
		X:              200,
		Y:              200,
		Scale:          3,
		Speed:          5,
		Ammo:           20,
		FallbackWidth:  13,
		FallbackHeight: 20,
	}

	Enemy = SoldierConfig{
		CharType:       "enemy",
		X:              300,
		Y:              200,
		Scale:          3,
		Speed:          2,
		Ammo:           20,
		FallbackWidth:  13,
		FallbackHeight: 20,
	}

	Bullet = BulletConfig{
		Speed:          10,
		ShootCooldown:  20,
		SpawnOffset:    0.6,
		Image:          "img/icons/bullet.png",
		FallbackWidth:  6,
		FallbackHeight: 4,
	}

	Fade = FadeConfig{Duration: 0.5}

	Debug = DebugConfig{}

	Colors = ColorsConfig{
		Background: color.RGBA{144, 201, 120, 255},
		FloorLine:  color.RGBA{255, 0, 0, 255},
		Player:     color.RGBA{40, 90, 200, 255},
		Enemy:      color.RGBA{200, 60, 60, 255},
		Bullet:     color.RGBA{250, 220, 60, 255},
		HUDText:    color.RGBA{255, 255, 255, 255},
		Hitbox:     color.RGBA{255, 0, 255, 160},
	}
}

// Validate reports the first configuration value that would make the game
// unplayable.
func Validate() error {
	var errs []error

	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", C.Width, C.Height))
	}
	if C.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", C.TPS))
	}
	if Physics.FloorY <= 0 || Physics.FloorY > float64(C.Height) {
		errs = append(errs, fmt.Errorf("floor_y %.1f outside window height %d", Physics.FloorY, C.Height))
	}
	if Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity %.2f must be positive", Physics.Gravity))
	}
	if Physics.JumpSpeed <= 0 {
		errs = append(errs, fmt.Errorf("jump_speed %.2f must be positive", Physics.JumpSpeed))
	}
	if Physics.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("max_fall_speed %.2f must be positive", Physics.MaxFallSpeed))
	}
	for _, s := range []SoldierConfig{Player, Enemy} {
		if s.CharType == "" {
			errs = append(errs, errors.New("soldier char_type must not be empty"))
		}
		if s.Scale <= 0 {
			errs = append(errs, fmt.Errorf("%s: scale %.2f must be positive", s.CharType, s.Scale))
		}
		if s.Speed <= 0 {
			errs = append(errs, fmt.Errorf("%s: speed %.2f must be positive", s.CharType, s.Speed))
		}
		if s.Ammo < 0 {
			errs = append(errs, fmt.Errorf("%s: ammo %d must not be negative", s.CharType, s.Ammo))
		}
	}
	if Bullet.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bullet speed %.2f must be positive", Bullet.Speed))
	}
	if Bullet.ShootCooldown < 0 {
		errs = append(errs, fmt.Errorf("shoot_cooldown %d must not be negative", Bullet.ShootCooldown))
	}

	return errors.Join(errs...)
}
