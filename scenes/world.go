package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shooter/assets"
	cfg "github.com/automoto/shooter/config"
	"github.com/automoto/shooter/systems"
	"github.com/automoto/shooter/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShooterScene is the single play scene: one player and one idle enemy
// standing on a flat floor.
type ShooterScene struct {
	ecs    *ecs.ECS
	loader *assets.Loader
	logger *log.Logger
	once   sync.Once
}

func NewShooterScene(loader *assets.Loader, logger *log.Logger) *ShooterScene {
	return &ShooterScene{loader: loader, logger: logger}
}

// Update advances the scene one tick. It returns ebiten.Termination once the
// player quits.
func (s *ShooterScene) Update() error {
	s.once.Do(s.configure)
	s.ecs.Update()

	if systems.QuitRequested(s.ecs) {
		s.logger.Info("quit requested")
		return ebiten.Termination
	}
	return nil
}

func (s *ShooterScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		screen.Fill(color.Black)
		return
	}
	s.ecs.Draw(screen)
}

func (s *ShooterScene) configure() {
	s.ecs = NewWorld()

	playerFrames := s.loader.LoadCharacter(cfg.Player.CharType, cfg.Player.Scale, cfg.Player.FallbackWidth, cfg.Player.FallbackHeight)
	enemyFrames := s.loader.LoadCharacter(cfg.Enemy.CharType, cfg.Enemy.Scale, cfg.Enemy.FallbackWidth, cfg.Enemy.FallbackHeight)
	factory.SetBulletSprite(assets.NewImage(s.loader.LoadBullet(cfg.Bullet.Image, cfg.Bullet.FallbackWidth, cfg.Bullet.FallbackHeight)))

	Populate(s.ecs,
		factory.SpecFromFrames(cfg.Player, playerFrames, assets.NewSpriteSet(playerFrames)),
		factory.SpecFromFrames(cfg.Enemy, enemyFrames, assets.NewSpriteSet(enemyFrames)),
	)

	s.logger.Debug("scene ready",
		"player", playerFrames.CharType, "player_size", [2]int{playerFrames.Width, playerFrames.Height},
		"enemy", enemyFrames.CharType, "enemy_size", [2]int{enemyFrames.Width, enemyFrames.Height})
}

// NewWorld builds the ECS with every system and renderer in tick order.
func NewWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateFade)
	e.AddSystem(systems.UpdatePlayerControl)
	e.AddSystem(systems.UpdateSoldiers)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateStates)
	e.AddSystem(systems.UpdateBullets)
	e.AddSystem(systems.UpdateObjects)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawSoldiers)
	e.AddRenderer(cfg.Default, systems.DrawBullets)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawFade)

	return e
}

// Populate creates the collision space, stage, fade overlay and the two soldiers.
func Populate(e *ecs.ECS, player, enemy factory.SoldierSpec) (playerEntry, enemyEntry *donburi.Entry) {
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateStage(e, float64(cfg.C.Width), float64(cfg.C.Height), cfg.Physics.FloorY)
	factory.CreateFadeIn(e, cfg.Fade.Duration)

	playerEntry = factory.CreatePlayer(e, player)
	enemyEntry = factory.CreateEnemy(e, enemy)
	return playerEntry, enemyEntry
}
