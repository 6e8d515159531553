// shooter is a small side-scrolling action game: move, jump and shoot on a
// flat stage.
//
// Usage:
//
//	shooter [--config path] [--assets dir] [--debug]
package main

import (
	"fmt"
	"os"

	"github.com/automoto/shooter/assets"
	"github.com/automoto/shooter/config"
	"github.com/automoto/shooter/fonts"
	"github.com/automoto/shooter/scenes"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

var (
	flagConfig string
	flagAssets string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:          "shooter",
	Short:        "Side-scrolling shooter",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory containing the img/ tree (overrides config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show collision boxes and debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})

	used, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("assets") {
		config.C.AssetsDir = flagAssets
	}
	if flagDebug {
		config.Debug.Enabled = true
	}
	if config.Debug.Enabled {
		logger.SetLevel(log.DebugLevel)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if used != "" {
		logger.Info("loaded config", "path", used)
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	loader := assets.NewLoader(os.DirFS(config.C.AssetsDir), logger)
	scene := scenes.NewShooterScene(loader, logger)

	logger.Info("starting", "width", config.C.Width, "height", config.C.Height, "tps", config.C.TPS, "assets", config.C.AssetsDir)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
