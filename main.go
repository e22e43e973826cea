// popeye is a single-screen arcade platformer: collect Olive's hearts, eat
// spinach, and keep away from Brutus.
//
// Usage:
//
//	popeye [--config path] [--seed n] [--debug] [--log-level level]
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/popeye/assets"
	"github.com/automoto/popeye/config"
	"github.com/automoto/popeye/fonts"
	"github.com/automoto/popeye/scenes"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagSeed     int64
	flagDebug    bool
	flagLogLevel string
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{}
	g.scene = scenes.NewPlayingScene(g, session)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "popeye",
	Short:         "Popeye - a single-screen arcade platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(flagLogLevel)
	},
	RunE: run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config override")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Start with the hitbox overlay enabled (toggle with F1)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetReportTimestamp(true)

	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG").Bold(true).Foreground(lipgloss.Color("63"))
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Bold(true).Foreground(lipgloss.Color("86"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("192"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("204"))
	styles.Keys["score"] = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	log.SetStyles(styles)
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		log.Info("config loaded", "path", path)
	}
	config.Debug.ShowHitboxes = flagDebug

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed, "tps", config.C.TPS)

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		return fmt.Errorf("failed to load fonts: %w", err)
	}
	if err := assets.CheckSheets(); err != nil {
		return err
	}
	level, err := assets.LoadLevel("level1")
	if err != nil {
		return err
	}
	log.Info("level loaded", "name", level.Name, "platforms", len(level.Platforms), "ladders", len(level.Ladders))

	session := &scenes.Session{
		Level: level,
		Rng:   rand.New(rand.NewSource(seed)),
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Popeye")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	assets.PreloadAllAnimations()

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}
	return nil
}
