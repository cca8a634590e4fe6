package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/config"
	"github.com/vovakirdan/snake-tui/internal/core"
	"github.com/vovakirdan/snake-tui/internal/platform/tui"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

var (
	flagConfig string
	flagFPS    int
	flagField  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD - Steer the snake
  R           - Restart (after game over)
  Q/Esc       - Quit

Examples:
  snake play
  snake play --fps 15
  snake play --field 30
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	playCmd.Flags().IntVar(&flagField, "field", 0, "Field size override (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game config (custom path, user config, or embedded default)
	gameCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override config values
	if flagFPS > 0 {
		gameCfg.Timing.TicksPerSecond = flagFPS
	}
	if flagField > 0 {
		gameCfg.Field.Size = flagField
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:        width,
		ScreenH:        height,
		FieldSize:      gameCfg.Field.Size,
		TicksPerSecond: gameCfg.Timing.TicksPerSecond,
		Seed:           flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
