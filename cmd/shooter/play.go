package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/highscore"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagHighScore  string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the title screen.

Controls:
  A/D, Left/Right  - Steer
  Space/W/Up       - Fire (start, restart)
  P                - Pause / resume
  Esc/B            - Back to the title screen
  Q                - Quit (title screen)
  Ctrl+C           - Quit from anywhere
  Ctrl+S           - Save a screenshot

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 2
  hard   - Start at level 4
  fixed  - Stay at level 1, no progression

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --config ./my-shooter.yaml --sound
  shooter play --seed 42 --highscore /tmp/hs.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the gameplay flags; the root command shares them.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagHighScore, "highscore", highscore.DefaultPath, "Path to the high score file")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadShooter(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Collaborators must be set before the registry creates the game.
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	shooter.SetLogger(logger)
	shooter.SetHighScoreStore(highscore.NewFileStore(flagHighScore, logger))

	if flagSound {
		beeper := audio.NewBeeper(flagVolume, logger)
		if err := beeper.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer beeper.Close()
			shooter.SetSoundHook(beeper)
		}
	}

	game, err := registry.Create(shooter.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history disabled", "err", err)
		store = nil
	}

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "difficulty", flagDifficulty)
	runErr := tui.Run(game, store, logger, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
