package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crazysnake/internal/audio"
	"github.com/vovakirdan/crazysnake/internal/config"
	"github.com/vovakirdan/crazysnake/internal/core"
	"github.com/vovakirdan/crazysnake/internal/platform/tui"
	"github.com/vovakirdan/crazysnake/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play CrazySnake",
	Long: `Start a local game.

Controls:
  Arrows/WASD/ZQSD/numpad - Steer
  Mouse drag              - Steer (swipe)
  Space                   - Hang up the phone
  Esc                     - Pause / resume / back to menu
  Enter                   - Select menu item
  Ctrl+C (q in menus)     - Quit

Food:
  ■ grow   ★ invincible   ○ wall phase   + faster   □ slower   ✕ reversed

Difficulty options:
  easy   - Slower base speed
  normal - Configured base speed
  hard   - Faster base speed

Examples:
  crazysnake play
  crazysnake play --difficulty hard
  crazysnake play --seed 42 --mute
  crazysnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Display frames per second")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, logErr := openLogFile(); logErr == nil {
		defer f.Close()
		logOut = f
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger := newLogger(logOut, "crazysnake")

	runtime := core.DefaultConfig()
	runtime.FrameRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// Open score storage
	var highScores *storage.Profile
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		highScores = storage.NewProfile(store, storage.LocalProfile, logger)
	}

	opts := tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
		Profile: storage.LocalProfile,
	}
	if highScores != nil {
		opts.Store = highScores
	}

	if cfg.Audio.Enabled && !flagMute {
		if player, closeAudio := startAudio(cfg, logger); player != nil {
			defer closeAudio()
			opts.Cues = player
		}
	}

	logger.Info("starting game", "seed", flagSeed, "difficulty", flagDifficulty, "base_tick", cfg.Speed.BaseTick)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// startAudio opens the speaker and loads the sound set in the background.
// A nil player means sound is unavailable.
func startAudio(cfg config.Config, logger *log.Logger) (*audio.Player, func()) {
	out, err := audio.OpenSpeaker()
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
		return nil, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	player := audio.NewPlayer(cfg.Audio, cfg.Colors, out, audio.WithLogger(logger))
	player.LoadAsync(ctx)

	return player, func() {
		cancel()
		out.Close()
	}
}
