// crazysnake is an arcade snake game for the terminal with power-up food,
// phone calls that interrupt play, and persisted high scores.
//
// Usage:
//
//	crazysnake play          - Play locally
//	crazysnake serve         - Start SSH server for remote play
//	crazysnake scores        - Show high scores
//	crazysnake config        - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Game config YAML
//	--db <path>     - Set database path (default: ~/.crazysnake/scores.db)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazysnake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crazysnake",
	Short: "CrazySnake - arcade snake with power-ups in your terminal",
	Long: `CrazySnake is a terminal snake game. Food can make the snake
invincible, let it pass through walls once, speed it up, slow it down
or reverse its controls. Every now and then the phone rings.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  crazysnake play
  crazysnake play --difficulty hard --mute
  crazysnake serve --ssh :2222 --metrics :9090
  crazysnake scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crazysnake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens ~/.crazysnake/crazysnake.log for appending. The terminal
// belongs to the TUI during play.
func openLogFile() (*os.File, error) {
	dir := config.DataDir()
	if dir == "" {
		return nil, fmt.Errorf("cannot resolve home directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "crazysnake.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the game config and applies a difficulty preset.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
