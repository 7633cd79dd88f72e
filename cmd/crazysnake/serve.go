package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazysnake/internal/metrics"
	"github.com/vovakirdan/crazysnake/internal/platform/tui"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagMetricsAddr     string
	flagServeFPS        int
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the CrazySnake SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. High scores are kept
per SSH user name in the server's database. Sessions play without sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crazysnake/host_key

Examples:
  crazysnake serve                           # Listen on :23234 with auto-generated key
  crazysnake serve --ssh :2222               # Listen on port 2222
  crazysnake serve --host-key ./my_host_key  # Use specific host key
  crazysnake serve --metrics :9090           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus metrics address (empty = disabled)")
	serveCmd.Flags().IntVar(&flagServeFPS, "fps", defaults.FrameRate, "Display frames per second per session")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "crazysnake-ssh")

	gameCfg, err := loadConfig(flagServeDifficulty)
	if err != nil {
		return err
	}

	var rec *metrics.Recorder
	if flagMetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec = metrics.New(reg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := metrics.Serve(ctx, flagMetricsAddr, reg, logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		FrameRate:   flagServeFPS,
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, rec, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting CrazySnake SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
