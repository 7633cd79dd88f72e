package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crazysnake/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigInit     bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config, ~/.crazysnake/config.yaml, ./configs/crazysnake.yaml,
then the built-in defaults.

Examples:
  crazysnake config
  crazysnake config --defaults
  crazysnake config --init      # write defaults to ~/.crazysnake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the defaults to the user config file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigInit {
		return writeUserConfig()
	}
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func writeUserConfig() error {
	path := config.UserConfigPath()
	if path == "" {
		return fmt.Errorf("cannot resolve home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(config.DataDir(), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
