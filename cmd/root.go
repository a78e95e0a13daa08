package cmd

import (
	"fmt"

	"tw-network-manager/internal/pkg/config"
	"tw-network-manager/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	settingsFlag      string
	networkConfigFlag string
)

var rootCmd = &cobra.Command{
	Use:   "twnm",
	Short: "twnm reconciles the gateway uplink (wired, WiFi, cellular) from a JSON configuration",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// loadSettings loads and validates the settings file and initializes logging.
func loadSettings() (*config.Config, error) {
	cfg, err := config.Load(settingsFlag)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsFlag, "settings", "f", "", "Path to settings file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&networkConfigFlag, "network-config", "c", "",
		"Path to network configuration (JSON), overrides "+config.NetworkConfigEnv)
}
