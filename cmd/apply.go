package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tw-network-manager/internal/pkg/config"
	"tw-network-manager/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Run a single reconciliation pass and exit",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		logger := logging.GetLogger()
		path := cfg.NetworkConfigPath(networkConfigFlag)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		networkCfg, err := config.LoadNetwork(path)
		if err != nil {
			logger.WithField("network_config", path).WithError(err).Error("Failed to load network configuration")
			os.Exit(1)
		}

		reconciler, err := createReconciler(cfg)
		if err != nil {
			logger.WithError(err).Error("Failed to create reconciler")
			os.Exit(1)
		}

		if err := reconciler.Reconcile(ctx, networkCfg); err != nil {
			logger.WithError(err).Error("Reconciliation pass failed")
			os.Exit(1)
		}
		logger.Info("Reconciliation pass complete")
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
