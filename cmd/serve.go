package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tw-network-manager/internal/adapter/infrastructure/file"
	"tw-network-manager/internal/pkg/logging"
	"tw-network-manager/internal/watch"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch the network configuration and reconcile the uplink on every change",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadSettings()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		logger := logging.GetLogger()
		path := cfg.NetworkConfigPath(networkConfigFlag)
		logger.WithField("settings_file", settingsFlag).WithField("network_config", path).Info("Starting daemon")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		reconciler, err := createReconciler(cfg)
		if err != nil {
			logger.WithError(err).Error("Failed to create reconciler")
			os.Exit(1)
		}

		watcher := watch.NewWatcher(file.NewManagerAdapter(), reconciler, path, cfg.PollInterval)
		if cfg.FSNotify {
			notifier, err := file.NewNotifier(path)
			if err != nil {
				logger.WithError(err).Warn("File notifications unavailable, polling only")
			} else {
				defer notifier.Close()
				watcher.WithTrigger(notifier.Changes())
			}
		}

		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("Watcher failed")
			os.Exit(1)
		}
		logger.Info("Daemon stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
