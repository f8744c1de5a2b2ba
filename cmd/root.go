// Package cmd defines the tracelab CLI.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tracelab/app"
	"github.com/kilianp07/tracelab/config"
	"github.com/kilianp07/tracelab/infra/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tracelab",
	Short: "Metrics tracking daemon",
	Long:  "tracelab ingests named values over MQTT, folds them into indicators and flushes step summaries to the configured sinks.",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	logger.New("main").Infof("run %s started", svc.RunID)
	return svc.Run(ctx)
}
