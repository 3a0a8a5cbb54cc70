package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}

		var visits *analytics.Store
		if cfg.Analytics.Enabled() {
			visits, err = analytics.Open(cfg.Analytics.DBPath, slog.Default())
			if err != nil {
				return fmt.Errorf("opening analytics store: %w", err)
			}
			defer visits.Close()
			slog.Info("visitor analytics enabled with hashed addresses", "db", cfg.Analytics.DBPath)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, renderer, visits, slog.Default()).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
