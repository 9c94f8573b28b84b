package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/app"
	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the Postgres schema and seed the demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.App.Env, cfg.App.LogLevel)

		if cfg.Database.Driver != config.StoreDriverPostgres {
			return fmt.Errorf("migrate requires STORE_DRIVER=%s", config.StoreDriverPostgres)
		}

		ctx := cmd.Context()
		stores, closeStores, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		if err := app.SeedDemo(ctx, stores, cfg.Seed, time.Now().UTC(), bcrypt.DefaultCost); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		slog.Info("migration complete")
		return nil
	},
}
