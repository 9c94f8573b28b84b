package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dayflow-hris/hrms-backend-go/internal/app"
	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "Dayflow HRMS backend",
	Long:  `Leave, attendance, payroll and profile API for the Dayflow HR console.`,
	// serve is the default when no subcommand is given.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, payslipCmd)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStores returns the configured backing store. closeFn is never nil on success.
func openStores(ctx context.Context, cfg *config.Config) (stores app.Stores, closeFn func(), err error) {
	if cfg.Database.Driver != config.StoreDriverPostgres {
		slog.Info("using in-memory store")
		return app.MemoryStores(), func() {}, nil
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return app.Stores{}, nil, fmt.Errorf("connect database: %w", err)
	}
	if err := postgresql.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return app.Stores{}, nil, err
	}
	slog.Info("using postgres store", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return app.PostgresStores(db), db.Close, nil
}
