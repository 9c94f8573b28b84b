package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/app"
	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	payslipEmployee string
	payslipOutDir   string
)

// cliPrincipal acts with the HR console's capabilities.
var cliPrincipal = user.Principal{UserID: "cli", Role: user.RoleAdmin}

var payslipCmd = &cobra.Command{
	Use:   "payslip",
	Short: "Write an employee's payslip as HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.App.Env, "warn")

		ctx := cmd.Context()
		stores, closeStores, err := openStores(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		now := time.Now().UTC()
		if err := app.SeedDemo(ctx, stores, cfg.Seed, now, bcrypt.MinCost); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
		if err != nil {
			return err
		}
		fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			return err
		}
		a := app.New(stores, jwtService, fileStorage, sse.NewHub(1))

		slip, err := a.Payroll.Payslip(ctx, cliPrincipal, payslipEmployee, now)
		if err != nil {
			return fmt.Errorf("render payslip for %s: %w", payslipEmployee, err)
		}

		if err := os.MkdirAll(payslipOutDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(payslipOutDir, slip.FileName)
		if err := os.WriteFile(path, slip.Body, 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	payslipCmd.Flags().StringVar(&payslipEmployee, "employee", "1", "employee id")
	payslipCmd.Flags().StringVar(&payslipOutDir, "out", ".", "output directory")
}
