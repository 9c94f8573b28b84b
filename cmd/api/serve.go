package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/app"
	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hris/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/cron"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const (
	sseBuffer       = 16
	shutdownTimeout = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server, seed an empty store and run the pending-leave digest job.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Init(cfg.App.Env, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStores()

	if err := app.SeedDemo(ctx, stores, cfg.Seed, time.Now().UTC(), bcrypt.DefaultCost); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	jwtService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("initialize local storage: %w", err)
	}

	a := app.New(stores, jwtService, fileStorage, sse.NewHub(sseBuffer))

	scheduler := cron.NewScheduler()
	scheduler.AddJob("pending-leave-digest", cfg.Jobs.PendingDigestInterval, a.Notifications.PublishPendingDigest)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, appHTTP.RouterOptions{
		Logger:         log,
		AllowedOrigins: cfg.App.FrontendURLs,
		UploadsDir:     fileStorage.Dir(),
	}, a.Handlers)

	// No WriteTimeout: the notification stream is long-lived.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", server.Addr, "store", cfg.Database.Driver)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("Received signal, shutting down...")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	log.Info("Server stopped")
	return nil
}
