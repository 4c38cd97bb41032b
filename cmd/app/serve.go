package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workshop/internal/adapters/out/postgres/migrations"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(v *viper.Viper) *cobra.Command {
	var skipMigrations bool

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			config, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(config)

			if !skipMigrations {
				if err = migrations.Up(config.DatabaseURL()); err != nil {
					return err
				}
				logger.Info("Migrations applied")
			}

			root, closeDB, err := connect(config)
			if err != nil {
				return err
			}
			defer closeDB()

			registry, orderMetrics, err := root.CreateRegistry()
			if err != nil {
				return err
			}
			e, err := root.CreateRouter(registry)
			if err != nil {
				return err
			}

			jobManager := root.CreateJobManager(orderMetrics)
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server started", "address", config.HTTPAddress())
				if startErr := e.Start(config.HTTPAddress()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
					serveErr <- startErr
				}
				close(serveErr)
			}()

			select {
			case err = <-serveErr:
				return err
			case <-ctx.Done():
			}

			logger.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	serve.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply database migrations on start")
	return serve
}
