// Command api runs the barbershop HTTP API.
//
// Subcommands:
//
//	serve    start the HTTP server and background workers (default)
//	migrate  apply pending database migrations and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/database"
	"github.com/deppfellow/barbershop-api/internal/handler"
	"github.com/deppfellow/barbershop-api/internal/logger"
	"github.com/deppfellow/barbershop-api/internal/middleware"
	"github.com/deppfellow/barbershop-api/internal/repository"
	"github.com/deppfellow/barbershop-api/internal/router"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// shutdownTimeout bounds graceful shutdown: inflight requests get this long
// to finish before the process exits.
const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Barbershop management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server and background workers",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context())
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg, nil)

	return database.Migrate(ctx, log, cfg)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log := logger.NewLogger(cfg, loggerService)

	s, err := server.New(cfg, log, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewService(s, repos)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	r := router.New(s, handlers, middlewares)
	s.SetupHTTPServer(r)

	// Serve in the background so the main goroutine can wait for signals.
	serveErr := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if loggerService != nil {
		loggerService.Shutdown(shutdownTimeout)
	}

	log.Info().Msg("server stopped")
	return nil
}
