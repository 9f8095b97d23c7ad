// @title			Notes API
// @version		1.0
// @description	Simple Notes CRUD API backed by PostgreSQL.
// @BasePath	/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kavia-common/notes-backend/internal/config"
	"github.com/kavia-common/notes-backend/internal/database"
	"github.com/kavia-common/notes-backend/internal/handler"
	"github.com/kavia-common/notes-backend/internal/logger"
	"github.com/kavia-common/notes-backend/internal/middleware"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env file for local development; absence is not an error.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "notes",
		Usage: "Notes CRUD backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "host",
						Value:   config.DefaultHost,
						Usage:   "HTTP server listen host",
						EnvVars: []string{"HOST"},
					},
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "Connect to the database and apply pending migrations",
				Action: runMigrate,
			},
		},
		Action: runServe,
	}
}

func runServe(c *cli.Context) error {
	host := c.String("host")
	if host == "" {
		host = config.DefaultHost
	}
	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	// The connection string is resolved exactly once here. No connection is
	// established until the first request that actually needs the database,
	// so an unreachable database does not prevent startup.
	db := database.New(c.String("database-url"))
	defer db.Close()

	h := handler.New(db)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	var root http.Handler = mux
	root = middleware.NewCORS(config.AllowedOrigins).Handler(root)
	root = middleware.RequestLogger(root)

	server := &http.Server{
		Addr:              host + ":" + port,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://"+host+":"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(c.Context, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runMigrate(c *cli.Context) error {
	db := database.New(c.String("database-url"))
	defer db.Close()

	// Unlike serve, migrate connects eagerly and fails fast.
	if _, err := db.Get(c.Context); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	slog.Info("migrations applied")
	return nil
}
