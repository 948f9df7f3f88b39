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

	"github.com/urfave/cli/v2"

	"github.com/docnhanh/newsdesk/internal/ai"
	"github.com/docnhanh/newsdesk/internal/auth"
	"github.com/docnhanh/newsdesk/internal/config"
	"github.com/docnhanh/newsdesk/internal/database"
	"github.com/docnhanh/newsdesk/internal/domain"
	"github.com/docnhanh/newsdesk/internal/handler"
	"github.com/docnhanh/newsdesk/internal/logger"
	"github.com/docnhanh/newsdesk/internal/notify"
	"github.com/docnhanh/newsdesk/internal/repository"
)

func main() {
	app := &cli.App{
		Name:  "newsdesk",
		Usage: "Newsroom operations coordinator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
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
						Name:     "jwt-secret",
						Usage:    "Secret for signing access tokens",
						EnvVars:  []string{"JWT_SECRET"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
					&cli.StringFlag{
						Name:    "redis-url",
						Usage:   "Redis URL for event notifications (empty disables)",
						EnvVars: []string{"REDIS_URL"},
					},
					&cli.StringFlag{
						Name:    "openai-api-key",
						Usage:   "OpenAI API key for draft generation (empty disables)",
						EnvVars: []string{"OPENAI_API_KEY"},
					},
					&cli.StringFlag{
						Name:    "openai-model",
						Value:   config.DefaultOpenAIModel,
						Usage:   "Model used for draft generation",
						EnvVars: []string{"OPENAI_MODEL"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "seed-admin",
				Usage: "Create the initial admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "username",
						Value:   "admin",
						Usage:   "Admin username",
						EnvVars: []string{"ADMIN_USERNAME"},
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Admin password",
						EnvVars:  []string{"ADMIN_PASSWORD"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "email",
						Value:   "admin@localhost",
						Usage:   "Admin email",
						EnvVars: []string{"ADMIN_EMAIL"},
					},
				},
				Action: runSeedAdmin,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	db, err := database.New(ctx, c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	tokens, err := auth.NewManager(c.String("jwt-secret"), config.DefaultTokenIssuer, config.DefaultTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}

	publisher, err := notify.NewPublisher(c.String("redis-url"))
	if err != nil {
		return fmt.Errorf("failed to create notification publisher: %w", err)
	}
	defer publisher.Close()

	writer := ai.NewWriter(c.String("openai-api-key"), c.String("openai-model"))

	h := handler.New(db.Pool(), tokens, publisher, writer)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runSeedAdmin(c *cli.Context) error {
	ctx := c.Context

	db, err := database.New(ctx, c.String("database-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	actorRepo := repository.NewActorRepository(db.Pool())

	username := c.String("username")
	if _, err := actorRepo.GetByUsername(ctx, username); err == nil {
		slog.Info("admin account already exists", "username", username)
		return nil
	}

	hash, err := auth.HashPassword(c.String("password"))
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &domain.Actor{
		Username:     username,
		Email:        c.String("email"),
		FullName:     "Administrator",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.ActorStatusActive,
	}

	tx, err := db.Pool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := actorRepo.Create(ctx, tx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	slog.Info("admin account created", "username", username, "actor_id", admin.ID)
	return nil
}
