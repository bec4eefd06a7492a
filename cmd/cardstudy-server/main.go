package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/bootstrap"
	"github.com/at-ishikawa/cardstudy/internal/config"
	"github.com/at-ishikawa/cardstudy/internal/database"
	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/metrics"
	"github.com/at-ishikawa/cardstudy/internal/ratelimit"
	"github.com/at-ishikawa/cardstudy/internal/review"
	"github.com/at-ishikawa/cardstudy/internal/server"
	"github.com/at-ishikawa/cardstudy/internal/study"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "cardstudy-server",
		Short:         "Cardstudy study service HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	app := bootstrap.New(bootstrap.WithLogger(logger))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	return app.Run(ctx, func(ctx context.Context) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open() > %w", err)
		}
		app.AddShutdownHook("database", func(context.Context) error {
			return db.Close()
		})
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}

		var publisher review.Publisher
		if cfg.NATS.URL != "" {
			conn, err := review.Connect(cfg.NATS.URL)
			if err != nil {
				return fmt.Errorf("review.Connect(%s) > %w", cfg.NATS.URL, err)
			}
			app.AddShutdownHook("nats", func(context.Context) error {
				return conn.Drain()
			})
			publisher = review.NewNATSPublisher(conn, cfg.NATS.Subject)
		}

		logs := review.NewDBLogRepository(db)
		service, err := study.NewService(flashcard.NewDBRepository(db), logs, review.NewLogger(logs, publisher))
		if err != nil {
			return fmt.Errorf("study.NewService() > %w", err)
		}

		limiter := ratelimit.NewSlidingWindow(cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window)

		srv := &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: server.NewRouter(service, server.RouterOptions{
				Logger:         logger,
				Metrics:        metrics.New(),
				Limiter:        limiter,
				OwnerHeader:    cfg.Server.OwnerHeader,
				AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}
		app.AddShutdownHook("http", srv.Shutdown)

		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("config.LoadDotEnv() > %w", err)
	}
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
