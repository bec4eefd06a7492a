package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/bootstrap"
	"github.com/at-ishikawa/cardstudy/internal/config"
	"github.com/at-ishikawa/cardstudy/internal/database"
	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/generation"
	"github.com/at-ishikawa/cardstudy/internal/review"
	"github.com/at-ishikawa/cardstudy/internal/study"
)

var errOwnerRequired = errors.New("owner id is required: pass --owner or set study.owner_id")

// environment holds what a command needs once the database is open.
type environment struct {
	cfg      *config.Config
	ownerID  string
	db       *sqlx.DB
	cards    *flashcard.DBRepository
	sessions *generation.DBRepository
	service  *study.Service
}

func (opts *rootOptions) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("config.LoadDotEnv() > %w", err)
	}
	loader, err := config.NewConfigLoader(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// run opens the database and the optional NATS connection, calls fn,
// and closes them in reverse order when fn returns or the process is interrupted.
func (opts *rootOptions) run(cmd *cobra.Command, requireOwner bool, fn func(ctx context.Context, env *environment) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	ownerID := opts.ownerID
	if ownerID == "" {
		ownerID = cfg.Study.OwnerID
	}
	if requireOwner && ownerID == "" {
		return errOwnerRequired
	}

	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open() > %w", err)
		}
		app.AddShutdownHook("database", func(context.Context) error {
			return db.Close()
		})

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

		cards := flashcard.NewDBRepository(db)
		logs := review.NewDBLogRepository(db)
		service, err := study.NewService(cards, logs, review.NewLogger(logs, publisher))
		if err != nil {
			return fmt.Errorf("study.NewService() > %w", err)
		}

		return fn(ctx, &environment{
			cfg:      cfg,
			ownerID:  ownerID,
			db:       db,
			cards:    cards,
			sessions: generation.NewDBRepository(db),
			service:  service,
		})
	})
}
