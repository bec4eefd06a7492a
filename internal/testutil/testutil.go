// Package testutil provides shared test helpers for config files and SQLite-backed fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardstudy/internal/config"
	"github.com/at-ishikawa/cardstudy/internal/database"
	"github.com/at-ishikawa/cardstudy/internal/flashcard"
)

// envKeys are cleared so that the developer's environment does not leak into tests.
var envKeys = []string{"DB_PASSWORD", "NATS_URL", "CARDSTUDY_OWNER_ID", "OPENAI_API_KEY", "OPENAI_MODEL"}

// SetupTestConfig creates a config file that uses a SQLite database in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
`, filepath.Join(tmpDir, "cardstudy.db"))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// OpenTestDB opens a migrated SQLite database in a temporary directory.
// It is closed when the test finishes.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "cardstudy.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// FlashcardOption configures a flashcard fixture.
type FlashcardOption func(*flashcard.Flashcard)

// WithID replaces the generated id, for tests that depend on id order.
func WithID(id string) FlashcardOption {
	return func(card *flashcard.Flashcard) {
		card.ID = id
	}
}

// WithNextReview sets when the card is due. Nil makes it a never-reviewed card.
func WithNextReview(next *time.Time) FlashcardOption {
	return func(card *flashcard.Flashcard) {
		card.NextReview = next
	}
}

// WithSource sets the source of the card.
func WithSource(source flashcard.Source) FlashcardOption {
	return func(card *flashcard.Flashcard) {
		card.Source = source
	}
}

// CreateFlashcard inserts a manual card due at now and returns it.
func CreateFlashcard(t *testing.T, db *sqlx.DB, ownerID, front string, now time.Time, opts ...FlashcardOption) *flashcard.Flashcard {
	t.Helper()

	card := flashcard.New(uuid.NewString(), ownerID, front, front+" answer", flashcard.SourceManual, now.UTC())
	for _, opt := range opts {
		opt(card)
	}
	require.NoError(t, flashcard.NewDBRepository(db).Create(context.Background(), card))
	return card
}
