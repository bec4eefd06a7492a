package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/cardstudy/internal/srs"
)

// Logger appends review logs and announces them through an optional Publisher.
type Logger struct {
	repo      LogRepository
	publisher Publisher
	newID     func() string
}

// NewLogger creates a Logger. publisher may be nil.
func NewLogger(repo LogRepository, publisher Publisher) *Logger {
	return &Logger{
		repo:      repo,
		publisher: publisher,
		newID:     uuid.NewString,
	}
}

// Record appends a log entry for the review.
// A publish failure is only logged; the entry is already stored at that point.
func (l *Logger) Record(ctx context.Context, ownerID, flashcardID string, quality srs.Quality, at time.Time) (*Log, error) {
	entry := &Log{
		ID:          l.newID(),
		OwnerID:     ownerID,
		FlashcardID: flashcardID,
		Quality:     quality,
		ReviewedAt:  at.UTC(),
	}
	if err := l.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("repo.Append() > %w", err)
	}

	if l.publisher != nil {
		if err := l.publisher.Publish(ctx, newEvent(entry)); err != nil {
			slog.WarnContext(ctx, "failed to publish review event",
				"error", err,
				"log_id", entry.ID,
				"flashcard_id", flashcardID)
		}
	}
	return entry, nil
}
