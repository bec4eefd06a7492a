// Package review records completed reviews in an append-only log.
package review

import (
	"time"

	"github.com/at-ishikawa/cardstudy/internal/srs"
)

// Log is one completed review of a flashcard.
type Log struct {
	ID          string      `db:"id" json:"id"`
	OwnerID     string      `db:"owner_id" json:"owner_id"`
	FlashcardID string      `db:"flashcard_id" json:"flashcard_id"`
	Quality     srs.Quality `db:"quality" json:"quality"`
	ReviewedAt  time.Time   `db:"reviewed_at" json:"reviewed_at"`
}

// Event is the message published after a review was logged.
type Event struct {
	LogID       string    `json:"log_id"`
	OwnerID     string    `json:"owner_id"`
	FlashcardID string    `json:"flashcard_id"`
	Quality     int       `json:"quality"`
	Success     bool      `json:"success"`
	ReviewedAt  time.Time `json:"reviewed_at"`
}

func newEvent(l *Log) Event {
	return Event{
		LogID:       l.ID,
		OwnerID:     l.OwnerID,
		FlashcardID: l.FlashcardID,
		Quality:     int(l.Quality),
		Success:     l.Quality.IsSuccess(),
		ReviewedAt:  l.ReviewedAt,
	}
}
