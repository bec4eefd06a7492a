// Package flashcard provides the flashcard record and its scheduling store.
package flashcard

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/at-ishikawa/cardstudy/internal/srs"
)

// MaxSideLength is the maximum number of characters on either side of a card.
const MaxSideLength = 500

// ErrInvalidSide is returned for a blank or too long card side.
var ErrInvalidSide = errors.New("flashcard: each side must have 1 to 500 characters")

// Source tells whether a card was written by hand or proposed by the generator.
type Source string

const (
	SourceManual Source = "manual"
	SourceAI     Source = "ai"
)

// Flashcard is a study item owned by a single user.
type Flashcard struct {
	ID        string    `db:"id" json:"id"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	Front     string    `db:"front" json:"front"`
	Back      string    `db:"back" json:"back"`
	Source    Source    `db:"source" json:"source"`
	Revision  int64     `db:"revision" json:"revision"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	srs.Schedule
}

// New returns a card with a fresh schedule, due at now.
func New(id, ownerID, front, back string, source Source, now time.Time) *Flashcard {
	return &Flashcard{
		ID:        id,
		OwnerID:   ownerID,
		Front:     front,
		Back:      back,
		Source:    source,
		CreatedAt: now,
		Schedule:  srs.NewSchedule(now),
	}
}

// NormalizeSides trims both sides and checks their length.
func NormalizeSides(front, back string) (string, string, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if n := utf8.RuneCountInString(front); n == 0 || n > MaxSideLength {
		return "", "", fmt.Errorf("%w: front has %d characters", ErrInvalidSide, n)
	}
	if n := utf8.RuneCountInString(back); n == 0 || n > MaxSideLength {
		return "", "", fmt.Errorf("%w: back has %d characters", ErrInvalidSide, n)
	}
	return front, back, nil
}
