package flashcard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/cardstudy/internal/srs"
)

//go:generate mockgen -source=repository.go -destination=../mocks/flashcard/mock_repository.go -package=mock_flashcard

// Repository stores flashcards and their scheduling state.
// Every method is scoped by owner; cards of other owners behave as absent.
type Repository interface {
	FindByID(ctx context.Context, ownerID, id string) (*Flashcard, error)
	FindNextDue(ctx context.Context, ownerID string, now time.Time, excludeID string) (*Flashcard, error)
	UpdateSchedule(ctx context.Context, ownerID, id string, expectedRevision int64, schedule srs.Schedule) (bool, error)
	ResetSchedule(ctx context.Context, ownerID, id string, now time.Time) (*Flashcard, error)
	ResetScheduleForIDs(ctx context.Context, ownerID string, ids []string, now time.Time) (int64, error)
	ResetAllSchedules(ctx context.Context, ownerID string, now time.Time) (int64, error)
	Create(ctx context.Context, card *Flashcard) error
	CountByOwner(ctx context.Context, ownerID string) (CardCounts, error)
}

// CardCounts holds the number of cards an owner has, split by source.
type CardCounts struct {
	Total int64 `db:"total"`
	AI    int64 `db:"ai"`
}

// Manual returns the number of hand-written cards.
func (c CardCounts) Manual() int64 {
	return c.Total - c.AI
}

const selectColumns = `id, owner_id, front, back, source, interval_days, ease_factor, repetitions,
	next_review, revision, created_at, updated_at`

// DBRepository implements Repository on top of sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByID returns the card, or nil if it does not exist for the owner.
func (r *DBRepository) FindByID(ctx context.Context, ownerID, id string) (*Flashcard, error) {
	var card Flashcard
	err := r.db.GetContext(ctx, &card, r.db.Rebind(
		"SELECT "+selectColumns+" FROM flashcards WHERE id = ? AND owner_id = ?"),
		id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(flashcard) > %w", err)
	}
	return normalize(&card), nil
}

// FindNextDue returns the most overdue card of the owner, or nil if nothing is due.
// Cards without a next review come first; ties are broken by id.
func (r *DBRepository) FindNextDue(ctx context.Context, ownerID string, now time.Time, excludeID string) (*Flashcard, error) {
	query := "SELECT " + selectColumns + " FROM flashcards WHERE owner_id = ? AND (next_review IS NULL OR next_review <= ?)"
	args := []any{ownerID, now.UTC()}
	if excludeID != "" {
		query += " AND id <> ?"
		args = append(args, excludeID)
	}
	query += " ORDER BY CASE WHEN next_review IS NULL THEN 0 ELSE 1 END, next_review, id LIMIT 1"

	var card Flashcard
	err := r.db.GetContext(ctx, &card, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(next due flashcard) > %w", err)
	}
	return normalize(&card), nil
}

// UpdateSchedule writes the schedule only if the stored revision still equals expectedRevision.
// It reports false when the row was changed or removed in the meantime.
func (r *DBRepository) UpdateSchedule(ctx context.Context, ownerID, id string, expectedRevision int64, schedule srs.Schedule) (bool, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(
		`UPDATE flashcards
		SET interval_days = ?, ease_factor = ?, repetitions = ?, next_review = ?, updated_at = ?, revision = revision + 1
		WHERE id = ? AND owner_id = ? AND revision = ?`),
		schedule.IntervalDays, schedule.EaseFactor, schedule.Repetitions, utcPtr(schedule.NextReview), schedule.UpdatedAt.UTC(),
		id, ownerID, expectedRevision)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(update flashcard schedule) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected == 1, nil
}

// ResetSchedule resets one card and returns it, or nil if it does not exist for the owner.
func (r *DBRepository) ResetSchedule(ctx context.Context, ownerID, id string, now time.Time) (*Flashcard, error) {
	query, args := resetQuery("id = ? AND owner_id = ?", now, id, ownerID)
	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("reset flashcard schedule > %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, ownerID, id)
}

// ResetScheduleForIDs resets the listed cards of the owner. Unknown ids are ignored.
func (r *DBRepository) ResetScheduleForIDs(ctx context.Context, ownerID string, ids []string, now time.Time) (int64, error) {
	var filtered []string
	for _, id := range ids {
		if strings.TrimSpace(id) != "" {
			filtered = append(filtered, id)
		}
	}
	if len(filtered) == 0 {
		return 0, nil
	}

	query, args := resetQuery("owner_id = ? AND id IN (?)", now, ownerID, filtered)
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return 0, fmt.Errorf("sqlx.In() > %w", err)
	}
	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reset flashcard schedules by ids > %w", err)
	}
	return affected, nil
}

// ResetAllSchedules resets every card of the owner.
func (r *DBRepository) ResetAllSchedules(ctx context.Context, ownerID string, now time.Time) (int64, error) {
	query, args := resetQuery("owner_id = ?", now, ownerID)
	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reset all flashcard schedules > %w", err)
	}
	return affected, nil
}

// Create inserts a new card.
func (r *DBRepository) Create(ctx context.Context, card *Flashcard) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(
		`INSERT INTO flashcards (id, owner_id, front, back, source, interval_days, ease_factor, repetitions,
			next_review, revision, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		card.ID, card.OwnerID, card.Front, card.Back, card.Source,
		card.IntervalDays, card.EaseFactor, card.Repetitions, utcPtr(card.NextReview),
		card.Revision, card.CreatedAt.UTC(), card.UpdatedAt.UTC()); err != nil {
		return fmt.Errorf("db.ExecContext(insert flashcard) > %w", err)
	}
	return nil
}

// CountByOwner returns how many cards the owner has.
func (r *DBRepository) CountByOwner(ctx context.Context, ownerID string) (CardCounts, error) {
	var counts CardCounts
	if err := r.db.GetContext(ctx, &counts, r.db.Rebind(
		`SELECT COUNT(*) AS total, COALESCE(SUM(CASE WHEN source = ? THEN 1 ELSE 0 END), 0) AS ai
		FROM flashcards WHERE owner_id = ?`),
		SourceAI, ownerID); err != nil {
		return CardCounts{}, fmt.Errorf("db.GetContext(count flashcards) > %w", err)
	}
	return counts, nil
}

func (r *DBRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext() > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected, nil
}

func resetQuery(where string, now time.Time, whereArgs ...any) (string, []any) {
	s := srs.ResetSchedule(now.UTC())
	query := `UPDATE flashcards
		SET interval_days = ?, repetitions = ?, ease_factor = ?, next_review = ?, updated_at = ?, revision = revision + 1
		WHERE ` + where
	args := append([]any{s.IntervalDays, s.Repetitions, s.EaseFactor, *s.NextReview, s.UpdatedAt}, whereArgs...)
	return query, args
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// normalize converts timestamps read from the driver to UTC.
func normalize(card *Flashcard) *Flashcard {
	card.CreatedAt = card.CreatedAt.UTC()
	card.UpdatedAt = card.UpdatedAt.UTC()
	card.NextReview = utcPtr(card.NextReview)
	return card
}
