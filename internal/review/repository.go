package review

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/review/mock_repository.go -package=mock_review

// LogRepository appends review logs and reads them back by time range.
type LogRepository interface {
	Append(ctx context.Context, log *Log) error
	// FindByOwnerBetween returns logs with from <= reviewed_at < to, oldest first.
	FindByOwnerBetween(ctx context.Context, ownerID string, from, to time.Time) ([]Log, error)
}

// DBLogRepository implements LogRepository on top of sqlx.
type DBLogRepository struct {
	db *sqlx.DB
}

// NewDBLogRepository creates a new DBLogRepository.
func NewDBLogRepository(db *sqlx.DB) *DBLogRepository {
	return &DBLogRepository{db: db}
}

func (r *DBLogRepository) Append(ctx context.Context, log *Log) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(
		"INSERT INTO review_logs (id, owner_id, flashcard_id, quality, reviewed_at) VALUES (?, ?, ?, ?, ?)"),
		log.ID, log.OwnerID, log.FlashcardID, int(log.Quality), log.ReviewedAt.UTC()); err != nil {
		return fmt.Errorf("db.ExecContext(insert review log) > %w", err)
	}
	return nil
}

func (r *DBLogRepository) FindByOwnerBetween(ctx context.Context, ownerID string, from, to time.Time) ([]Log, error) {
	var logs []Log
	if err := r.db.SelectContext(ctx, &logs, r.db.Rebind(
		`SELECT id, owner_id, flashcard_id, quality, reviewed_at FROM review_logs
		WHERE owner_id = ? AND reviewed_at >= ? AND reviewed_at < ?
		ORDER BY reviewed_at, id`),
		ownerID, from.UTC(), to.UTC()); err != nil {
		return nil, fmt.Errorf("db.SelectContext(review logs) > %w", err)
	}
	for i := range logs {
		logs[i].ReviewedAt = logs[i].ReviewedAt.UTC()
	}
	return logs, nil
}
