package generation

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/generation/mock_repository.go -package=mock_generation

// Repository stores generation sessions.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	TotalsByOwner(ctx context.Context, ownerID string) (Totals, error)
}

// DBRepository implements Repository on top of sqlx.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Create(ctx context.Context, session *Session) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(
		"INSERT INTO generation_sessions (id, owner_id, proposed, accepted, created_at) VALUES (?, ?, ?, ?, ?)"),
		session.ID, session.OwnerID, session.Proposed, session.Accepted, session.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("db.ExecContext(insert generation session) > %w", err)
	}
	return nil
}

func (r *DBRepository) TotalsByOwner(ctx context.Context, ownerID string) (Totals, error) {
	var totals Totals
	if err := r.db.GetContext(ctx, &totals, r.db.Rebind(
		`SELECT COUNT(*) AS sessions, COALESCE(SUM(proposed), 0) AS proposed, COALESCE(SUM(accepted), 0) AS accepted
		FROM generation_sessions WHERE owner_id = ?`), ownerID); err != nil {
		return Totals{}, fmt.Errorf("db.GetContext(generation totals) > %w", err)
	}
	return totals, nil
}
