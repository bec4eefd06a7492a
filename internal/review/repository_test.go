package review

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cardstudy/internal/srs"
)

func TestDBLogRepository_Append(t *testing.T) {
	reviewedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*60*60))
	log := &Log{
		ID:          "log-1",
		OwnerID:     "owner-1",
		FlashcardID: "card-1",
		Quality:     srs.QualityCorrectHesitation,
		ReviewedAt:  reviewedAt,
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "stores the review in UTC",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO review_logs (id, owner_id, flashcard_id, quality, reviewed_at) VALUES (?, ?, ?, ?, ?)")).
					WithArgs("log-1", "owner-1", "card-1", 4, reviewedAt.UTC()).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO review_logs")).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			repo := NewDBLogRepository(sqlx.NewDb(db, "mysql"))
			err = repo.Append(context.Background(), log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBLogRepository_FindByOwnerBetween(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	query := regexp.QuoteMeta("WHERE owner_id = $1 AND reviewed_at >= $2 AND reviewed_at < $3")
	columns := []string{"id", "owner_id", "flashcard_id", "quality", "reviewed_at"}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []Log
		wantErr   bool
	}{
		{
			name: "returns logs in the window",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("owner-1", from, to).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow("log-1", "owner-1", "card-1", 5, from.Add(time.Hour)).
						AddRow("log-2", "owner-1", "card-2", 1, from.Add(2*time.Hour)))
			},
			want: []Log{
				{ID: "log-1", OwnerID: "owner-1", FlashcardID: "card-1", Quality: srs.QualityPerfect, ReviewedAt: from.Add(time.Hour)},
				{ID: "log-2", OwnerID: "owner-1", FlashcardID: "card-2", Quality: srs.QualityIncorrect, ReviewedAt: from.Add(2 * time.Hour)},
			},
		},
		{
			name: "no logs",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("owner-1", from, to).WillReturnRows(sqlmock.NewRows(columns))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			repo := NewDBLogRepository(sqlx.NewDb(db, "postgres"))
			got, err := repo.FindByOwnerBetween(context.Background(), "owner-1", from, to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
