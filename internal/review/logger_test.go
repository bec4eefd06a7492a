package review_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/at-ishikawa/cardstudy/internal/mocks/review"
	"github.com/at-ishikawa/cardstudy/internal/review"
	"github.com/at-ishikawa/cardstudy/internal/srs"
)

func TestLogger_Record(t *testing.T) {
	reviewedAt := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		withPublisher bool
		setup         func(repo *mock_review.MockLogRepository, publisher *mock_review.MockPublisher)
		wantErr       bool
	}{
		{
			name:          "appends and publishes",
			withPublisher: true,
			setup: func(repo *mock_review.MockLogRepository, publisher *mock_review.MockPublisher) {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event review.Event) error {
						assert.Equal(t, "owner-1", event.OwnerID)
						assert.Equal(t, "card-1", event.FlashcardID)
						assert.Equal(t, 4, event.Quality)
						assert.True(t, event.Success)
						return nil
					})
			},
		},
		{
			name: "works without a publisher",
			setup: func(repo *mock_review.MockLogRepository, _ *mock_review.MockPublisher) {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "publish failure is not returned",
			withPublisher: true,
			setup: func(repo *mock_review.MockLogRepository, publisher *mock_review.MockPublisher) {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(fmt.Errorf("nats: connection closed"))
			},
		},
		{
			name:          "append failure is returned and nothing is published",
			withPublisher: true,
			setup: func(repo *mock_review.MockLogRepository, _ *mock_review.MockPublisher) {
				repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_review.NewMockLogRepository(ctrl)
			publisher := mock_review.NewMockPublisher(ctrl)
			tt.setup(repo, publisher)

			var logger *review.Logger
			if tt.withPublisher {
				logger = review.NewLogger(repo, publisher)
			} else {
				logger = review.NewLogger(repo, nil)
			}

			got, err := logger.Record(context.Background(), "owner-1", "card-1", srs.QualityCorrectHesitation, reviewedAt)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			_, parseErr := uuid.Parse(got.ID)
			assert.NoError(t, parseErr)
			assert.Equal(t, "owner-1", got.OwnerID)
			assert.Equal(t, "card-1", got.FlashcardID)
			assert.Equal(t, srs.QualityCorrectHesitation, got.Quality)
			assert.Equal(t, reviewedAt, got.ReviewedAt)
		})
	}
}
