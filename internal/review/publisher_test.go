package review_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_review "github.com/at-ishikawa/cardstudy/internal/mocks/review"
	"github.com/at-ishikawa/cardstudy/internal/review"
)

func TestNATSPublisher_Publish(t *testing.T) {
	event := review.Event{
		LogID:       "log-1",
		OwnerID:     "owner-1",
		FlashcardID: "card-1",
		Quality:     2,
		Success:     false,
		ReviewedAt:  time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		subject     string
		wantSubject string
		publishErr  error
		wantErr     bool
	}{
		{
			name:        "default subject",
			wantSubject: review.DefaultSubject,
		},
		{
			name:        "custom subject",
			subject:     "study.reviews",
			wantSubject: "study.reviews",
		},
		{
			name:        "connection error",
			wantSubject: review.DefaultSubject,
			publishErr:  fmt.Errorf("nats: connection closed"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conn := mock_review.NewMockConn(ctrl)
			conn.EXPECT().Publish(tt.wantSubject, gomock.Any()).
				DoAndReturn(func(_ string, data []byte) error {
					var got review.Event
					require.NoError(t, json.Unmarshal(data, &got))
					assert.Equal(t, event, got)
					return tt.publishErr
				})

			err := review.NewNATSPublisher(conn, tt.subject).Publish(context.Background(), event)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNATSPublisher_Publish_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mock_review.NewMockConn(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := review.NewNATSPublisher(conn, "").Publish(ctx, review.Event{})
	assert.ErrorIs(t, err, context.Canceled)
}
