package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/cardstudy/internal/inference"
	mock_inference "github.com/at-ishikawa/cardstudy/internal/mocks/inference"
)

func TestPropose(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(client *mock_inference.MockClient)
		want    []Row
		wantErr bool
	}{
		{
			name: "proposals become rows",
			setup: func(client *mock_inference.MockClient) {
				client.EXPECT().
					ProposeFlashcards(gomock.Any(), inference.ProposeFlashcardsRequest{Text: "source", MaxCards: 5}).
					Return(inference.ProposeFlashcardsResponse{
						Proposals: []inference.Proposal{{Front: "q1", Back: "a1"}, {Front: "q2", Back: "a2"}},
					}, nil)
			},
			want: []Row{{Front: "q1", Back: "a1"}, {Front: "q2", Back: "a2"}},
		},
		{
			name: "no proposals",
			setup: func(client *mock_inference.MockClient) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).
					Return(inference.ProposeFlashcardsResponse{}, nil)
			},
			want: []Row{},
		},
		{
			name: "client error",
			setup: func(client *mock_inference.MockClient) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).
					Return(inference.ProposeFlashcardsResponse{}, errors.New("response error 401"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			tt.setup(client)

			got, err := Propose(context.Background(), client, "source", 5)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
