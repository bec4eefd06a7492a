package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/generation"
	"github.com/at-ishikawa/cardstudy/internal/importer"
	"github.com/at-ishikawa/cardstudy/internal/inference"
	mock_flashcard "github.com/at-ishikawa/cardstudy/internal/mocks/flashcard"
	mock_generation "github.com/at-ishikawa/cardstudy/internal/mocks/generation"
	mock_inference "github.com/at-ishikawa/cardstudy/internal/mocks/inference"
	"github.com/at-ishikawa/cardstudy/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var output bytes.Buffer
	command := newRootCommand()
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetIn(strings.NewReader(""))
	command.SetArgs(args)
	err := command.Execute()
	return output.String(), err
}

func TestCommands_StudyFlow(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())
	run := func(args ...string) string {
		t.Helper()
		output, err := execute(t, append([]string{"--config", cfgPath, "--owner", "learner-1"}, args...)...)
		require.NoError(t, err, output)
		return output
	}

	assert.Equal(t, "migrated\n", run("migrate"))

	cardsPath := filepath.Join(t.TempDir(), "cards.yml")
	require.NoError(t, os.WriteFile(cardsPath, []byte("- front: apple\n  back: りんご\n- front: ''\n  back: empty\n"), 0644))
	output := run("import", cardsPath)
	assert.Contains(t, output, "imported 1 flashcard(s), skipped 1")
	assert.Contains(t, output, "row 2")

	output = run("next")
	fields := strings.SplitN(strings.TrimSpace(output), "\t", 2)
	require.Len(t, fields, 2, output)
	cardID := fields[0]
	assert.Equal(t, "apple", fields[1])

	assert.Equal(t, "No cards due.\n", run("next", "--exclude", cardID))

	output = run("review", cardID, "5")
	assert.Contains(t, output, "interval 1 day(s), ease 2.60")
	assert.Equal(t, "No cards due.\n", run("next"))

	output = run("stats", "today")
	assert.Contains(t, output, "| 1 | 1 | 100.0% |")
	assert.Contains(t, output, "| 5 | 1 |")

	assert.Equal(t, "total: 1\nai: 0\nmanual: 1\nai usage: 0.0%\n", run("stats", "cards"))
	assert.Equal(t, "sessions: 0\nproposed: 0\naccepted: 0\nacceptance: 0.0%\n", run("stats", "generation"))

	reportPath := filepath.Join(t.TempDir(), "today.md")
	assert.Contains(t, run("stats", "today", "--output", reportPath), "wrote "+reportPath)
	assert.FileExists(t, reportPath)

	pdfPath := filepath.Join(t.TempDir(), "exports", "today.pdf")
	assert.Equal(t, "wrote "+pdfPath+"\n", run("stats", "today", "--pdf", pdfPath))
	assert.FileExists(t, pdfPath)

	assert.Equal(t, "reset 1 flashcard(s)\n", run("reset", "--all"))
	assert.Contains(t, run("next"), cardID)

	assert.Equal(t, "reset 1 flashcard(s)\n", run("reset", cardID))
}

func TestCommands_Errors(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())
	textPath := filepath.Join(t.TempDir(), "source.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("Paris is the capital of France."), 0644))

	tests := []struct {
		name            string
		args            []string
		wantErr         error
		wantErrContains string
	}{
		{
			name:    "owner is required",
			args:    []string{"--config", cfgPath, "next"},
			wantErr: errOwnerRequired,
		},
		{
			name:            "quality must be a number",
			args:            []string{"--config", cfgPath, "--owner", "o", "review", "id", "five"},
			wantErrContains: "quality must be an integer",
		},
		{
			name:            "reset needs ids or --all",
			args:            []string{"--config", cfgPath, "--owner", "o", "reset"},
			wantErrContains: "pass flashcard ids or --all",
		},
		{
			name:            "reset rejects ids with --all",
			args:            []string{"--config", cfgPath, "--owner", "o", "reset", "--all", "id"},
			wantErrContains: "pass flashcard ids or --all",
		},
		{
			name:            "pdf path needs a pdf extension",
			args:            []string{"--config", cfgPath, "--owner", "o", "stats", "today", "--pdf", "today.md"},
			wantErrContains: "--pdf must name a .pdf file",
		},
		{
			name:            "unknown source",
			args:            []string{"--config", cfgPath, "--owner", "o", "import", "cards.yml", "--source", "robot"},
			wantErrContains: "--source must be",
		},
		{
			name:            "generate needs an api key",
			args:            []string{"--config", cfgPath, "--owner", "o", "generate", textPath},
			wantErrContains: "OPENAI_API_KEY",
		},
		{
			name:            "generate needs a readable file",
			args:            []string{"--config", cfgPath, "--owner", "o", "generate", filepath.Join(t.TempDir(), "missing.txt")},
			wantErrContains: "os.ReadFile",
		},
		{
			name:            "broken config",
			args:            []string{"--config", filepath.Join(t.TempDir(), "missing", "config.yml"), "--owner", "o", "next"},
			wantErrContains: "loadConfig()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	proposals := inference.ProposeFlashcardsResponse{
		Proposals: []inference.Proposal{
			{Front: "Capital of France?", Back: "Paris"},
			{Front: "Capital of Japan?", Back: "Tokyo"},
		},
	}
	recordSession := func(sessions *mock_generation.MockRepository, wantProposed, wantAccepted int) {
		sessions.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session *generation.Session) error {
				assert.Equal(t, "owner-1", session.OwnerID)
				assert.NotEmpty(t, session.ID)
				assert.Equal(t, wantProposed, session.Proposed)
				assert.Equal(t, wantAccepted, session.Accepted)
				return nil
			})
	}

	tests := []struct {
		name       string
		accept     bool
		setup      func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository)
		wantOutput []string
		wantErr    bool
	}{
		{
			name: "proposals are only printed without accept",
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(proposals, nil)
				recordSession(sessions, 2, 0)
			},
			wantOutput: []string{"1. Capital of France?\n   Paris\n", "--accept"},
		},
		{
			name:   "accepted proposals are imported as ai cards",
			accept: true,
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(proposals, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
					DoAndReturn(func(_ context.Context, card *flashcard.Flashcard) error {
						assert.Equal(t, flashcard.SourceAI, card.Source)
						assert.Equal(t, "owner-1", card.OwnerID)
						return nil
					})
				recordSession(sessions, 2, 2)
			},
			wantOutput: []string{"imported 2 flashcard(s), skipped 0"},
		},
		{
			name:   "failed import still records what was accepted",
			accept: true,
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(proposals, nil)
				gomock.InOrder(
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")),
				)
				recordSession(sessions, 2, 1)
			},
			wantErr: true,
		},
		{
			name:   "nothing proposed",
			accept: true,
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(inference.ProposeFlashcardsResponse{}, nil)
				recordSession(sessions, 0, 0)
			},
			wantOutput: []string{"No flashcards proposed."},
		},
		{
			name: "session store failure does not fail the command",
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(proposals, nil)
				sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantOutput: []string{"2. Capital of Japan?\n   Tokyo\n"},
		},
		{
			name: "client error",
			setup: func(client *mock_inference.MockClient, repo *mock_flashcard.MockRepository, sessions *mock_generation.MockRepository) {
				client.EXPECT().ProposeFlashcards(gomock.Any(), gomock.Any()).Return(inference.ProposeFlashcardsResponse{}, errors.New("response error 401"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			repo := mock_flashcard.NewMockRepository(ctrl)
			sessions := mock_generation.NewMockRepository(ctrl)
			tt.setup(client, repo, sessions)

			var output bytes.Buffer
			err := generate(context.Background(), &output, client, importer.NewImporter(repo), sessions, "owner-1", "text", 5, tt.accept)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output.String(), want)
			}
		})
	}
}
