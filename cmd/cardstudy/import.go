package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/generation"
	"github.com/at-ishikawa/cardstudy/internal/importer"
	"github.com/at-ishikawa/cardstudy/internal/inference"
	"github.com/at-ishikawa/cardstudy/internal/inference/openai"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var source string
	command := &cobra.Command{
		Use:   "import FILE",
		Short: "Import flashcards from a .yml, .yaml, .xlsx or .csv file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := flashcard.Source(source)
			if src != flashcard.SourceManual && src != flashcard.SourceAI {
				return fmt.Errorf("--source must be %q or %q", flashcard.SourceManual, flashcard.SourceAI)
			}

			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				result, err := importer.NewImporter(env.cards).ImportFile(ctx, env.ownerID, args[0], src)
				if result != nil {
					printImportResult(cmd.OutOrStdout(), result)
				}
				if err != nil {
					return fmt.Errorf("ImportFile(%s) > %w", args[0], err)
				}
				return nil
			})
		},
	}
	command.Flags().StringVar(&source, "source", string(flashcard.SourceManual), "source recorded on the cards (manual or ai)")
	return command
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		accept   bool
		maxCards int
	)
	command := &cobra.Command{
		Use:   "generate FILE",
		Short: "Propose flashcards from a text file with OpenAI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}

			return opts.run(cmd, true, func(ctx context.Context, env *environment) error {
				if env.cfg.OpenAI.APIKey == "" {
					return errors.New("OPENAI_API_KEY environment variable is required")
				}
				client := openai.NewClient(env.cfg.OpenAI.APIKey, env.cfg.OpenAI.Model, inference.DefaultMaxRetryAttempts)
				defer func() {
					_ = client.Close()
				}()

				return generate(ctx, cmd.OutOrStdout(), client, importer.NewImporter(env.cards), env.sessions, env.ownerID, string(text), maxCards, accept)
			})
		},
	}
	command.Flags().BoolVar(&accept, "accept", false, "import the proposals as flashcards")
	command.Flags().IntVar(&maxCards, "max", inference.DefaultMaxCards, "maximum number of proposals")
	return command
}

func generate(
	ctx context.Context,
	output io.Writer,
	client inference.Client,
	cardImporter *importer.Importer,
	sessions generation.Repository,
	ownerID, text string,
	maxCards int,
	accept bool,
) error {
	rows, err := importer.Propose(ctx, client, text, maxCards)
	if err != nil {
		return err
	}
	session := &generation.Session{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Proposed:  len(rows),
		CreatedAt: time.Now().UTC(),
	}
	defer func() {
		if err := sessions.Create(ctx, session); err != nil {
			slog.Warn("failed to record the generation session", "error", err)
		}
	}()

	if len(rows) == 0 {
		_, err := fmt.Fprintln(output, "No flashcards proposed.")
		return err
	}
	for i, row := range rows {
		_, _ = fmt.Fprintf(output, "%d. %s\n   %s\n", i+1, row.Front, row.Back)
	}
	if !accept {
		_, err := fmt.Fprintln(output, "Run again with --accept to import these flashcards.")
		return err
	}

	result, err := cardImporter.Import(ctx, ownerID, rows, flashcard.SourceAI)
	if result != nil {
		session.Accepted = result.Imported
		printImportResult(output, result)
	}
	if err != nil {
		return fmt.Errorf("Import() > %w", err)
	}
	return nil
}

func printImportResult(output io.Writer, result *importer.Result) {
	_, _ = fmt.Fprintf(output, "imported %d flashcard(s), skipped %d\n", result.Imported, result.Skipped)
	for _, message := range result.Errors {
		_, _ = fmt.Fprintf(output, "  %s\n", message)
	}
}
