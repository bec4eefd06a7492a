package importer

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/cardstudy/internal/inference"
)

// Propose asks client for flashcards drawn from text.
// Nothing is stored; pass the rows to Import with flashcard.SourceAI to accept them.
func Propose(ctx context.Context, client inference.Client, text string, maxCards int) ([]Row, error) {
	response, err := client.ProposeFlashcards(ctx, inference.ProposeFlashcardsRequest{
		Text:     text,
		MaxCards: maxCards,
	})
	if err != nil {
		return nil, fmt.Errorf("client.ProposeFlashcards() > %w", err)
	}

	rows := make([]Row, 0, len(response.Proposals))
	for _, proposal := range response.Proposals {
		rows = append(rows, Row{Front: proposal.Front, Back: proposal.Back})
	}
	return rows, nil
}
