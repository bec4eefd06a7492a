package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client proposes flashcards from free text
type Client interface {
	ProposeFlashcards(ctx context.Context, params ProposeFlashcardsRequest) (ProposeFlashcardsResponse, error)
}

// ProposeFlashcardsRequest holds the source text for a proposal
type ProposeFlashcardsRequest struct {
	Text string `json:"text"`
	// MaxCards limits the number of proposals. Zero means DefaultMaxCards.
	MaxCards int `json:"max_cards,omitempty"`
}

type ProposeFlashcardsResponse struct {
	Proposals []Proposal
}

// Proposal is a suggested card. It is not stored until accepted.
type Proposal struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

const (
	DefaultMaxRetryAttempts = 3
	DefaultMaxCards         = 10
)
