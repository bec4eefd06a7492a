package study

import (
	"fmt"

	"github.com/at-ishikawa/cardstudy/internal/validation"
)

type inputValidator struct {
	validator *validation.Validator
}

func newInputValidator() (*inputValidator, error) {
	v, err := validation.New("json")
	if err != nil {
		return nil, err
	}
	return &inputValidator{validator: v}, nil
}

// check returns an *InvalidInputError describing every failed rule of input.
func (v *inputValidator) check(input any) error {
	violations, err := v.validator.Check(input)
	if err != nil {
		return fmt.Errorf("validator.Check() > %w", err)
	}
	if len(violations) == 0 {
		return nil
	}

	fields := make([]FieldViolation, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, FieldViolation{
			Field:       violation.Field,
			Description: violation.Message,
		})
	}
	return &InvalidInputError{Violations: fields}
}

type ownerInput struct {
	OwnerID string `json:"owner_id" validate:"required,max=64"`
}

type nextDueInput struct {
	OwnerID   string `json:"owner_id" validate:"required,max=64"`
	ExcludeID string `json:"exclude_id" validate:"omitempty,uuid"`
}

type submitReviewInput struct {
	OwnerID     string `json:"owner_id" validate:"required,max=64"`
	FlashcardID string `json:"flashcard_id" validate:"required,uuid"`
	Quality     int    `json:"quality" validate:"min=0,max=5"`
}

type flashcardInput struct {
	OwnerID     string `json:"owner_id" validate:"required,max=64"`
	FlashcardID string `json:"flashcard_id" validate:"required,uuid"`
}

type flashcardsInput struct {
	OwnerID      string   `json:"owner_id" validate:"required,max=64"`
	FlashcardIDs []string `json:"flashcard_ids" validate:"max=1000,dive,uuid"`
}
