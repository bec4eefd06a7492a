package study

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is returned before anything is read or written.
	ErrInvalidInput = errors.New("study: invalid input")
	// ErrNotFound means the card does not exist for the owner.
	ErrNotFound = errors.New("study: flashcard not found")
	// ErrConflict means the card changed between the read and the conditional update.
	// The caller may retry.
	ErrConflict = errors.New("study: flashcard was modified concurrently")
	// ErrStorageUnavailable wraps failures of the underlying store. The caller may retry.
	ErrStorageUnavailable = errors.New("study: storage unavailable")
	// ErrReviewNotLogged is returned with a valid result when the schedule was
	// saved but the review log entry could not be appended.
	ErrReviewNotLogged = errors.New("study: review was applied but not logged")
)

// FieldViolation describes one invalid request field.
type FieldViolation struct {
	Field       string
	Description string
}

// InvalidInputError lists every invalid field of a request.
// It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	Violations []FieldViolation
}

func (e *InvalidInputError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Description)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(messages, ", "))
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func storageError(call string, err error) error {
	return fmt.Errorf("%w: %s > %w", ErrStorageUnavailable, call, err)
}
