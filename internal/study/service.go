// Package study selects due flashcards, applies reviews and resets schedules.
package study

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/review"
	"github.com/at-ishikawa/cardstudy/internal/srs"
	"github.com/at-ishikawa/cardstudy/internal/statistics"
)

// ReviewResult is the outcome of a submitted review.
type ReviewResult struct {
	Flashcard *flashcard.Flashcard
	Log       *review.Log // nil when the log could not be appended
	Success   bool
}

// Logged reports whether the review was appended to the review log.
func (r *ReviewResult) Logged() bool {
	return r.Log != nil
}

// Service orchestrates the study operations of a single owner at a time.
// It keeps no state between calls.
type Service struct {
	cards     flashcard.Repository
	logs      review.LogRepository
	logger    *review.Logger
	validator *inputValidator
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used for scheduling.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a Service.
func NewService(cards flashcard.Repository, logs review.LogRepository, logger *review.Logger, opts ...Option) (*Service, error) {
	v, err := newInputValidator()
	if err != nil {
		return nil, err
	}
	s := &Service{
		cards:     cards,
		logs:      logs,
		logger:    logger,
		validator: v,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NextDue returns the most overdue card of the owner, skipping excludeID.
// It returns nil when nothing is due.
func (s *Service) NextDue(ctx context.Context, ownerID, excludeID string) (*flashcard.Flashcard, error) {
	if err := s.validator.check(nextDueInput{OwnerID: ownerID, ExcludeID: excludeID}); err != nil {
		return nil, err
	}
	card, err := s.cards.FindNextDue(ctx, ownerID, s.now().UTC(), excludeID)
	if err != nil {
		return nil, storageError("cards.FindNextDue()", err)
	}
	return card, nil
}

// SubmitReview schedules the card from the reported quality and logs the review.
//
// The schedule is written with a conditional update against the revision that was read,
// so of two concurrent reviews of the same card only one is applied and the other gets ErrConflict.
// When the log append fails after the schedule was written, the result is returned
// together with an error wrapping ErrReviewNotLogged.
func (s *Service) SubmitReview(ctx context.Context, ownerID, flashcardID string, quality int) (*ReviewResult, error) {
	if err := s.validator.check(submitReviewInput{
		OwnerID:     ownerID,
		FlashcardID: flashcardID,
		Quality:     quality,
	}); err != nil {
		return nil, err
	}
	q, err := srs.ParseQuality(quality)
	if err != nil {
		return nil, &InvalidInputError{Violations: []FieldViolation{{Field: "quality", Description: err.Error()}}}
	}

	card, err := s.cards.FindByID(ctx, ownerID, flashcardID)
	if err != nil {
		return nil, storageError("cards.FindByID()", err)
	}
	if card == nil {
		return nil, ErrNotFound
	}

	now := s.now().UTC()
	next := srs.ComputeNext(card.Schedule, q, now)
	updated, err := s.cards.UpdateSchedule(ctx, ownerID, flashcardID, card.Revision, next)
	if err != nil {
		return nil, storageError("cards.UpdateSchedule()", err)
	}
	if !updated {
		return nil, ErrConflict
	}
	card.Schedule = next
	card.Revision++

	result := &ReviewResult{Flashcard: card, Success: q.IsSuccess()}
	log, err := s.logger.Record(ctx, ownerID, flashcardID, q, now)
	if err != nil {
		return result, fmt.Errorf("%w: logger.Record() > %w", ErrReviewNotLogged, err)
	}
	result.Log = log
	return result, nil
}

// ResetOne puts one card back to its initial schedule, due now.
func (s *Service) ResetOne(ctx context.Context, ownerID, flashcardID string) (*flashcard.Flashcard, error) {
	if err := s.validator.check(flashcardInput{OwnerID: ownerID, FlashcardID: flashcardID}); err != nil {
		return nil, err
	}
	card, err := s.cards.ResetSchedule(ctx, ownerID, flashcardID, s.now().UTC())
	if err != nil {
		return nil, storageError("cards.ResetSchedule()", err)
	}
	if card == nil {
		return nil, ErrNotFound
	}
	return card, nil
}

// ResetMany resets the listed cards and returns how many were modified.
// Unknown or blank ids are ignored.
func (s *Service) ResetMany(ctx context.Context, ownerID string, flashcardIDs []string) (int64, error) {
	if err := s.validator.check(flashcardsInput{OwnerID: ownerID, FlashcardIDs: flashcardIDs}); err != nil {
		return 0, err
	}
	modified, err := s.cards.ResetScheduleForIDs(ctx, ownerID, flashcardIDs, s.now().UTC())
	if err != nil {
		return 0, storageError("cards.ResetScheduleForIDs()", err)
	}
	return modified, nil
}

// ResetAll resets every card of the owner.
func (s *Service) ResetAll(ctx context.Context, ownerID string) (int64, error) {
	if err := s.validator.check(ownerInput{OwnerID: ownerID}); err != nil {
		return 0, err
	}
	modified, err := s.cards.ResetAllSchedules(ctx, ownerID, s.now().UTC())
	if err != nil {
		return 0, storageError("cards.ResetAllSchedules()", err)
	}
	return modified, nil
}

// TodayStats aggregates the owner's reviews of the current UTC day.
func (s *Service) TodayStats(ctx context.Context, ownerID string) (statistics.DailyStudyStats, error) {
	if err := s.validator.check(ownerInput{OwnerID: ownerID}); err != nil {
		return statistics.DailyStudyStats{}, err
	}
	now := s.now()
	start, end := statistics.DayWindow(now)
	logs, err := s.logs.FindByOwnerBetween(ctx, ownerID, start, end)
	if err != nil {
		return statistics.DailyStudyStats{}, storageError("logs.FindByOwnerBetween()", err)
	}
	return statistics.ComputeDaily(now, logs), nil
}

// CardStats returns how the owner's cards were created.
func (s *Service) CardStats(ctx context.Context, ownerID string) (statistics.CardSourceStats, error) {
	if err := s.validator.check(ownerInput{OwnerID: ownerID}); err != nil {
		return statistics.CardSourceStats{}, err
	}
	counts, err := s.cards.CountByOwner(ctx, ownerID)
	if err != nil {
		return statistics.CardSourceStats{}, storageError("cards.CountByOwner()", err)
	}
	return statistics.ComputeCardSources(counts), nil
}
