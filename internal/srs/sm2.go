// Package srs implements the spaced repetition update rule used to schedule flashcards.
package srs

import (
	"math"
	"time"
)

const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// MaxIntervalDays bounds the review interval so next_review stays storable.
	MaxIntervalDays = 36500

	// failurePenalty is subtracted from the ease factor on every failed review.
	failurePenalty = 0.2
)

// relearnDelays maps a failed quality to the retry delay.
// Quality 0 retries fastest.
var relearnDelays = map[Quality]time.Duration{
	QualityBlackout:          minutes(0.05),
	QualityIncorrect:         minutes(0.5),
	QualityIncorrectFamiliar: minutes(1.0),
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

// Schedule is the scheduling state stored with a flashcard.
type Schedule struct {
	IntervalDays int        `db:"interval_days" json:"interval_days"`
	EaseFactor   float64    `db:"ease_factor" json:"ease_factor"`
	Repetitions  int        `db:"repetitions" json:"repetitions"`
	NextReview   *time.Time `db:"next_review" json:"next_review,omitempty"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// NewSchedule returns the state of a freshly created card, due at now.
func NewSchedule(now time.Time) Schedule {
	next := now
	return Schedule{
		IntervalDays: 0,
		EaseFactor:   DefaultEaseFactor,
		Repetitions:  0,
		NextReview:   &next,
		UpdatedAt:    now,
	}
}

// ResetSchedule returns the state a card gets when its progress is reset.
func ResetSchedule(now time.Time) Schedule {
	return NewSchedule(now)
}

// IsDue reports whether the card should be shown at now.
func (s Schedule) IsDue(now time.Time) bool {
	return s.NextReview == nil || !s.NextReview.After(now)
}

// ComputeNext returns the schedule after a review of quality q at now.
// q must be valid; callers reject out of range ratings with ParseQuality.
func ComputeNext(state Schedule, q Quality, now time.Time) Schedule {
	ef := state.EaseFactor
	if ef <= 0 {
		ef = DefaultEaseFactor
	}

	next := state
	if !q.IsSuccess() {
		// Relearn right away instead of pushing the card to tomorrow.
		// The ease penalty applies on top of the repetition reset.
		next.Repetitions = 0
		next.IntervalDays = 0
		due := now.Add(relearnDelay(q))
		next.NextReview = &due
		next.EaseFactor = math.Max(ef-failurePenalty, MinEaseFactor)
		next.UpdatedAt = now
		return next
	}

	switch state.Repetitions {
	case 0:
		next.IntervalDays = 1
	case 1:
		next.IntervalDays = 6
	default:
		next.IntervalDays = int(math.Min(math.RoundToEven(float64(state.IntervalDays)*ef), MaxIntervalDays))
	}
	if next.IntervalDays < 0 {
		next.IntervalDays = 0
	}
	next.Repetitions = state.Repetitions + 1
	next.EaseFactor = UpdateEaseFactor(ef, q)
	due := now.AddDate(0, 0, next.IntervalDays)
	next.NextReview = &due
	next.UpdatedAt = now
	return next
}

// UpdateEaseFactor applies the SM-2 ease adjustment for a successful review.
func UpdateEaseFactor(ef float64, q Quality) float64 {
	d := float64(QualityPerfect - q)
	delta := 0.1 - d*(0.08+d*0.02)
	return math.Max(ef+delta, MinEaseFactor)
}

func relearnDelay(q Quality) time.Duration {
	if d, ok := relearnDelays[q]; ok {
		return d
	}
	return relearnDelays[QualityIncorrect]
}
