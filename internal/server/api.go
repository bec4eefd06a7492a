// Package server exposes the study operations as a Connect RPC service.
package server

import (
	"time"

	"github.com/at-ishikawa/cardstudy/internal/statistics"
)

const (
	// StudyServiceName is the fully-qualified name of the study service.
	StudyServiceName = "cardstudy.v1.StudyService"

	StudyServiceGetNextDueProcedure         = "/" + StudyServiceName + "/GetNextDue"
	StudyServiceSubmitReviewProcedure       = "/" + StudyServiceName + "/SubmitReview"
	StudyServiceResetFlashcardProcedure     = "/" + StudyServiceName + "/ResetFlashcard"
	StudyServiceResetFlashcardsProcedure    = "/" + StudyServiceName + "/ResetFlashcards"
	StudyServiceResetAllFlashcardsProcedure = "/" + StudyServiceName + "/ResetAllFlashcards"
	StudyServiceGetTodayStatsProcedure      = "/" + StudyServiceName + "/GetTodayStats"
	StudyServiceGetCardStatsProcedure       = "/" + StudyServiceName + "/GetCardStats"
)

type GetNextDueRequest struct {
	ExcludeID string `json:"exclude_id,omitempty"`
}

// GetNextDueResponse has HasContent false when nothing is due.
type GetNextDueResponse struct {
	HasContent  bool   `json:"has_content"`
	FlashcardID string `json:"flashcard_id,omitempty"`
	Front       string `json:"front,omitempty"`
}

type SubmitReviewRequest struct {
	FlashcardID string `json:"flashcard_id"`
	Quality     int    `json:"quality"`
}

type SubmitReviewResponse struct {
	NextReview   *time.Time `json:"next_review"`
	IntervalDays int        `json:"interval_days"`
	EaseFactor   float64    `json:"ease_factor"`
	ReviewLogged bool       `json:"review_logged"`
}

type ResetFlashcardRequest struct {
	FlashcardID string `json:"flashcard_id"`
}

// FlashcardSchedule is the scheduling state of one card.
type FlashcardSchedule struct {
	FlashcardID  string     `json:"flashcard_id"`
	IntervalDays int        `json:"interval_days"`
	EaseFactor   float64    `json:"ease_factor"`
	Repetitions  int        `json:"repetitions"`
	NextReview   *time.Time `json:"next_review"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ResetFlashcardResponse struct {
	Flashcard FlashcardSchedule `json:"flashcard"`
}

type ResetFlashcardsRequest struct {
	FlashcardIDs []string `json:"flashcard_ids"`
}

type ResetFlashcardsResponse struct {
	Modified int64 `json:"modified"`
}

type ResetAllFlashcardsRequest struct{}

type ResetAllFlashcardsResponse struct {
	Modified int64 `json:"modified"`
}

type GetTodayStatsRequest struct{}

type GetTodayStatsResponse struct {
	Stats statistics.DailyStudyStats `json:"stats"`
}

type GetCardStatsRequest struct{}

type GetCardStatsResponse struct {
	Stats statistics.CardSourceStats `json:"stats"`
}
