// Package statistics aggregates review logs and card counts for reporting.
package statistics

import (
	"time"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/generation"
	"github.com/at-ishikawa/cardstudy/internal/review"
	"github.com/at-ishikawa/cardstudy/internal/srs"
)

// QualityBucket is the number of reviews graded with one quality.
type QualityBucket struct {
	Quality int `json:"quality"`
	Count   int `json:"count"`
}

// DailyStudyStats summarizes the reviews of one UTC day
type DailyStudyStats struct {
	DayUTC       time.Time       `json:"day_utc"`
	Total        int             `json:"total"`
	Correct      int             `json:"correct"`  // quality >= 3
	Accuracy     float64         `json:"accuracy"` // 0 when there are no reviews
	Distribution []QualityBucket `json:"distribution"`
}

// DayWindow returns the UTC day containing now as [start, end).
func DayWindow(now time.Time) (time.Time, time.Time) {
	u := now.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// ComputeDaily aggregates logs for the UTC day containing day.
// Logs outside that day are ignored.
// The distribution always has one bucket per quality from 0 to 5.
func ComputeDaily(day time.Time, logs []review.Log) DailyStudyStats {
	start, end := DayWindow(day)
	counts := make([]int, int(srs.QualityPerfect)+1)
	stats := DailyStudyStats{DayUTC: start}

	for _, l := range logs {
		at := l.ReviewedAt.UTC()
		if at.Before(start) || !at.Before(end) || !l.Quality.IsValid() {
			continue
		}
		stats.Total++
		if l.Quality.IsSuccess() {
			stats.Correct++
		}
		counts[l.Quality]++
	}

	if stats.Total > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Total)
	}
	stats.Distribution = make([]QualityBucket, len(counts))
	for q, c := range counts {
		stats.Distribution[q] = QualityBucket{Quality: q, Count: c}
	}
	return stats
}

// CardSourceStats describes how an owner's cards were created.
type CardSourceStats struct {
	Total       int64   `json:"total"`
	AI          int64   `json:"ai"`
	Manual      int64   `json:"manual"`
	AIUsageRate float64 `json:"ai_usage_rate"`
}

// ComputeCardSources derives the share of generated cards from the raw counts.
func ComputeCardSources(counts flashcard.CardCounts) CardSourceStats {
	stats := CardSourceStats{
		Total:  counts.Total,
		AI:     counts.AI,
		Manual: counts.Manual(),
	}
	if counts.Total > 0 {
		stats.AIUsageRate = float64(counts.AI) / float64(counts.Total)
	}
	return stats
}

// GenerationStats describes how often generated suggestions were accepted.
type GenerationStats struct {
	Sessions       int64   `json:"sessions"`
	Proposed       int64   `json:"proposed"`
	Accepted       int64   `json:"accepted"`
	AcceptanceRate float64 `json:"acceptance_rate"` // 0 when nothing was proposed
}

// ComputeGeneration derives the acceptance rate from session totals.
func ComputeGeneration(totals generation.Totals) GenerationStats {
	stats := GenerationStats{
		Sessions: totals.Sessions,
		Proposed: totals.Proposed,
		Accepted: totals.Accepted,
	}
	if totals.Proposed > 0 {
		stats.AcceptanceRate = float64(totals.Accepted) / float64(totals.Proposed)
	}
	return stats
}
