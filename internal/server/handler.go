package server

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/cardstudy/internal/flashcard"
	"github.com/at-ishikawa/cardstudy/internal/metrics"
	"github.com/at-ishikawa/cardstudy/internal/statistics"
	"github.com/at-ishikawa/cardstudy/internal/study"
)

//go:generate mockgen -source=handler.go -destination=../mocks/server/mock_study_service.go -package=mock_server StudyService

// StudyService is the set of study operations the handler serves.
type StudyService interface {
	NextDue(ctx context.Context, ownerID, excludeID string) (*flashcard.Flashcard, error)
	SubmitReview(ctx context.Context, ownerID, flashcardID string, quality int) (*study.ReviewResult, error)
	ResetOne(ctx context.Context, ownerID, flashcardID string) (*flashcard.Flashcard, error)
	ResetMany(ctx context.Context, ownerID string, flashcardIDs []string) (int64, error)
	ResetAll(ctx context.Context, ownerID string) (int64, error)
	TodayStats(ctx context.Context, ownerID string) (statistics.DailyStudyStats, error)
	CardStats(ctx context.Context, ownerID string) (statistics.CardSourceStats, error)
}

// StudyHandler implements StudyServiceHandler.
// The owner of every call is read from the context set by the owner interceptor.
type StudyHandler struct {
	service StudyService
	metrics *metrics.Metrics
}

var _ StudyServiceHandler = (*StudyHandler)(nil)

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(service StudyService, m *metrics.Metrics) *StudyHandler {
	return &StudyHandler{service: service, metrics: m}
}

// GetNextDue returns the next due card, or HasContent false when nothing is due.
func (h *StudyHandler) GetNextDue(
	ctx context.Context,
	req *connect.Request[GetNextDueRequest],
) (*connect.Response[GetNextDueResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := h.service.NextDue(ctx, ownerID, req.Msg.ExcludeID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if card == nil {
		return connect.NewResponse(&GetNextDueResponse{}), nil
	}
	return connect.NewResponse(&GetNextDueResponse{
		HasContent:  true,
		FlashcardID: card.ID,
		Front:       card.Front,
	}), nil
}

// SubmitReview applies a review. A review that was applied but not logged still succeeds,
// with ReviewLogged false.
func (h *StudyHandler) SubmitReview(
	ctx context.Context,
	req *connect.Request[SubmitReviewRequest],
) (*connect.Response[SubmitReviewResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	result, err := h.service.SubmitReview(ctx, ownerID, req.Msg.FlashcardID, req.Msg.Quality)
	if err != nil && !(errors.Is(err, study.ErrReviewNotLogged) && result != nil) {
		return nil, toConnectError(err)
	}

	if h.metrics != nil {
		h.metrics.ObserveReview(result.Success)
	}
	if err != nil {
		slog.ErrorContext(ctx, "review was applied without a log entry",
			"error", err,
			"owner_id", ownerID,
			"flashcard_id", req.Msg.FlashcardID)
		if h.metrics != nil {
			h.metrics.ObserveReviewLogFailure()
		}
	}

	card := result.Flashcard
	return connect.NewResponse(&SubmitReviewResponse{
		NextReview:   card.NextReview,
		IntervalDays: card.IntervalDays,
		EaseFactor:   card.EaseFactor,
		ReviewLogged: result.Logged(),
	}), nil
}

func (h *StudyHandler) ResetFlashcard(
	ctx context.Context,
	req *connect.Request[ResetFlashcardRequest],
) (*connect.Response[ResetFlashcardResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	card, err := h.service.ResetOne(ctx, ownerID, req.Msg.FlashcardID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ResetFlashcardResponse{
		Flashcard: FlashcardSchedule{
			FlashcardID:  card.ID,
			IntervalDays: card.IntervalDays,
			EaseFactor:   card.EaseFactor,
			Repetitions:  card.Repetitions,
			NextReview:   card.NextReview,
			UpdatedAt:    card.UpdatedAt,
		},
	}), nil
}

func (h *StudyHandler) ResetFlashcards(
	ctx context.Context,
	req *connect.Request[ResetFlashcardsRequest],
) (*connect.Response[ResetFlashcardsResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	modified, err := h.service.ResetMany(ctx, ownerID, req.Msg.FlashcardIDs)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ResetFlashcardsResponse{Modified: modified}), nil
}

func (h *StudyHandler) ResetAllFlashcards(
	ctx context.Context,
	_ *connect.Request[ResetAllFlashcardsRequest],
) (*connect.Response[ResetAllFlashcardsResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	modified, err := h.service.ResetAll(ctx, ownerID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ResetAllFlashcardsResponse{Modified: modified}), nil
}

func (h *StudyHandler) GetTodayStats(
	ctx context.Context,
	_ *connect.Request[GetTodayStatsRequest],
) (*connect.Response[GetTodayStatsResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := h.service.TodayStats(ctx, ownerID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetTodayStatsResponse{Stats: stats}), nil
}

func (h *StudyHandler) GetCardStats(
	ctx context.Context,
	_ *connect.Request[GetCardStatsRequest],
) (*connect.Response[GetCardStatsResponse], error) {
	ownerID, err := ownerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := h.service.CardStats(ctx, ownerID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetCardStatsResponse{Stats: stats}), nil
}
