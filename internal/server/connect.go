package server

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// StudyServiceHandler is implemented by the study RPC handler.
type StudyServiceHandler interface {
	GetNextDue(context.Context, *connect.Request[GetNextDueRequest]) (*connect.Response[GetNextDueResponse], error)
	SubmitReview(context.Context, *connect.Request[SubmitReviewRequest]) (*connect.Response[SubmitReviewResponse], error)
	ResetFlashcard(context.Context, *connect.Request[ResetFlashcardRequest]) (*connect.Response[ResetFlashcardResponse], error)
	ResetFlashcards(context.Context, *connect.Request[ResetFlashcardsRequest]) (*connect.Response[ResetFlashcardsResponse], error)
	ResetAllFlashcards(context.Context, *connect.Request[ResetAllFlashcardsRequest]) (*connect.Response[ResetAllFlashcardsResponse], error)
	GetTodayStats(context.Context, *connect.Request[GetTodayStatsRequest]) (*connect.Response[GetTodayStatsResponse], error)
	GetCardStats(context.Context, *connect.Request[GetCardStatsRequest]) (*connect.Response[GetCardStatsResponse], error)
}

// NewStudyServiceHandler builds an HTTP handler for every procedure of the service.
// It returns the path prefix to mount the handler on.
func NewStudyServiceHandler(svc StudyServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecs(), opts...)
	handlers := map[string]http.Handler{
		StudyServiceGetNextDueProcedure:         connect.NewUnaryHandler(StudyServiceGetNextDueProcedure, svc.GetNextDue, opts...),
		StudyServiceSubmitReviewProcedure:       connect.NewUnaryHandler(StudyServiceSubmitReviewProcedure, svc.SubmitReview, opts...),
		StudyServiceResetFlashcardProcedure:     connect.NewUnaryHandler(StudyServiceResetFlashcardProcedure, svc.ResetFlashcard, opts...),
		StudyServiceResetFlashcardsProcedure:    connect.NewUnaryHandler(StudyServiceResetFlashcardsProcedure, svc.ResetFlashcards, opts...),
		StudyServiceResetAllFlashcardsProcedure: connect.NewUnaryHandler(StudyServiceResetAllFlashcardsProcedure, svc.ResetAllFlashcards, opts...),
		StudyServiceGetTodayStatsProcedure:      connect.NewUnaryHandler(StudyServiceGetTodayStatsProcedure, svc.GetTodayStats, opts...),
		StudyServiceGetCardStatsProcedure:       connect.NewUnaryHandler(StudyServiceGetCardStatsProcedure, svc.GetCardStats, opts...),
	}
	return "/" + StudyServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// StudyServiceClient calls the study service over the Connect protocol with JSON payloads.
type StudyServiceClient struct {
	getNextDue         *connect.Client[GetNextDueRequest, GetNextDueResponse]
	submitReview       *connect.Client[SubmitReviewRequest, SubmitReviewResponse]
	resetFlashcard     *connect.Client[ResetFlashcardRequest, ResetFlashcardResponse]
	resetFlashcards    *connect.Client[ResetFlashcardsRequest, ResetFlashcardsResponse]
	resetAllFlashcards *connect.Client[ResetAllFlashcardsRequest, ResetAllFlashcardsResponse]
	getTodayStats      *connect.Client[GetTodayStatsRequest, GetTodayStatsResponse]
	getCardStats       *connect.Client[GetCardStatsRequest, GetCardStatsResponse]
}

// NewStudyServiceClient creates a client for the service at baseURL.
func NewStudyServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StudyServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{name: "json"})}, opts...)
	return &StudyServiceClient{
		getNextDue:         connect.NewClient[GetNextDueRequest, GetNextDueResponse](httpClient, baseURL+StudyServiceGetNextDueProcedure, opts...),
		submitReview:       connect.NewClient[SubmitReviewRequest, SubmitReviewResponse](httpClient, baseURL+StudyServiceSubmitReviewProcedure, opts...),
		resetFlashcard:     connect.NewClient[ResetFlashcardRequest, ResetFlashcardResponse](httpClient, baseURL+StudyServiceResetFlashcardProcedure, opts...),
		resetFlashcards:    connect.NewClient[ResetFlashcardsRequest, ResetFlashcardsResponse](httpClient, baseURL+StudyServiceResetFlashcardsProcedure, opts...),
		resetAllFlashcards: connect.NewClient[ResetAllFlashcardsRequest, ResetAllFlashcardsResponse](httpClient, baseURL+StudyServiceResetAllFlashcardsProcedure, opts...),
		getTodayStats:      connect.NewClient[GetTodayStatsRequest, GetTodayStatsResponse](httpClient, baseURL+StudyServiceGetTodayStatsProcedure, opts...),
		getCardStats:       connect.NewClient[GetCardStatsRequest, GetCardStatsResponse](httpClient, baseURL+StudyServiceGetCardStatsProcedure, opts...),
	}
}

func (c *StudyServiceClient) GetNextDue(ctx context.Context, req *connect.Request[GetNextDueRequest]) (*connect.Response[GetNextDueResponse], error) {
	return c.getNextDue.CallUnary(ctx, req)
}

func (c *StudyServiceClient) SubmitReview(ctx context.Context, req *connect.Request[SubmitReviewRequest]) (*connect.Response[SubmitReviewResponse], error) {
	return c.submitReview.CallUnary(ctx, req)
}

func (c *StudyServiceClient) ResetFlashcard(ctx context.Context, req *connect.Request[ResetFlashcardRequest]) (*connect.Response[ResetFlashcardResponse], error) {
	return c.resetFlashcard.CallUnary(ctx, req)
}

func (c *StudyServiceClient) ResetFlashcards(ctx context.Context, req *connect.Request[ResetFlashcardsRequest]) (*connect.Response[ResetFlashcardsResponse], error) {
	return c.resetFlashcards.CallUnary(ctx, req)
}

func (c *StudyServiceClient) ResetAllFlashcards(ctx context.Context, req *connect.Request[ResetAllFlashcardsRequest]) (*connect.Response[ResetAllFlashcardsResponse], error) {
	return c.resetAllFlashcards.CallUnary(ctx, req)
}

func (c *StudyServiceClient) GetTodayStats(ctx context.Context, req *connect.Request[GetTodayStatsRequest]) (*connect.Response[GetTodayStatsResponse], error) {
	return c.getTodayStats.CallUnary(ctx, req)
}

func (c *StudyServiceClient) GetCardStats(ctx context.Context, req *connect.Request[GetCardStatsRequest]) (*connect.Response[GetCardStatsResponse], error) {
	return c.getCardStats.CallUnary(ctx, req)
}
