package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/cardstudy/internal/metrics"
	"github.com/at-ishikawa/cardstudy/internal/ratelimit"
)

// DefaultOwnerHeader carries the owner id set by the upstream authentication proxy.
const DefaultOwnerHeader = "X-Owner-Id"

type ownerKey struct{}

var errMissingOwner = errors.New("missing owner identity")

func withOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

func ownerFromContext(ctx context.Context) (string, error) {
	ownerID, ok := ctx.Value(ownerKey{}).(string)
	if !ok || ownerID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errMissingOwner)
	}
	return ownerID, nil
}

// NewOwnerInterceptor reads the owner id from header and stores it in the context.
// Calls without the header are rejected with CodeUnauthenticated.
func NewOwnerInterceptor(header string) connect.UnaryInterceptorFunc {
	if header == "" {
		header = DefaultOwnerHeader
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			ownerID := strings.TrimSpace(req.Header().Get(header))
			if ownerID == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, errMissingOwner)
			}
			return next(withOwner(ctx, ownerID), req)
		}
	}
}

// NewRateLimitInterceptor rejects calls to the given procedures once the owner exceeds the limiter.
// Each procedure is limited separately. It must run after the owner interceptor.
func NewRateLimitInterceptor(limiter ratelimit.Limiter, m *metrics.Metrics, procedures ...string) connect.UnaryInterceptorFunc {
	limited := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		limited[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			if !limited[procedure] {
				return next(ctx, req)
			}
			ownerID, err := ownerFromContext(ctx)
			if err != nil {
				return nil, err
			}
			if !limiter.Allow(procedure + ":" + ownerID) {
				if m != nil {
					m.ObserveRateLimited(procedure)
				}
				return nil, connect.NewError(connect.CodeResourceExhausted, errors.New("too many requests"))
			}
			return next(ctx, req)
		}
	}
}

// NewMetricsInterceptor records the duration and result code of every call.
func NewMetricsInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.ObserveRPC(req.Spec().Procedure, code, time.Since(start))
			return res, err
		}
	}
}

// MutatingProcedures are the procedures guarded by the rate limiter.
func MutatingProcedures() []string {
	return []string{
		StudyServiceSubmitReviewProcedure,
		StudyServiceResetFlashcardProcedure,
		StudyServiceResetFlashcardsProcedure,
		StudyServiceResetAllFlashcardsProcedure,
	}
}
