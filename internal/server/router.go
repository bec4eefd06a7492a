package server

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/cardstudy/internal/metrics"
	"github.com/at-ishikawa/cardstudy/internal/ratelimit"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Limiter        ratelimit.Limiter
	OwnerHeader    string
	AllowedOrigins []string
}

// NewRouter mounts the study service, /healthz and /metrics.
// The returned handler also accepts HTTP/2 without TLS.
func NewRouter(service StudyService, opts RouterOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.OwnerHeader == "" {
		opts.OwnerHeader = DefaultOwnerHeader
	}

	interceptors := []connect.Interceptor{
		NewMetricsInterceptor(opts.Metrics),
		NewOwnerInterceptor(opts.OwnerHeader),
	}
	if opts.Limiter != nil {
		interceptors = append(interceptors, NewRateLimitInterceptor(opts.Limiter, opts.Metrics, MutatingProcedures()...))
	}
	path, handler := NewStudyServiceHandler(
		NewStudyHandler(service, opts.Metrics),
		connect.WithInterceptors(interceptors...),
	)

	r := chi.NewRouter()
	r.Use(RequestLogger(opts.Logger))
	r.Use(CORS(opts.AllowedOrigins, opts.OwnerHeader))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	r.Handle(path+"*", handler)

	return h2c.NewHandler(r, &http2.Server{})
}
