package web

import (
	"log/slog"
	"net/http"

	"github.com/veda-tools/vedadiff/internal/store"
	"github.com/veda-tools/vedadiff/internal/web/handlers"
	"github.com/veda-tools/vedadiff/internal/web/middleware"
)

type Router struct {
	store store.Store
	log   *slog.Logger
}

func NewRouter(st store.Store, log *slog.Logger) *Router {
	return &Router{store: st, log: log}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	textHandler := handlers.NewTextHandler(r.store, r.log)
	rateLimiter := middleware.NewRateLimiter(60, 60)

	mux.Handle("GET /api/v1/texts",
		middleware.Chain(
			http.HandlerFunc(textHandler.List),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=60, max-age=10"),
		),
	)

	mux.Handle("GET /api/v1/texts/{id}",
		middleware.Chain(
			http.HandlerFunc(textHandler.Get),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=60, max-age=10"),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/texts/{id}/verses/{label}",
		middleware.Chain(
			http.HandlerFunc(textHandler.GetVerse),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.CacheControl("public, s-maxage=60, max-age=10"),
		),
	)

	return middleware.CORS(mux)
}
