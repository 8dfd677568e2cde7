package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/rs/zerolog"
)

// Handlers sets up the local test entrypoint
// metricsHandler may be nil when no exporter is configured
func Handlers(ctx context.Context, inv resource.Invoker, logger zerolog.Logger, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/v1", func(r chi.Router) {
		// Same payload as a local SAM invocation of the test entrypoint
		r.Post("/invoke", postInvoke(inv).ServeHTTP)

		// Same payload CloudFormation sends to a registered provider
		r.Post("/provider", postProvider(inv).ServeHTTP)
	})

	return r
}
