package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Dravita/internal/config"
	"github.com/MikeSquared-Agency/Dravita/internal/events"
	"github.com/MikeSquared-Agency/Dravita/internal/store"
)

func NewRouter(s store.Store, n *events.Notifier, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Instrument)
	r.Use(RateLimitMiddleware(cfg.Server.RequestsPerMinute))

	assessments := NewAssessmentsHandler(n, cfg.AnalysisDelay(), logger)
	selections := NewSelectionsHandler()
	forms := NewFormsHandler()
	plans := NewPlansHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/assessments", assessments.Create)
		r.Post("/assessments/score", assessments.Score)

		r.Post("/selections/toggle", selections.Toggle)

		r.Get("/forms", forms.List)
		r.Get("/forms/{step}", forms.Get)
		r.Post("/forms/{step}/validate", forms.Validate)

		r.Get("/plans", plans.List)
		r.Get("/plans/categories", plans.Categories)
		r.Get("/plans/{id}", plans.Get)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

const maxBodyBytes = 64 << 10

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
