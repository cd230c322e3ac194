package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds the services needed by the HTTP router.
type RouterServices struct {
	Tracker JobTracker
	Logger  *slog.Logger
}

// NewRouter creates and configures the HTTP router with request-ID, logging,
// and panic-recovery middleware applied.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobHandlers := &JobHandlers{Tracker: services.Tracker}
	eventHandlers := NewEventHandlers(services.Tracker, logger)

	mux := http.NewServeMux()
	mux.Handle("GET /api/jobs", http.HandlerFunc(jobHandlers.List))
	mux.Handle("POST /api/jobs/refresh", http.HandlerFunc(jobHandlers.Refresh))
	mux.Handle("POST /api/events/created", http.HandlerFunc(eventHandlers.Created))
	mux.Handle("POST /api/events/delivered", http.HandlerFunc(eventHandlers.Delivered))
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Recover(logger)(handler)
	handler = Logging(logger)(handler)
	handler = RequestID()(handler)
	return handler
}
