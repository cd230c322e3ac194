package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/target/phototrack/internal/domain/model"
)

// acceptedResponse is returned to webhook senders on every path, including
// no-ops and undecodable payloads. The senders are not under our control and
// must never receive spurious failures.
var acceptedResponse = map[string]string{"status": "accepted"}

// EventHandlers receives listing lifecycle webhooks.
type EventHandlers struct {
	Tracker JobTracker
	Logger  *slog.Logger
}

// NewEventHandlers creates EventHandlers with a default logger if none given.
func NewEventHandlers(tracker JobTracker, logger *slog.Logger) *EventHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventHandlers{Tracker: tracker, Logger: logger}
}

// Created handles POST /api/events/created.
func (h *EventHandlers) Created(w http.ResponseWriter, r *http.Request) {
	var ev model.CreatedEvent
	if !h.decode(w, r, &ev) {
		return
	}
	h.Tracker.ApplyCreated(r.Context(), ev)
	WriteJSON(w, http.StatusOK, acceptedResponse)
}

// Delivered handles POST /api/events/delivered.
func (h *EventHandlers) Delivered(w http.ResponseWriter, r *http.Request) {
	var ev model.DeliveredEvent
	if !h.decode(w, r, &ev) {
		return
	}
	h.Tracker.ApplyDelivered(r.Context(), ev)
	WriteJSON(w, http.StatusOK, acceptedResponse)
}

// decode parses the webhook body. An undecodable payload is logged, answered
// with 200 accepted, and reported as handled (false return means the caller
// is done). Unknown fields are tolerated; senders evolve their payloads.
func (h *EventHandlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.WarnContext(r.Context(), "dropping undecodable event payload",
			"path", r.URL.Path, "error", err)
		WriteJSON(w, http.StatusOK, acceptedResponse)
		return false
	}
	return true
}
