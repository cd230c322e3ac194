package httpx

import (
	"context"
	"net/http"

	"github.com/target/phototrack/internal/domain/model"
	apperrors "github.com/target/phototrack/internal/errors"
)

// JobTracker is the tracker surface the HTTP handlers depend on.
type JobTracker interface {
	Refresh(ctx context.Context) (int, error)
	List() []model.Job
	ApplyCreated(ctx context.Context, ev model.CreatedEvent)
	ApplyDelivered(ctx context.Context, ev model.DeliveredEvent)
}

// JobHandlers serves the job query and refresh endpoints.
type JobHandlers struct {
	Tracker JobTracker
}

// List handles GET /api/jobs: the current snapshot's job records, ordered by
// appointment date descending with undated records last.
func (h *JobHandlers) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Tracker.List())
}

// Refresh handles POST /api/jobs/refresh: runs one reconciliation cycle on
// demand and returns the job count. An unavailable order source maps to 502;
// the snapshot is untouched in that case.
func (h *JobHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	count, err := h.Tracker.Refresh(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		errCode := "internal"
		if apperrors.IsSourceUnavailable(err) {
			code = http.StatusBadGateway
			errCode = string(apperrors.ErrCodeSourceUnavailable)
		}
		WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}
