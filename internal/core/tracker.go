package core

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/target/phototrack/internal/domain/model"
	"github.com/target/phototrack/internal/domain/window"
	apperrors "github.com/target/phototrack/internal/errors"
)

// defaultEnrichmentConcurrency bounds concurrent site lookups per refresh.
const defaultEnrichmentConcurrency = 4

// TrackerOptions holds the dependencies for creating a Tracker.
type TrackerOptions struct {
	Orders OrderSource
	Sites  SiteSource
	Store  SnapshotStore

	// Initial is the snapshot loaded at startup.
	Initial model.Snapshot

	// Location sets the calendar used for window boundaries. Defaults to
	// time.Local.
	Location *time.Location

	// EnrichmentConcurrency bounds concurrent site lookups during a refresh.
	EnrichmentConcurrency int

	Logger *slog.Logger

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Tracker owns the job snapshot. Reconciliation cycles and webhook events
// both mutate it through the tracker's single mutation lock, so a webhook
// arriving mid-refresh observes either the fully-old or fully-new job map,
// never a partial one. The query surface reads through the same lock.
type Tracker struct {
	orders  OrderSource
	store   SnapshotStore
	cache   *SiteCache
	builder *JobBuilder
	loc     *time.Location
	logger  *slog.Logger
	now     func() time.Time
	enrich  int

	// refreshMu serializes reconciliation cycles; the timer and on-demand
	// refresh never overlap.
	refreshMu sync.Mutex

	// mu guards snap. Held only for map mutation and the persist that
	// follows it; the order fetch and site lookups run outside it.
	mu   sync.Mutex
	snap model.Snapshot
}

// NewTracker creates a Tracker from the given options.
func NewTracker(opts TrackerOptions) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	enrich := opts.EnrichmentConcurrency
	if enrich < 1 {
		enrich = defaultEnrichmentConcurrency
	}

	snap := opts.Initial
	snap.Normalize()

	cache := NewSiteCache(opts.Sites, logger)
	return &Tracker{
		orders:  opts.Orders,
		store:   opts.Store,
		cache:   cache,
		builder: NewJobBuilder(cache),
		loc:     loc,
		logger:  logger,
		now:     now,
		enrich:  enrich,
		snap:    snap,
	}
}

// Refresh runs one reconciliation cycle: fetch orders, filter tasks to the
// rolling two-day window, build job records, replace the job map wholesale
// while carrying the site cache forward, and persist. Returns the number of
// jobs in the new map.
//
// An order fetch failure aborts the cycle before any state is touched and
// returns a SourceUnavailable error; the prior snapshot stays intact. All
// other failures degrade locally and never abort.
func (t *Tracker) Refresh(ctx context.Context) (int, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	win := window.Compute(t.now(), t.loc)

	orders, err := t.orders.ListOrders(ctx)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrCodeSourceUnavailable, "list orders")
	}

	type pair struct {
		order model.Order
		task  model.Task
	}
	pairs := make([]pair, 0, len(orders))
	siteIDs := make([]int64, 0, len(orders))
	for _, order := range orders {
		for _, task := range order.Tasks {
			if task.ScheduledDate == nil || !win.Contains(*task.ScheduledDate) {
				continue
			}
			pairs = append(pairs, pair{order: order, task: task})
			siteIDs = append(siteIDs, order.SiteID)
		}
	}

	// Work on a copy of the cache so webhook handlers never see it half
	// warmed. Entries only get added, keeping the cache monotonic.
	t.mu.Lock()
	sites := t.snap.Clone().Sites
	t.mu.Unlock()

	t.cache.Prefetch(ctx, sites, siteIDs, t.enrich)

	// Source iteration order decides duplicate composite keys: the later
	// occurrence wins.
	jobs := make(map[string]model.Job, len(pairs))
	for _, p := range pairs {
		job := t.builder.Build(ctx, sites, p.order, p.task)
		jobs[job.Key()] = job
	}

	t.mu.Lock()
	dropped := 0
	for key := range t.snap.Jobs {
		if _, ok := jobs[key]; !ok {
			dropped++
		}
	}
	t.snap = model.Snapshot{Jobs: jobs, Sites: sites}
	t.persistLocked(ctx)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "refresh complete",
		"jobs", len(jobs),
		"dropped", dropped,
		"cached_sites", len(sites))
	return len(jobs), nil
}

// ApplyCreated applies a listing-created event. Missing identifiers make the
// event a logged no-op; an existing record is never overwritten, so the
// first writer for an identity wins. A new identity gets a pending
// placeholder awaiting enrichment by the next refresh.
func (t *Tracker) ApplyCreated(ctx context.Context, ev model.CreatedEvent) {
	if !ev.Complete() {
		t.logger.WarnContext(ctx, "dropping created event with missing identifiers",
			"order_id", ev.OrderID, "task_id", ev.TaskID, "site_id", ev.SiteID)
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := model.JobKey(ev.OrderID, ev.TaskID)
	if _, ok := t.snap.Jobs[key]; ok {
		return
	}

	t.snap.Jobs[key] = model.Job{
		ID:      key,
		OrderID: ev.OrderID,
		TaskID:  ev.TaskID,
		SiteID:  ev.SiteID,
		Status:  model.JobStatusPending,
	}
	t.persistLocked(ctx)
}

// ApplyDelivered applies a listing-delivered event. Missing identifiers make
// the event a logged no-op. Delivery always takes precedence: an existing
// record's status and delivery date are overwritten regardless of what
// reconciliation last wrote, and an unknown identity gets a delivered
// placeholder. DeliveredAt defaults to the current instant.
func (t *Tracker) ApplyDelivered(ctx context.Context, ev model.DeliveredEvent) {
	if !ev.Complete() {
		t.logger.WarnContext(ctx, "dropping delivered event with missing identifiers",
			"order_id", ev.OrderID, "task_id", ev.TaskID)
		return
	}

	deliveredAt := t.now()
	if ev.DeliveredAt != nil {
		deliveredAt = *ev.DeliveredAt
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	key := model.JobKey(ev.OrderID, ev.TaskID)
	job, ok := t.snap.Jobs[key]
	if !ok {
		job = model.Job{
			ID:      key,
			OrderID: ev.OrderID,
			TaskID:  ev.TaskID,
			SiteID:  ev.SiteID,
		}
	}
	job.Status = model.JobStatusDelivered
	job.DeliveryDate = &deliveredAt
	t.snap.Jobs[key] = job
	t.persistLocked(ctx)
}

// List returns all job records ordered by appointment date descending.
// Records without an appointment date sort after all dated records. The
// returned slice is a copy; callers cannot mutate tracker state through it.
func (t *Tracker) List() []model.Job {
	t.mu.Lock()
	jobs := make([]model.Job, 0, len(t.snap.Jobs))
	for _, job := range t.snap.Jobs {
		jobs = append(jobs, job)
	}
	t.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool {
		a, b := jobs[i].AppointmentDate, jobs[j].AppointmentDate
		switch {
		case a == nil && b == nil:
			return jobs[i].ID < jobs[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return jobs[i].ID < jobs[j].ID
		default:
			return a.After(*b)
		}
	})
	return jobs
}

// persistLocked writes the snapshot to the store. Callers must hold mu. A
// write failure is logged and absorbed: in-memory state is retained and the
// next write attempt may succeed independently.
func (t *Tracker) persistLocked(ctx context.Context) {
	if err := t.store.Save(ctx, t.snap); err != nil {
		t.logger.ErrorContext(ctx, "snapshot persist failed", "error", err)
	}
}
