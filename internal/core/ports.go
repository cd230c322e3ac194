// Package core contains the reconciliation engine and its collaborator
// contracts: the tracker that merges order-source data with webhook events
// into a persisted snapshot of photography jobs.
package core

import (
	"context"

	"github.com/target/phototrack/internal/domain/model"
)

// OrderSource lists the authoritative orders and their tasks. A transport or
// availability failure is returned as an error and aborts the refresh cycle
// that requested it.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
}

// SiteSource fetches the enrichment payload for one site. A nil payload with
// a nil error means the site is unknown to the source; an error means the
// lookup failed transiently. Neither outcome is cached.
type SiteSource interface {
	GetSite(ctx context.Context, siteID int64) (*model.Site, error)
}

// SnapshotStore loads and saves the full snapshot. Load must tolerate a
// missing or corrupt backing file by returning an empty snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}
