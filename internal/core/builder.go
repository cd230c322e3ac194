package core

import (
	"context"

	"github.com/target/phototrack/internal/domain/model"
)

// JobBuilder produces canonical job records from (order, task) pairs,
// enriching them through the site cache.
type JobBuilder struct {
	cache *SiteCache
}

// NewJobBuilder creates a JobBuilder using the given cache for enrichment.
func NewJobBuilder(cache *SiteCache) *JobBuilder {
	return &JobBuilder{cache: cache}
}

// Build assembles the job record for one task of an order. The result is
// deterministic given the order, task, and current contents of sites; the
// only side effect is a possible cache fill on a site miss. An unavailable
// site payload degrades address and client name to empty strings.
func (b *JobBuilder) Build(ctx context.Context, sites map[int64]model.Site, order model.Order, task model.Task) model.Job {
	job := model.Job{
		ID:              model.JobKey(order.OrderID, task.TaskID),
		OrderID:         order.OrderID,
		TaskID:          task.TaskID,
		SiteID:          order.SiteID,
		Photographer:    task.AssignedMember,
		Status:          model.JobStatusPending,
		AppointmentDate: task.ScheduledDate,
	}

	if task.CompletedAt != nil {
		job.Status = model.JobStatusDelivered
		job.DeliveryDate = task.CompletedAt
	}

	if site, ok := b.cache.Get(ctx, sites, order.SiteID); ok {
		job.Address = site.Address()
		job.ClientName = site.ClientName()
	}

	return job
}
