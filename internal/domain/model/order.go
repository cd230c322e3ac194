package model

import "time"

// Order is one order returned by the external order source, with its tasks.
type Order struct {
	OrderID int64
	SiteID  int64
	Tasks   []Task
}

// Task is a single unit of work within an order. ScheduledDate and
// CompletedAt are nil when the source omits them; a non-nil CompletedAt is
// the completion marker that makes the job delivered.
type Task struct {
	TaskID         int64
	ScheduledDate  *time.Time
	AssignedMember string
	CompletedAt    *time.Time
}
