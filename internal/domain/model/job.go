// Package model defines the core data types shared across the phototrack service.
package model

import (
	"fmt"
	"strings"
	"time"
)

// JobStatus represents the delivery status of a photography job.
type JobStatus string

const (
	// JobStatusPending indicates the shoot has not been delivered yet.
	JobStatusPending JobStatus = "pending"
	// JobStatusDelivered indicates the finished media has been delivered.
	JobStatusDelivered JobStatus = "delivered"
)

// Valid returns true if the JobStatus is valid.
func (s JobStatus) Valid() bool {
	return s == JobStatusPending || s == JobStatusDelivered
}

// UnmarshalText implements encoding.TextUnmarshaler for JobStatus.
func (s *JobStatus) UnmarshalText(text []byte) error {
	v := JobStatus(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus: %q", v)
	}
	*s = v
	return nil
}

// JobKey builds the composite map key for an (order, task) pair.
// The pair identifies exactly one job record at any time.
func JobKey(orderID, taskID int64) string {
	return fmt.Sprintf("%d-%d", orderID, taskID)
}

// Job represents one tracked photography job: a single task within an order,
// enriched with site and client metadata when available.
type Job struct {
	ID              string     `json:"id"`
	OrderID         int64      `json:"order_id"`
	TaskID          int64      `json:"task_id"`
	SiteID          int64      `json:"site_id"`
	Address         string     `json:"address"`
	Photographer    string     `json:"photographer"`
	ClientName      string     `json:"client_name"`
	Status          JobStatus  `json:"status"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	DeliveryDate    *time.Time `json:"delivery_date,omitempty"`
}

// Key returns the composite key for the job's (order, task) pair.
func (j Job) Key() string {
	return JobKey(j.OrderID, j.TaskID)
}

// CreatedEvent is an out-of-band notification that a listing was created.
// Field names follow the sender's wire format. A zero identifier means the
// field was absent from the payload.
type CreatedEvent struct {
	OrderID int64 `json:"orderId"`
	TaskID  int64 `json:"taskId"`
	SiteID  int64 `json:"siteId"`
}

// Complete reports whether all required identifiers are present.
func (e CreatedEvent) Complete() bool {
	return e.OrderID != 0 && e.TaskID != 0 && e.SiteID != 0
}

// DeliveredEvent is an out-of-band notification that a listing was delivered.
// SiteID and DeliveredAt are optional; DeliveredAt defaults to the receive
// time when absent.
type DeliveredEvent struct {
	OrderID     int64      `json:"orderId"`
	TaskID      int64      `json:"taskId"`
	SiteID      int64      `json:"siteId"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}

// Complete reports whether the required identifiers are present.
func (e DeliveredEvent) Complete() bool {
	return e.OrderID != 0 && e.TaskID != 0
}
