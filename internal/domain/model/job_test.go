package model

import (
	"testing"
	"time"
)

func TestJobStatus_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusPending, true},
		{JobStatusDelivered, true},
		{JobStatus("shipped"), false},
		{JobStatus(""), false},
	}

	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.expected {
			t.Errorf("Valid(%q): expected %v, got %v", tt.status, tt.expected, got)
		}
	}
}

func TestJobStatus_UnmarshalText(t *testing.T) {
	t.Parallel()

	var s JobStatus
	if err := s.UnmarshalText([]byte(" Delivered ")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != JobStatusDelivered {
		t.Errorf("expected %q, got %q", JobStatusDelivered, s)
	}

	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestJobKey(t *testing.T) {
	t.Parallel()

	if got := JobKey(1, 1); got != "1-1" {
		t.Errorf("expected %q, got %q", "1-1", got)
	}
	if got := JobKey(42, 7); got != "42-7" {
		t.Errorf("expected %q, got %q", "42-7", got)
	}

	job := Job{OrderID: 42, TaskID: 7}
	if job.Key() != JobKey(42, 7) {
		t.Errorf("expected Key() to match JobKey, got %q", job.Key())
	}
}

func TestCreatedEvent_Complete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    CreatedEvent
		expected bool
	}{
		{"all identifiers present", CreatedEvent{OrderID: 1, TaskID: 2, SiteID: 3}, true},
		{"missing order", CreatedEvent{TaskID: 2, SiteID: 3}, false},
		{"missing task", CreatedEvent{OrderID: 1, SiteID: 3}, false},
		{"missing site", CreatedEvent{OrderID: 1, TaskID: 2}, false},
		{"empty", CreatedEvent{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.event.Complete(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDeliveredEvent_Complete(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name     string
		event    DeliveredEvent
		expected bool
	}{
		{"order and task present", DeliveredEvent{OrderID: 1, TaskID: 2}, true},
		{"site and timestamp are optional", DeliveredEvent{OrderID: 1, TaskID: 2, SiteID: 3, DeliveredAt: &now}, true},
		{"missing order", DeliveredEvent{TaskID: 2}, false},
		{"missing task", DeliveredEvent{OrderID: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.event.Complete(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
