package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/target/phototrack/internal/domain/model"
)

func TestJobBuilder_Build(t *testing.T) {
	t.Parallel()

	appt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	done := time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)

	order := model.Order{OrderID: 1, SiteID: 9}
	site := model.Site{
		Street: "1 Main St",
		City:   "Springfield",
		Client: model.SiteClient{FirstName: "Jane", LastName: "Doe"},
	}

	tests := []struct {
		name  string
		task  model.Task
		sites map[int64]model.Site
		setup func(*MockSiteSource)
		want  model.Job
	}{
		{
			name:  "pending job with cached enrichment",
			task:  model.Task{TaskID: 1, ScheduledDate: &appt, AssignedMember: "alex"},
			sites: map[int64]model.Site{9: site},
			setup: func(*MockSiteSource) {},
			want: model.Job{
				ID:              "1-1",
				OrderID:         1,
				TaskID:          1,
				SiteID:          9,
				Address:         "1 Main St, Springfield",
				Photographer:    "alex",
				ClientName:      "Jane Doe",
				Status:          model.JobStatusPending,
				AppointmentDate: &appt,
			},
		},
		{
			name:  "completed task is delivered",
			task:  model.Task{TaskID: 2, ScheduledDate: &appt, CompletedAt: &done},
			sites: map[int64]model.Site{9: site},
			setup: func(*MockSiteSource) {},
			want: model.Job{
				ID:              "1-2",
				OrderID:         1,
				TaskID:          2,
				SiteID:          9,
				Address:         "1 Main St, Springfield",
				ClientName:      "Jane Doe",
				Status:          model.JobStatusDelivered,
				AppointmentDate: &appt,
				DeliveryDate:    &done,
			},
		},
		{
			name:  "unavailable site degrades enrichment to empty",
			task:  model.Task{TaskID: 3, ScheduledDate: &appt},
			sites: map[int64]model.Site{},
			setup: func(source *MockSiteSource) {
				source.EXPECT().GetSite(gomock.Any(), int64(9)).Return(nil, nil)
			},
			want: model.Job{
				ID:              "1-3",
				OrderID:         1,
				TaskID:          3,
				SiteID:          9,
				Status:          model.JobStatusPending,
				AppointmentDate: &appt,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := NewMockSiteSource(ctrl)
			tt.setup(source)

			builder := NewJobBuilder(NewSiteCache(source, testLogger()))
			got := builder.Build(context.Background(), tt.sites, order, tt.task)
			assert.Equal(t, tt.want, got)
		})
	}
}
