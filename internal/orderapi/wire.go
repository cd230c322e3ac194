package orderapi

import (
	"bytes"
	"fmt"
	"time"

	"github.com/target/phototrack/internal/domain/model"
)

// timeLayouts lists the timestamp formats the order API is known to emit,
// most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// apiTime decodes the order API's loosely formatted timestamps into a real
// time instant. Downstream comparisons are always between instants, never
// between strings.
type apiTime struct {
	time.Time
}

// UnmarshalJSON accepts null, an empty string, or any known layout.
func (t *apiTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

func (t *apiTime) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	out := t.Time
	return &out
}

type orderPayload struct {
	OrderID int64         `json:"orderId"`
	SiteID  int64         `json:"siteId"`
	Tasks   []taskPayload `json:"tasks"`
}

type taskPayload struct {
	TaskID           int64    `json:"taskId"`
	ScheduledDate    *apiTime `json:"scheduledDate"`
	AssignedMember   string   `json:"assignedMember"`
	CompletionMarker *apiTime `json:"completionMarker"`
}

type siteClientPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type sitePayload struct {
	Street string            `json:"street"`
	City   string            `json:"city"`
	State  string            `json:"state"`
	Zip    string            `json:"zip"`
	Client siteClientPayload `json:"client"`
}

func (p orderPayload) toModel() model.Order {
	tasks := make([]model.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, model.Task{
			TaskID:         t.TaskID,
			ScheduledDate:  t.ScheduledDate.ptr(),
			AssignedMember: t.AssignedMember,
			CompletedAt:    t.CompletionMarker.ptr(),
		})
	}
	return model.Order{
		OrderID: p.OrderID,
		SiteID:  p.SiteID,
		Tasks:   tasks,
	}
}

func (p sitePayload) toModel() model.Site {
	return model.Site{
		Street: p.Street,
		City:   p.City,
		State:  p.State,
		Zip:    p.Zip,
		Client: model.SiteClient{
			FirstName: p.Client.FirstName,
			LastName:  p.Client.LastName,
		},
	}
}
