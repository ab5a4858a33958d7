package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type JobEventType string

const (
	JobEventAssigned      JobEventType = "job_assigned"
	JobEventStatusChanged JobEventType = "job_status_changed"
	JobEventUpdated       JobEventType = "job_updated"
)

// JobChangedEvent is published on every job write; live queries re-run on it.
type JobChangedEvent struct {
	Type       JobEventType `json:"type"`
	JobID      uuid.UUID    `json:"jobId"`
	Source     JobSource    `json:"source"`
	StaffID    *uuid.UUID   `json:"staffId,omitempty"`
	Status     JobStatus    `json:"status"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// JobAssignedEvent asks the notification side to tell a staff member about a job.
type JobAssignedEvent struct {
	JobID       uuid.UUID   `json:"jobId"`
	StaffID     uuid.UUID   `json:"staffId"`
	Title       string      `json:"title"`
	Priority    JobPriority `json:"priority"`
	ScheduledAt time.Time   `json:"scheduledAt"`
	Property    string      `json:"property,omitempty"`
}
