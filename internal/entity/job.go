package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type JobType string

const (
	JobTypeCleaning    JobType = "cleaning"
	JobTypeMaintenance JobType = "maintenance"
	JobTypeInspection  JobType = "inspection"
	JobTypeSetup       JobType = "setup"
	JobTypeCheckout    JobType = "checkout"
	JobTypeEmergency   JobType = "emergency"
	JobTypeDelivery    JobType = "delivery"
	JobTypeOther       JobType = "other"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeCleaning, JobTypeMaintenance, JobTypeInspection, JobTypeSetup,
		JobTypeCheckout, JobTypeEmergency, JobTypeDelivery, JobTypeOther:
		return true
	default:
		return false
	}
}

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusAssigned   JobStatus = "assigned"
	JobStatusAccepted   JobStatus = "accepted"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusDeclined   JobStatus = "declined"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusOverdue    JobStatus = "overdue"
)

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusDeclined || s == JobStatusCancelled
}

type JobPriority string

const (
	PriorityUrgent JobPriority = "urgent"
	PriorityHigh   JobPriority = "high"
	PriorityMedium JobPriority = "medium"
	PriorityLow    JobPriority = "low"
)

func (p JobPriority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// JobSource names the table a job was read from. Writes go back to the same table.
type JobSource string

const (
	JobSourcePrimary JobSource = "jobs"
	JobSourceLegacy  JobSource = "job_assignments"
)

type JobAction string

const (
	JobActionAccept   JobAction = "accept"
	JobActionDecline  JobAction = "decline"
	JobActionStart    JobAction = "start"
	JobActionComplete JobAction = "complete"
)

var jobTransitions = map[JobAction]struct {
	from []JobStatus
	to   JobStatus
}{
	JobActionAccept:   {from: []JobStatus{JobStatusPending, JobStatusAssigned, JobStatusOverdue}, to: JobStatusAccepted},
	JobActionDecline:  {from: []JobStatus{JobStatusPending, JobStatusAssigned, JobStatusOverdue}, to: JobStatusDeclined},
	JobActionStart:    {from: []JobStatus{JobStatusAccepted, JobStatusOverdue}, to: JobStatusInProgress},
	JobActionComplete: {from: []JobStatus{JobStatusInProgress}, to: JobStatusCompleted},
}

// NextStatus returns the status a job moves to when action is applied to a job in status from.
func NextStatus(from JobStatus, action JobAction) (JobStatus, error) {
	t, ok := jobTransitions[action]
	if !ok {
		return "", ErrInvalidArgument
	}

	for _, s := range t.from {
		if s == from {
			return t.to, nil
		}
	}

	return "", ErrInvalidTransition
}

type JobRequirement struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

type JobAssignment struct {
	ID                uuid.UUID        `json:"id"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	Type              JobType          `json:"type"`
	Status            JobStatus        `json:"status"`
	Priority          JobPriority      `json:"priority"`
	PropertyID        string           `json:"propertyId"`
	PropertyName      string           `json:"propertyName,omitempty"`
	Location          string           `json:"location,omitempty"`
	ScheduledAt       time.Time        `json:"scheduledAt"`
	EstimatedDuration int              `json:"estimatedDuration"`
	AssignedStaffID   *uuid.UUID       `json:"assignedStaffId,omitempty"`
	RequiredRole      StaffRole        `json:"requiredRole,omitempty"`
	Requirements      []JobRequirement `json:"requirements"`
	DeclineReason     string           `json:"declineReason,omitempty"`
	Source            JobSource        `json:"source"`
	AcceptedAt        *time.Time       `json:"acceptedAt,omitempty"`
	StartedAt         *time.Time       `json:"startedAt,omitempty"`
	CompletedAt       *time.Time       `json:"completedAt,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

func (j JobAssignment) EndsAt() time.Time {
	return j.ScheduledAt.Add(time.Duration(j.EstimatedDuration) * time.Minute)
}

func (j JobAssignment) IsAssignedTo(staffID uuid.UUID) bool {
	return j.AssignedStaffID != nil && *j.AssignedStaffID == staffID
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) overlap: b starts
// within a, b ends within a, or b spans a entirely.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	startWithin := !bStart.Before(aStart) && bStart.Before(aEnd)
	endWithin := bEnd.After(aStart) && !bEnd.After(aEnd)
	spanning := !bStart.After(aStart) && !bEnd.Before(aEnd) && bStart.Before(aEnd) && bEnd.After(aStart)

	return startWithin || endWithin || spanning
}

type JobFilter struct {
	StaffID      *uuid.UUID
	Unassigned   bool
	Role         StaffRole
	Statuses     []JobStatus
	ExcludeFinal bool
	From         *time.Time
	To           *time.Time
}

// RequirementUpdate ticks one checklist item. The row is only touched while the job is
// accepted or in progress and still belongs to StaffID.
type RequirementUpdate struct {
	JobID         uuid.UUID
	Source        JobSource
	StaffID       uuid.UUID
	RequirementID string
	Completed     bool
	At            time.Time
}

// JobStatusUpdate moves a job from one status to another. The row is only touched while
// it still has status From and belongs to StaffID, or is unassigned when Claim is set.
type JobStatusUpdate struct {
	ID            uuid.UUID
	Source        JobSource
	StaffID       uuid.UUID
	From          JobStatus
	To            JobStatus
	Claim         bool
	DeclineReason string
	At            time.Time
}
