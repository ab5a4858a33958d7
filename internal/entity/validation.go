package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type IssueCode string

const (
	IssueRequiredField        IssueCode = "required_field"
	IssueInvalidValue         IssueCode = "invalid_value"
	IssueStaffNotFound        IssueCode = "staff_not_found"
	IssueStaffInactive        IssueCode = "staff_inactive"
	IssueScheduleConflict     IssueCode = "schedule_conflict"
	IssueDailyJobLimit        IssueCode = "daily_job_limit"
	IssueDailyWorkloadLimit   IssueCode = "daily_workload_limit"
	IssuePossibleDuplicate    IssueCode = "possible_duplicate"
	IssueOutsideBusinessHours IssueCode = "outside_business_hours"
	IssueWeekend              IssueCode = "weekend"
	IssueHoliday              IssueCode = "holiday"
	IssueScheduledInPast      IssueCode = "scheduled_in_past"
)

type ValidationIssue struct {
	Code    IssueCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

type ValidationResult struct {
	IsValid         bool              `json:"isValid"`
	Errors          []ValidationIssue `json:"errors"`
	Warnings        []ValidationIssue `json:"warnings"`
	ConflictingJobs []uuid.UUID       `json:"conflictingJobs"`
}

func (r ValidationResult) HasError(code IssueCode) bool {
	return hasIssue(r.Errors, code)
}

func (r ValidationResult) HasWarning(code IssueCode) bool {
	return hasIssue(r.Warnings, code)
}

func hasIssue(issues []ValidationIssue, code IssueCode) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}

	return false
}

// AssignmentRequest is what a manager submits to put a job on a staff member's schedule.
// JobID is set when an existing job is re-validated so that it does not conflict with itself.
type AssignmentRequest struct {
	JobID             *uuid.UUID       `json:"jobId,omitempty"`
	Title             string           `json:"title"`
	Description       string           `json:"description,omitempty"`
	Type              JobType          `json:"type"`
	Priority          JobPriority      `json:"priority"`
	PropertyID        string           `json:"propertyId"`
	PropertyName      string           `json:"propertyName,omitempty"`
	Location          string           `json:"location,omitempty"`
	StaffID           uuid.UUID        `json:"staffId"`
	ScheduledAt       time.Time        `json:"scheduledAt"`
	EstimatedDuration int              `json:"estimatedDuration"`
	Requirements      []JobRequirement `json:"requirements,omitempty"`
}

type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string { return ErrValidation.Error() }

func (e *ValidationError) Unwrap() error { return ErrValidation }
