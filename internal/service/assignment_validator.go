package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/livesync"
	"github.com/samandr77/microservices/staff/pkg/config"
)

type AssignmentLookup interface {
	Profile(ctx context.Context, id uuid.UUID) (entity.StaffProfile, error)
	Jobs(ctx context.Context, source entity.JobSource, f entity.JobFilter) ([]entity.JobAssignment, error)
}

// AssignmentValidator runs independent checks against an assignment request. Errors
// make the request invalid, warnings never do. Nothing is locked between validation
// and the write that may follow it.
type AssignmentValidator struct {
	repo     AssignmentLookup
	cfg      config.Validation
	loc      *time.Location
	holidays map[string]struct{}
	now      func() time.Time
}

func NewAssignmentValidator(repo AssignmentLookup, cfg config.Validation) (*AssignmentValidator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("load time zone: %w", err)
	}

	holidays := make(map[string]struct{}, len(cfg.Holidays))

	for _, h := range cfg.Holidays {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}

		_, err = time.ParseInLocation(time.DateOnly, h, loc)
		if err != nil {
			return nil, fmt.Errorf("parse holiday %q: %w", h, err)
		}

		holidays[h] = struct{}{}
	}

	return &AssignmentValidator{
		repo:     repo,
		cfg:      cfg,
		loc:      loc,
		holidays: holidays,
		now:      time.Now,
	}, nil
}

type validation struct {
	result entity.ValidationResult
}

func (v *validation) fail(code entity.IssueCode, field, msg string) {
	v.result.Errors = append(v.result.Errors, entity.ValidationIssue{Code: code, Field: field, Message: msg})
}

func (v *validation) warn(code entity.IssueCode, field, msg string) {
	v.result.Warnings = append(v.result.Warnings, entity.ValidationIssue{Code: code, Field: field, Message: msg})
}

func (av *AssignmentValidator) Validate(ctx context.Context, req entity.AssignmentRequest) (entity.ValidationResult, error) {
	v := &validation{result: entity.ValidationResult{
		Errors:          []entity.ValidationIssue{},
		Warnings:        []entity.ValidationIssue{},
		ConflictingJobs: []uuid.UUID{},
	}}

	av.checkRequired(v, req)
	av.checkValues(v, req)

	staffOK, err := av.checkStaff(ctx, v, req)
	if err != nil {
		return entity.ValidationResult{}, err
	}

	if staffOK && !req.ScheduledAt.IsZero() && req.EstimatedDuration > 0 {
		err = av.checkSchedule(ctx, v, req)
		if err != nil {
			return entity.ValidationResult{}, err
		}
	}

	if !req.ScheduledAt.IsZero() {
		av.checkCalendar(v, req)
	}

	v.result.IsValid = len(v.result.Errors) == 0

	return v.result, nil
}

func (av *AssignmentValidator) checkRequired(v *validation, req entity.AssignmentRequest) {
	if strings.TrimSpace(req.Title) == "" {
		v.fail(entity.IssueRequiredField, "title", "title is required")
	}

	if req.Type == "" {
		v.fail(entity.IssueRequiredField, "type", "job type is required")
	}

	if req.StaffID == uuid.Nil {
		v.fail(entity.IssueRequiredField, "staffId", "staff member is required")
	}

	if strings.TrimSpace(req.PropertyID) == "" {
		v.fail(entity.IssueRequiredField, "propertyId", "property is required")
	}

	if req.ScheduledAt.IsZero() {
		v.fail(entity.IssueRequiredField, "scheduledAt", "scheduled time is required")
	}

	if req.EstimatedDuration <= 0 {
		v.fail(entity.IssueRequiredField, "estimatedDuration", "estimated duration must be greater than zero")
	}
}

func (av *AssignmentValidator) checkValues(v *validation, req entity.AssignmentRequest) {
	if req.Type != "" && !req.Type.Valid() {
		v.fail(entity.IssueInvalidValue, "type", fmt.Sprintf("unknown job type %q", req.Type))
	}

	if req.Priority != "" && !req.Priority.Valid() {
		v.fail(entity.IssueInvalidValue, "priority", fmt.Sprintf("unknown priority %q", req.Priority))
	}
}

func (av *AssignmentValidator) checkStaff(ctx context.Context, v *validation, req entity.AssignmentRequest) (bool, error) {
	if req.StaffID == uuid.Nil {
		return false, nil
	}

	staff, err := av.repo.Profile(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, entity.ErrStaffNotFound) {
			v.fail(entity.IssueStaffNotFound, "staffId", "staff member not found")
			return false, nil
		}

		return false, fmt.Errorf("get staff %s: %w", req.StaffID, err)
	}

	if !staff.IsActive {
		v.fail(entity.IssueStaffInactive, "staffId", fmt.Sprintf("%s is not active", staff.Name))
		return false, nil
	}

	return true, nil
}

func (av *AssignmentValidator) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(av.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, av.loc)

	return start, start.AddDate(0, 0, 1)
}

// staffJobs returns the non-terminal jobs of a staff member from both stores that may
// touch [from, to). The job being re-validated is left out.
func (av *AssignmentValidator) staffJobs(
	ctx context.Context,
	req entity.AssignmentRequest,
	from, to time.Time,
) ([]entity.JobAssignment, error) {
	f := entity.JobFilter{
		StaffID:      &req.StaffID,
		ExcludeFinal: true,
		From:         &from,
		To:           &to,
	}

	primary, err := av.repo.Jobs(ctx, entity.JobSourcePrimary, f)
	if err != nil {
		return nil, fmt.Errorf("get jobs: %w", err)
	}

	legacy, err := av.repo.Jobs(ctx, entity.JobSourceLegacy, f)
	if err != nil {
		return nil, fmt.Errorf("get legacy jobs: %w", err)
	}

	merged := livesync.Merge(primary, legacy)

	jobs := merged[:0]

	for _, j := range merged {
		if req.JobID != nil && j.ID == *req.JobID {
			continue
		}

		jobs = append(jobs, j)
	}

	return jobs, nil
}

func (av *AssignmentValidator) checkSchedule(ctx context.Context, v *validation, req entity.AssignmentRequest) error {
	start := req.ScheduledAt
	end := start.Add(time.Duration(req.EstimatedDuration) * time.Minute)
	dayStart, dayEnd := av.dayBounds(start)

	// jobs scheduled up to a day earlier may still be running
	from := dayStart.AddDate(0, 0, -1)
	to := dayEnd

	if end.After(to) {
		to = end
	}

	jobs, err := av.staffJobs(ctx, req, from, to)
	if err != nil {
		return err
	}

	var (
		sameDay int
		minutes = req.EstimatedDuration
	)

	for _, j := range jobs {
		if entity.Overlaps(start, end, j.ScheduledAt, j.EndsAt()) {
			v.result.ConflictingJobs = append(v.result.ConflictingJobs, j.ID)
		}

		if j.ScheduledAt.Before(dayStart) || !j.ScheduledAt.Before(dayEnd) {
			continue
		}

		sameDay++
		minutes += j.EstimatedDuration

		if j.PropertyID == req.PropertyID && j.Type == req.Type {
			v.warn(entity.IssuePossibleDuplicate, "propertyId",
				fmt.Sprintf("a %s job at this property is already scheduled that day (%s)", j.Type, j.ID))
		}
	}

	if len(v.result.ConflictingJobs) > 0 {
		v.fail(entity.IssueScheduleConflict, "scheduledAt",
			fmt.Sprintf("overlaps with %d existing assignment(s)", len(v.result.ConflictingJobs)))
	}

	if sameDay >= av.cfg.MaxJobsPerDay {
		v.warn(entity.IssueDailyJobLimit, "staffId",
			fmt.Sprintf("already has %d jobs that day (limit %d)", sameDay, av.cfg.MaxJobsPerDay))
	}

	if minutes > av.cfg.MaxMinutesPerDay {
		v.warn(entity.IssueDailyWorkloadLimit, "estimatedDuration",
			fmt.Sprintf("total workload would be %d minutes (limit %d)", minutes, av.cfg.MaxMinutesPerDay))
	}

	return nil
}

func (av *AssignmentValidator) checkCalendar(v *validation, req entity.AssignmentRequest) {
	if req.ScheduledAt.Before(av.now()) {
		v.warn(entity.IssueScheduledInPast, "scheduledAt", "scheduled time is in the past")
	}

	if req.Type == entity.JobTypeEmergency {
		return
	}

	local := req.ScheduledAt.In(av.loc)
	y, m, d := local.Date()
	open := time.Date(y, m, d, av.cfg.BusinessHoursStart, 0, 0, 0, av.loc)
	closing := time.Date(y, m, d, av.cfg.BusinessHoursEnd, 0, 0, 0, av.loc)
	end := local.Add(time.Duration(max(req.EstimatedDuration, 0)) * time.Minute)

	if local.Before(open) || end.After(closing) {
		v.warn(entity.IssueOutsideBusinessHours, "scheduledAt",
			fmt.Sprintf("outside business hours %02d:00-%02d:00", av.cfg.BusinessHoursStart, av.cfg.BusinessHoursEnd))
	}

	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		v.warn(entity.IssueWeekend, "scheduledAt", "scheduled on a weekend")
	}

	if _, ok := av.holidays[local.Format(time.DateOnly)]; ok {
		v.warn(entity.IssueHoliday, "scheduledAt", "scheduled on a holiday")
	}
}
