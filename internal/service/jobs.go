package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/livesync"
)

const (
	queryAssigned       = "assigned"
	queryAssignedLegacy = "assigned_legacy"
	queryOpen           = "open"
)

type jobQuery struct {
	name  string
	fetch livesync.FetchFunc
}

// jobQueries are the three job sources shown to a staff member: their assignments in
// both stores and the open jobs their role may pick up.
func (s *Service) jobQueries(staff entity.StaffProfile) []jobQuery {
	assigned := entity.JobFilter{StaffID: &staff.ID, ExcludeFinal: true}
	// an open job past its time is still claimable
	open := entity.JobFilter{
		Unassigned: true,
		Role:       staff.Role,
		Statuses:   []entity.JobStatus{entity.JobStatusPending, entity.JobStatusOverdue},
	}

	fetch := func(source entity.JobSource, f entity.JobFilter) livesync.FetchFunc {
		return func(ctx context.Context) ([]entity.JobAssignment, error) {
			return s.repo.Jobs(ctx, source, f)
		}
	}

	return []jobQuery{
		{name: queryAssigned, fetch: fetch(entity.JobSourcePrimary, assigned)},
		{name: queryAssignedLegacy, fetch: fetch(entity.JobSourceLegacy, assigned)},
		{name: queryOpen, fetch: fetch(entity.JobSourcePrimary, open)},
	}
}

// Jobs returns the merged job list of the caller.
func (s *Service) Jobs(ctx context.Context) ([]entity.JobAssignment, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	queries := s.jobQueries(staff)
	partitions := make([][]entity.JobAssignment, 0, len(queries))

	for _, q := range queries {
		jobs, err := q.fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("get %s jobs: %w", q.name, err)
		}

		partitions = append(partitions, jobs)
	}

	jobs := livesync.Merge(partitions...)

	if deviceID := entity.DeviceIDFromCtx(ctx); deviceID != "" {
		err = s.sessions.CacheJobs(ctx, deviceID, jobs, s.cfg.Session.TTL)
		if err != nil {
			slog.WarnContext(ctx, "cache jobs", "error", err)
		}
	}

	return jobs, nil
}

// LiveJobs streams the caller's merged job list to sink until ctx is done.
func (s *Service) LiveJobs(ctx context.Context, sink livesync.Sink) error {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return err
	}

	queries := make([]livesync.Query, 0, 3)

	for _, q := range s.jobQueries(staff) {
		trigger, unsubscribe := s.feed.Subscribe()
		defer unsubscribe()

		queries = append(queries, livesync.NewPollQuery(q.name, q.fetch, s.cfg.Session.LivePollInterval, trigger))
	}

	sinks := []livesync.Sink{sink}

	if deviceID := entity.DeviceIDFromCtx(ctx); deviceID != "" {
		sinks = append(sinks, livesync.SinkFunc(func(ctx context.Context, u livesync.Update) error {
			return s.sessions.CacheJobs(ctx, deviceID, u.Jobs, s.cfg.Session.TTL)
		}))
	}

	if s.live != nil {
		sinks = append(sinks, livesync.SinkFunc(func(ctx context.Context, u livesync.Update) error {
			return s.live.PublishJobs(ctx, staff.ID, u)
		}))
	}

	slog.InfoContext(ctx, "live jobs started")

	livesync.NewAggregator(slog.Default(), queries, sinks...).Run(ctx)

	slog.InfoContext(ctx, "live jobs stopped")

	return nil
}

func (s *Service) AcceptJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error) {
	return s.changeJobStatus(ctx, id, entity.JobActionAccept, "")
}

func (s *Service) DeclineJob(ctx context.Context, id uuid.UUID, reason string) (entity.JobAssignment, error) {
	return s.changeJobStatus(ctx, id, entity.JobActionDecline, strings.TrimSpace(reason))
}

func (s *Service) StartJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error) {
	return s.changeJobStatus(ctx, id, entity.JobActionStart, "")
}

func (s *Service) CompleteJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error) {
	return s.changeJobStatus(ctx, id, entity.JobActionComplete, "")
}

func (s *Service) changeJobStatus(
	ctx context.Context,
	id uuid.UUID,
	action entity.JobAction,
	reason string,
) (entity.JobAssignment, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.JobAssignment{}, err
	}

	job, err := s.repo.FindJob(ctx, id)
	if err != nil {
		return entity.JobAssignment{}, fmt.Errorf("get job %s: %w", id, err)
	}

	claim := false

	switch {
	case job.IsAssignedTo(staff.ID):
	case job.AssignedStaffID != nil:
		if action == entity.JobActionAccept {
			return entity.JobAssignment{}, entity.ErrJobTaken
		}

		return entity.JobAssignment{}, entity.ErrForbidden
	case action != entity.JobActionAccept:
		return entity.JobAssignment{}, fmt.Errorf("%w: job %s is not assigned to you", entity.ErrForbidden, id)
	case job.RequiredRole != "" && job.RequiredRole != staff.Role:
		return entity.JobAssignment{}, fmt.Errorf("%w: job %s requires role %s", entity.ErrForbidden, id, job.RequiredRole)
	default:
		claim = true
	}

	next, err := entity.NextStatus(job.Status, action)
	if err != nil {
		return entity.JobAssignment{}, fmt.Errorf("%s job in status %s: %w", action, job.Status, err)
	}

	updated, err := s.repo.UpdateJobStatus(ctx, entity.JobStatusUpdate{
		ID:            job.ID,
		Source:        job.Source,
		StaffID:       staff.ID,
		From:          job.Status,
		To:            next,
		Claim:         claim,
		DeclineReason: reason,
		At:            time.Now(),
	})
	if err != nil {
		return entity.JobAssignment{}, fmt.Errorf("update job %s: %w", id, err)
	}

	slog.InfoContext(ctx, "job status changed", "job_id", id, "from", job.Status, "to", next)

	s.jobChanged(ctx, entity.JobEventStatusChanged, updated)

	return updated, nil
}

// SetRequirement ticks or unticks one checklist item of a job the caller is working on.
func (s *Service) SetRequirement(ctx context.Context, jobID uuid.UUID, reqID string, completed bool) (entity.JobAssignment, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.JobAssignment{}, err
	}

	job, err := s.repo.FindJob(ctx, jobID)
	if err != nil {
		return entity.JobAssignment{}, fmt.Errorf("get job %s: %w", jobID, err)
	}

	if !job.IsAssignedTo(staff.ID) {
		return entity.JobAssignment{}, entity.ErrForbidden
	}

	if job.Status != entity.JobStatusAccepted && job.Status != entity.JobStatusInProgress {
		return entity.JobAssignment{}, fmt.Errorf("update checklist of %s job: %w", job.Status, entity.ErrInvalidTransition)
	}

	if !slices.ContainsFunc(job.Requirements, func(r entity.JobRequirement) bool { return r.ID == reqID }) {
		return entity.JobAssignment{}, fmt.Errorf("requirement %s: %w", reqID, entity.ErrNotFound)
	}

	// the write repeats the status and owner checks, so a concurrent transition wins
	updated, err := s.repo.SetJobRequirement(ctx, entity.RequirementUpdate{
		JobID:         job.ID,
		Source:        job.Source,
		StaffID:       staff.ID,
		RequirementID: reqID,
		Completed:     completed,
		At:            time.Now(),
	})
	if err != nil {
		return entity.JobAssignment{}, fmt.Errorf("update requirements: %w", err)
	}

	s.jobChanged(ctx, entity.JobEventUpdated, updated)

	return updated, nil
}

func (s *Service) ValidateAssignment(ctx context.Context, req entity.AssignmentRequest) (entity.ValidationResult, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.ValidationResult{}, err
	}

	if !staff.Role.CanAssign() {
		return entity.ValidationResult{}, entity.ErrForbidden
	}

	return s.validator.Validate(ctx, req)
}

// CreateAssignment validates req and, when it holds no errors, stores it as an assigned
// job in the current store. Warnings are returned alongside the job.
func (s *Service) CreateAssignment(
	ctx context.Context,
	req entity.AssignmentRequest,
) (entity.JobAssignment, entity.ValidationResult, error) {
	result, err := s.ValidateAssignment(ctx, req)
	if err != nil {
		return entity.JobAssignment{}, entity.ValidationResult{}, err
	}

	if !result.IsValid {
		return entity.JobAssignment{}, result, &entity.ValidationError{Result: result}
	}

	now := time.Now()
	staffID := req.StaffID

	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}

	reqs := make([]entity.JobRequirement, 0, len(req.Requirements))

	for i, r := range req.Requirements {
		if r.ID == "" {
			r.ID = strconv.Itoa(i + 1)
		}

		reqs = append(reqs, r)
	}

	job := entity.JobAssignment{
		ID:                uuid.Must(uuid.NewV4()),
		Title:             strings.TrimSpace(req.Title),
		Description:       req.Description,
		Type:              req.Type,
		Status:            entity.JobStatusAssigned,
		Priority:          priority,
		PropertyID:        req.PropertyID,
		PropertyName:      req.PropertyName,
		Location:          req.Location,
		ScheduledAt:       req.ScheduledAt,
		EstimatedDuration: req.EstimatedDuration,
		AssignedStaffID:   &staffID,
		Requirements:      reqs,
		Source:            entity.JobSourcePrimary,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = s.repo.CreateJob(ctx, job)
	if err != nil {
		return entity.JobAssignment{}, entity.ValidationResult{}, fmt.Errorf("create job: %w", err)
	}

	slog.InfoContext(ctx, "assignment created", "job_id", job.ID, "assignee", staffID, "warnings", len(result.Warnings))

	s.jobChanged(ctx, entity.JobEventAssigned, job)
	s.producer.JobAssigned(ctx, entity.JobAssignedEvent{
		JobID:       job.ID,
		StaffID:     staffID,
		Title:       job.Title,
		Priority:    job.Priority,
		ScheduledAt: job.ScheduledAt,
		Property:    job.PropertyName,
	})

	return job, result, nil
}

// MarkOverdue is the overdue job: it flips late jobs in both stores.
func (s *Service) MarkOverdue(ctx context.Context) error {
	now := time.Now()

	var errs []error

	for _, source := range []entity.JobSource{entity.JobSourcePrimary, entity.JobSourceLegacy} {
		jobs, err := s.repo.MarkOverdue(ctx, source, now)
		if err != nil {
			errs = append(errs, fmt.Errorf("mark %s overdue: %w", source, err))
			continue
		}

		for _, job := range jobs {
			s.jobChanged(ctx, entity.JobEventStatusChanged, job)
		}

		if len(jobs) > 0 {
			slog.InfoContext(ctx, "jobs marked overdue", "source", source, "count", len(jobs))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) jobChanged(ctx context.Context, t entity.JobEventType, job entity.JobAssignment) {
	s.producer.JobChanged(ctx, entity.JobChangedEvent{
		Type:       t,
		JobID:      job.ID,
		Source:     job.Source,
		StaffID:    job.AssignedStaffID,
		Status:     job.Status,
		OccurredAt: job.UpdatedAt,
	})
}
