package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

func jobTable(source entity.JobSource) (string, error) {
	switch source {
	case entity.JobSourcePrimary, entity.JobSourceLegacy:
		return string(source), nil
	default:
		return "", fmt.Errorf("%w: unknown job source %q", entity.ErrInvalidArgument, source)
	}
}

func (r *Repository) Jobs(ctx context.Context, source entity.JobSource, f entity.JobFilter) ([]entity.JobAssignment, error) {
	table, err := jobTable(source)
	if err != nil {
		return nil, err
	}

	stmt := sq.Select(jobColumns...).From(table).PlaceholderFormat(sq.Dollar)

	stmt = applyJobFilter(stmt, f).OrderBy("scheduled_at", "id")

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	jobs := make([]entity.JobAssignment, 0)

	for rows.Next() {
		job, err := scanJob(rows, source)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func (r *Repository) Job(ctx context.Context, source entity.JobSource, id uuid.UUID) (entity.JobAssignment, error) {
	table, err := jobTable(source)
	if err != nil {
		return entity.JobAssignment{}, err
	}

	query, args, err := sq.Select(jobColumns...).
		From(table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.JobAssignment{}, err
	}

	return scanJob(r.db.QueryRow(ctx, query, args...), source)
}

// FindJob looks the job up in the current store first, then in the legacy one.
func (r *Repository) FindJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error) {
	job, err := r.Job(ctx, entity.JobSourcePrimary, id)
	if err == nil || !errors.Is(err, entity.ErrNotFound) {
		return job, err
	}

	return r.Job(ctx, entity.JobSourceLegacy, id)
}

func (r *Repository) CreateJob(ctx context.Context, job entity.JobAssignment) error {
	table, err := jobTable(job.Source)
	if err != nil {
		return err
	}

	reqs, err := marshalRequirements(job.Requirements)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(table).
		Columns(jobColumns...).
		Values(
			job.ID,
			job.Title,
			job.Description,
			job.Type,
			job.Status,
			job.Priority,
			job.PropertyID,
			job.PropertyName,
			job.Location,
			job.ScheduledAt,
			job.EstimatedDuration,
			job.AssignedStaffID,
			job.RequiredRole,
			reqs,
			job.DeclineReason,
			job.AcceptedAt,
			job.StartedAt,
			job.CompletedAt,
			job.CreatedAt,
			job.UpdatedAt,
		).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query, args...)

	return err
}

// UpdateJobStatus applies u and returns the updated job. entity.ErrJobTaken means the
// row no longer matched: another writer changed the status or claimed it first.
func (r *Repository) UpdateJobStatus(ctx context.Context, u entity.JobStatusUpdate) (entity.JobAssignment, error) {
	table, err := jobTable(u.Source)
	if err != nil {
		return entity.JobAssignment{}, err
	}

	stmt := sq.Update(table).
		Set("status", u.To).
		Set("updated_at", u.At).
		Where(sq.Eq{"id": u.ID, "status": u.From}).
		PlaceholderFormat(sq.Dollar)

	switch u.To {
	case entity.JobStatusAccepted:
		stmt = stmt.Set("accepted_at", u.At)
	case entity.JobStatusInProgress:
		stmt = stmt.Set("started_at", u.At)
	case entity.JobStatusCompleted:
		stmt = stmt.Set("completed_at", u.At)
	case entity.JobStatusDeclined:
		stmt = stmt.Set("decline_reason", u.DeclineReason)
	}

	if u.Claim {
		stmt = stmt.
			Set("assigned_staff_id", u.StaffID).
			Where(sq.Or{sq.Eq{"assigned_staff_id": nil}, sq.Eq{"assigned_staff_id": u.StaffID}})
	} else {
		stmt = stmt.Where(sq.Eq{"assigned_staff_id": u.StaffID})
	}

	query, args, err := stmt.Suffix(returningJob()).ToSql()
	if err != nil {
		return entity.JobAssignment{}, err
	}

	job, err := scanJob(r.db.QueryRow(ctx, query, args...), u.Source)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.JobAssignment{}, entity.ErrJobTaken
		}

		return entity.JobAssignment{}, err
	}

	return job, nil
}

// SetJobRequirement rewrites the single checklist item in place. entity.ErrJobTaken means
// the job left accepted/in_progress, changed hands or has no such item.
func (r *Repository) SetJobRequirement(ctx context.Context, u entity.RequirementUpdate) (entity.JobAssignment, error) {
	table, err := jobTable(u.Source)
	if err != nil {
		return entity.JobAssignment{}, err
	}

	query, args, err := sq.Update(table).
		Set("requirements", sq.Expr(`(
			SELECT jsonb_agg(
				CASE WHEN e->>'id' = ? THEN jsonb_set(e, '{isCompleted}', to_jsonb(?::boolean)) ELSE e END
				ORDER BY ord
			)
			FROM jsonb_array_elements(requirements) WITH ORDINALITY AS r(e, ord)
		)`, u.RequirementID, u.Completed)).
		Set("updated_at", u.At).
		Where(sq.Eq{
			"id":                u.JobID,
			"assigned_staff_id": u.StaffID,
			"status":            []entity.JobStatus{entity.JobStatusAccepted, entity.JobStatusInProgress},
		}).
		Where(sq.Expr("requirements @> jsonb_build_array(jsonb_build_object('id', ?::text))", u.RequirementID)).
		Suffix(returningJob()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.JobAssignment{}, err
	}

	job, err := scanJob(r.db.QueryRow(ctx, query, args...), u.Source)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.JobAssignment{}, entity.ErrJobTaken
		}

		return entity.JobAssignment{}, err
	}

	return job, nil
}

// MarkOverdue flips not yet accepted jobs scheduled before now to overdue and returns them.
func (r *Repository) MarkOverdue(ctx context.Context, source entity.JobSource, now time.Time) ([]entity.JobAssignment, error) {
	table, err := jobTable(source)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Update(table).
		Set("status", entity.JobStatusOverdue).
		Set("updated_at", now).
		Where(sq.Eq{"status": []entity.JobStatus{entity.JobStatusPending, entity.JobStatusAssigned}}).
		Where(sq.Lt{"scheduled_at": now}).
		Suffix(returningJob()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var jobs []entity.JobAssignment

	for rows.Next() {
		job, err := scanJob(rows, source)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func applyJobFilter(stmt sq.SelectBuilder, f entity.JobFilter) sq.SelectBuilder {
	if f.StaffID != nil {
		stmt = stmt.Where(sq.Eq{"assigned_staff_id": *f.StaffID})
	}

	if f.Unassigned {
		stmt = stmt.Where(sq.Eq{"assigned_staff_id": nil})
	}

	if f.Role != "" {
		stmt = stmt.Where(sq.Or{sq.Eq{"required_role": ""}, sq.Eq{"required_role": f.Role}})
	}

	if len(f.Statuses) > 0 {
		stmt = stmt.Where(sq.Eq{"status": f.Statuses})
	}

	if f.ExcludeFinal {
		stmt = stmt.Where(sq.NotEq{"status": []entity.JobStatus{
			entity.JobStatusCompleted,
			entity.JobStatusDeclined,
			entity.JobStatusCancelled,
		}})
	}

	if f.From != nil {
		stmt = stmt.Where(sq.GtOrEq{"scheduled_at": *f.From})
	}

	if f.To != nil {
		stmt = stmt.Where(sq.Lt{"scheduled_at": *f.To})
	}

	return stmt
}

func returningJob() string {
	q := "RETURNING "

	for i, c := range jobColumns {
		if i > 0 {
			q += ", "
		}

		q += c
	}

	return q
}

func marshalRequirements(reqs []entity.JobRequirement) ([]byte, error) {
	if reqs == nil {
		reqs = []entity.JobRequirement{}
	}

	b, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("marshal requirements: %w", err)
	}

	return b, nil
}

func scanJob(row pgx.Row, source entity.JobSource) (entity.JobAssignment, error) {
	var (
		job  entity.JobAssignment
		reqs []byte
	)

	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.Type,
		&job.Status,
		&job.Priority,
		&job.PropertyID,
		&job.PropertyName,
		&job.Location,
		&job.ScheduledAt,
		&job.EstimatedDuration,
		&job.AssignedStaffID,
		&job.RequiredRole,
		&reqs,
		&job.DeclineReason,
		&job.AcceptedAt,
		&job.StartedAt,
		&job.CompletedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.JobAssignment{}, entity.ErrNotFound
		}

		return entity.JobAssignment{}, err
	}

	job.Requirements = []entity.JobRequirement{}

	if len(reqs) > 0 {
		err = json.Unmarshal(reqs, &job.Requirements)
		if err != nil {
			return entity.JobAssignment{}, fmt.Errorf("unmarshal requirements of job %s: %w", job.ID, err)
		}
	}

	job.Source = source

	return job, nil
}
