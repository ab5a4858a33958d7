package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

func (r *Repository) CreateNotification(ctx context.Context, n entity.Notification) error {
	const q = `
	INSERT INTO notifications (
		id,
		staff_id,
		job_id,
		priority,
		title,
		message,
		is_read,
		read_at,
		created_at,
		expires_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		n.ID,
		n.StaffID,
		n.JobID,
		n.Priority,
		n.Title,
		n.Message,
		n.IsRead,
		n.ReadAt,
		n.CreatedAt,
		n.ExpiresAt,
	)

	return err
}

func (r *Repository) Notifications(ctx context.Context, f entity.NotificationFilter, now time.Time) ([]entity.Notification, error) {
	stmt := sq.Select(
		"id",
		"staff_id",
		"job_id",
		"priority",
		"title",
		"message",
		"is_read",
		"read_at",
		"created_at",
		"expires_at",
	).
		From("notifications").
		Where(sq.Eq{"staff_id": f.StaffID}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Dollar)

	if f.UnreadOnly {
		stmt = stmt.Where(sq.Eq{"is_read": false})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit)
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	notifications := make([]entity.Notification, 0)

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *Repository) Notification(ctx context.Context, staffID, id uuid.UUID) (entity.Notification, error) {
	q := selectNotification + " WHERE id = $1 AND staff_id = $2"
	return scanNotification(r.db.QueryRow(ctx, q, id, staffID))
}

// MarkNotificationRead keeps the first read_at when called again.
func (r *Repository) MarkNotificationRead(ctx context.Context, staffID, id uuid.UUID, readAt time.Time) (entity.Notification, error) {
	q := `
	UPDATE notifications SET is_read = TRUE, read_at = COALESCE(read_at, $3)
	WHERE id = $1 AND staff_id = $2` + returningNotification

	return scanNotification(r.db.QueryRow(ctx, q, id, staffID, readAt))
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, staffID uuid.UUID, readAt time.Time) (int64, error) {
	const q = `UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE staff_id = $1 AND NOT is_read`

	result, err := r.db.Exec(ctx, q, staffID, readAt)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UnreadNotificationsCount(ctx context.Context, staffID uuid.UUID, now time.Time) (int, error) {
	const q = `SELECT COUNT(*) FROM notifications WHERE staff_id = $1 AND NOT is_read AND expires_at > $2`

	var count int

	err := r.db.QueryRow(ctx, q, staffID, now).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error) {
	const q = `DELETE FROM notifications WHERE expires_at <= $1`

	result, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanNotification(row pgx.Row) (entity.Notification, error) {
	var n entity.Notification

	err := row.Scan(
		&n.ID,
		&n.StaffID,
		&n.JobID,
		&n.Priority,
		&n.Title,
		&n.Message,
		&n.IsRead,
		&n.ReadAt,
		&n.CreatedAt,
		&n.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Notification{}, entity.ErrNotFound
		}

		return entity.Notification{}, err
	}

	return n, nil
}
