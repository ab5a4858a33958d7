package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

// Profiles returns active staff members ordered by name.
func (r *Repository) Profiles(ctx context.Context) ([]entity.StaffProfile, error) {
	q := selectStaff + " WHERE s.is_active ORDER BY s.name, s.id"

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	profiles := make([]entity.StaffProfile, 0)

	for rows.Next() {
		p, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

func (r *Repository) Profile(ctx context.Context, id uuid.UUID) (entity.StaffProfile, error) {
	q := selectStaff + " WHERE s.id = $1"

	p, err := scanStaff(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StaffProfile{}, entity.ErrStaffNotFound
		}

		return entity.StaffProfile{}, err
	}

	return p, nil
}

func (r *Repository) PIN(ctx context.Context, staffID uuid.UUID) (entity.StaffPIN, error) {
	q := selectPIN + " WHERE staff_id = $1"
	return scanPIN(r.db.QueryRow(ctx, q, staffID))
}

func (r *Repository) CreatePIN(ctx context.Context, staffID uuid.UUID, pinHash string, createdAt time.Time) error {
	const q = `
	INSERT INTO staff_pins (staff_id, pin_hash, failed_attempts, updated_at)
	VALUES ($1, $2, 0, $3)
	ON CONFLICT (staff_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, q, staffID, pinHash, createdAt)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrPINAlreadySet
	}

	return nil
}

// RegisterFailedPINAttempt counts a wrong PIN. Reaching limit locks the profile until
// lockUntil and starts the counter over.
func (r *Repository) RegisterFailedPINAttempt(
	ctx context.Context,
	staffID uuid.UUID,
	limit int,
	lockUntil time.Time,
	updatedAt time.Time,
) (entity.StaffPIN, error) {
	q := `
	UPDATE staff_pins SET
		failed_attempts = CASE WHEN failed_attempts + 1 >= $2 THEN 0 ELSE failed_attempts + 1 END,
		locked_until = CASE WHEN failed_attempts + 1 >= $2 THEN $3 ELSE locked_until END,
		updated_at = $4
	WHERE staff_id = $1` + returningPIN

	return scanPIN(r.db.QueryRow(ctx, q, staffID, limit, lockUntil, updatedAt))
}

func (r *Repository) ResetPINAttempts(ctx context.Context, staffID uuid.UUID, updatedAt time.Time) error {
	const q = `UPDATE staff_pins SET failed_attempts = 0, locked_until = NULL, updated_at = $2 WHERE staff_id = $1`

	result, err := r.db.Exec(ctx, q, staffID, updatedAt)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) ClearExpiredPINLocks(ctx context.Context, now time.Time) (int64, error) {
	const q = `UPDATE staff_pins SET locked_until = NULL, updated_at = $1 WHERE locked_until IS NOT NULL AND locked_until <= $1`

	result, err := r.db.Exec(ctx, q, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}

func scanStaff(row pgx.Row) (p entity.StaffProfile, err error) {
	err = row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Role,
		&p.Department,
		&p.IsActive,
		&p.AvatarURL,
		&p.HasPIN,
	)

	return p, err
}

func scanPIN(row pgx.Row) (entity.StaffPIN, error) {
	var p entity.StaffPIN

	err := row.Scan(
		&p.StaffID,
		&p.PINHash,
		&p.FailedAttempts,
		&p.LockedUntil,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StaffPIN{}, entity.ErrNotFound
		}

		return entity.StaffPIN{}, err
	}

	return p, nil
}
