package repository

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

func (r *Repository) SavePushToken(ctx context.Context, token entity.PushToken, at time.Time) error {
	const q = `
	INSERT INTO push_tokens (staff_id, token, platform, is_active, created_at, updated_at)
	VALUES ($1, $2, $3, TRUE, $4, $4)
	ON CONFLICT (staff_id, token) DO UPDATE SET
		platform = EXCLUDED.platform,
		is_active = TRUE,
		updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, q, token.StaffID, token.Token, token.Platform, at)

	return err
}

// PushTokens returns the active tokens of a staff member from the tokens table
// followed by the legacy column on the staff account. Duplicates are not removed.
func (r *Repository) PushTokens(ctx context.Context, staffID uuid.UUID) ([]entity.PushToken, error) {
	const q = `
	SELECT staff_id, token, platform, 'push_tokens' AS source
	FROM push_tokens
	WHERE staff_id = $1 AND is_active
	UNION ALL
	SELECT id, expo_push_token, '', 'staff_accounts'
	FROM staff_accounts
	WHERE id = $1 AND COALESCE(expo_push_token, '') <> ''
	ORDER BY source
	`

	rows, err := r.db.Query(ctx, q, staffID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var tokens []entity.PushToken

	for rows.Next() {
		var t entity.PushToken

		err = rows.Scan(&t.StaffID, &t.Token, &t.Platform, &t.Source)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, t)
	}

	return tokens, rows.Err()
}

// DeactivatePushToken disables token wherever it is stored.
func (r *Repository) DeactivatePushToken(ctx context.Context, token string, at time.Time) error {
	const (
		qTokens = `UPDATE push_tokens SET is_active = FALSE, updated_at = $2 WHERE token = $1`
		qLegacy = `UPDATE staff_accounts SET expo_push_token = NULL WHERE expo_push_token = $1`
	)

	_, err := r.db.Exec(ctx, qTokens, token, at)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, qLegacy, token)

	return err
}
