package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/pkg/postgres"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	require.NoError(t, postgres.UpMigrations(dsn))

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func seedStaff(t *testing.T, db *pgxpool.Pool, role entity.StaffRole, active bool) entity.StaffProfile {
	t.Helper()

	id := uuid.Must(uuid.NewV4())
	p := entity.StaffProfile{
		ID:         id,
		Name:       "Staff " + id.String(),
		Email:      id.String() + "@example.com",
		Role:       role,
		Department: "housekeeping",
		IsActive:   active,
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO staff_accounts (id, name, email, role, department, is_active) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Email, p.Role, p.Department, p.IsActive,
	)
	require.NoError(t, err)

	return p
}

func newJob(staffID *uuid.UUID, source entity.JobSource, scheduledAt time.Time) entity.JobAssignment {
	now := time.Now().UTC().Truncate(time.Millisecond)
	status := entity.JobStatusPending

	if staffID != nil {
		status = entity.JobStatusAssigned
	}

	return entity.JobAssignment{
		ID:                uuid.Must(uuid.NewV4()),
		Title:             "Turnover clean",
		Type:              entity.JobTypeCleaning,
		Status:            status,
		Priority:          entity.PriorityMedium,
		PropertyID:        "prop-" + uuid.Must(uuid.NewV4()).String(),
		ScheduledAt:       scheduledAt.UTC().Truncate(time.Millisecond),
		EstimatedDuration: 60,
		AssignedStaffID:   staffID,
		Requirements: []entity.JobRequirement{
			{ID: "r1", Description: "Change linen"},
			{ID: "r2", Description: "Restock minibar"},
		},
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
