package repository

const (
	selectStaff = `SELECT
		s.id,
		s.name,
		s.email,
		s.role,
		s.department,
		s.is_active,
		s.avatar_url,
		p.staff_id IS NOT NULL AS has_pin
	FROM staff_accounts s
	LEFT JOIN staff_pins p ON p.staff_id = s.id`

	selectPIN = `SELECT
		staff_id,
		pin_hash,
		failed_attempts,
		locked_until,
		updated_at
	FROM staff_pins`

	returningPIN = ` RETURNING staff_id, pin_hash, failed_attempts, locked_until, updated_at`

	selectNotification = `SELECT
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
	FROM notifications`

	returningNotification = ` RETURNING id, staff_id, job_id, priority, title, message, is_read, read_at, created_at, expires_at`
)

var jobColumns = []string{
	"id",
	"title",
	"description",
	"type",
	"status",
	"priority",
	"property_id",
	"property_name",
	"location",
	"scheduled_at",
	"estimated_duration",
	"assigned_staff_id",
	"required_role",
	"requirements",
	"decline_reason",
	"accepted_at",
	"started_at",
	"completed_at",
	"created_at",
	"updated_at",
}
