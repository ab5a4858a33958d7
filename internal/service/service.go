package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Profiles(ctx context.Context) ([]entity.StaffProfile, error)
	Profile(ctx context.Context, id uuid.UUID) (entity.StaffProfile, error)
	PIN(ctx context.Context, staffID uuid.UUID) (entity.StaffPIN, error)
	CreatePIN(ctx context.Context, staffID uuid.UUID, pinHash string, createdAt time.Time) error
	RegisterFailedPINAttempt(ctx context.Context, staffID uuid.UUID, limit int, lockUntil, updatedAt time.Time) (entity.StaffPIN, error)
	ResetPINAttempts(ctx context.Context, staffID uuid.UUID, updatedAt time.Time) error
	ClearExpiredPINLocks(ctx context.Context, now time.Time) (int64, error)

	Jobs(ctx context.Context, source entity.JobSource, f entity.JobFilter) ([]entity.JobAssignment, error)
	FindJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error)
	CreateJob(ctx context.Context, job entity.JobAssignment) error
	UpdateJobStatus(ctx context.Context, u entity.JobStatusUpdate) (entity.JobAssignment, error)
	SetJobRequirement(ctx context.Context, u entity.RequirementUpdate) (entity.JobAssignment, error)
	MarkOverdue(ctx context.Context, source entity.JobSource, now time.Time) ([]entity.JobAssignment, error)

	CreateNotification(ctx context.Context, n entity.Notification) error
	Notifications(ctx context.Context, f entity.NotificationFilter, now time.Time) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, staffID, id uuid.UUID, readAt time.Time) (entity.Notification, error)
	MarkAllNotificationsRead(ctx context.Context, staffID uuid.UUID, readAt time.Time) (int64, error)
	UnreadNotificationsCount(ctx context.Context, staffID uuid.UUID, now time.Time) (int, error)
	DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error)

	SavePushToken(ctx context.Context, token entity.PushToken, at time.Time) error
	PushTokens(ctx context.Context, staffID uuid.UUID) ([]entity.PushToken, error)
	DeactivatePushToken(ctx context.Context, token string, at time.Time) error
}

type SessionStore interface {
	SaveSession(ctx context.Context, session entity.StaffSession, profile entity.StaffProfile, now time.Time) error
	Session(ctx context.Context, deviceID string, now time.Time) (entity.StaffSession, error)
	CurrentProfile(ctx context.Context, deviceID string) (entity.StaffProfile, error)
	Clear(ctx context.Context, deviceID string) error
	CachedProfiles(ctx context.Context, deviceID string) ([]entity.StaffProfile, error)
	CacheProfiles(ctx context.Context, deviceID string, profiles []entity.StaffProfile, ttl time.Duration) error
	CacheJobs(ctx context.Context, deviceID string, jobs []entity.JobAssignment, ttl time.Duration) error
	Flags(ctx context.Context, deviceID string) (map[string]bool, error)
	SetFlag(ctx context.Context, deviceID, name string, value bool) (map[string]bool, error)
}

type Producer interface {
	JobChanged(ctx context.Context, event entity.JobChangedEvent)
	JobAssigned(ctx context.Context, event entity.JobAssignedEvent)
}

type PushSender interface {
	Send(ctx context.Context, msg entity.PushMessage) ([]entity.PushTicket, error)
}

type Mailer interface {
	Enabled() bool
	SendMessage(subject, message string, recipients ...string) error
}

type ChangeFeed interface {
	Subscribe() (<-chan struct{}, func())
}

type LivePublisher interface {
	PublishJobs(ctx context.Context, staffID uuid.UUID, payload any) error
}

type Service struct {
	cfg       config.Config
	repo      Repository
	sessions  SessionStore
	producer  Producer
	push      PushSender
	mailer    Mailer
	feed      ChangeFeed
	live      LivePublisher
	validator *AssignmentValidator
}

// New builds the service. live may be nil when MQTT fan-out is disabled.
func New(
	cfg config.Config,
	repo Repository,
	sessions SessionStore,
	producer Producer,
	push PushSender,
	mailer Mailer,
	feed ChangeFeed,
	live LivePublisher,
) (*Service, error) {
	validator, err := NewAssignmentValidator(repo, cfg.Validation)
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	return &Service{
		cfg:       cfg,
		repo:      repo,
		sessions:  sessions,
		producer:  producer,
		push:      push,
		mailer:    mailer,
		feed:      feed,
		live:      live,
		validator: validator,
	}, nil
}
