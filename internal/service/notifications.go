package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

const (
	defaultNotificationsLimit = 50
	maxNotificationsLimit     = 200
	pushChannelJobs           = "jobs"
)

func (s *Service) Notifications(ctx context.Context, unreadOnly bool, limit uint64) ([]entity.Notification, int, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if limit == 0 {
		limit = defaultNotificationsLimit
	}

	limit = min(limit, maxNotificationsLimit)
	now := time.Now()

	notifications, err := s.repo.Notifications(ctx, entity.NotificationFilter{
		StaffID:    staff.ID,
		UnreadOnly: unreadOnly,
		Limit:      limit,
	}, now)
	if err != nil {
		return nil, 0, fmt.Errorf("get notifications: %w", err)
	}

	unread, err := s.repo.UnreadNotificationsCount(ctx, staff.ID, now)
	if err != nil {
		return nil, 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return notifications, unread, nil
}

// MarkNotificationRead is idempotent: a second call keeps the first read time.
func (s *Service) MarkNotificationRead(ctx context.Context, id uuid.UUID) (entity.Notification, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.Notification{}, err
	}

	n, err := s.repo.MarkNotificationRead(ctx, staff.ID, id, time.Now())
	if err != nil {
		return entity.Notification{}, fmt.Errorf("mark notification %s read: %w", id, err)
	}

	return n, nil
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.MarkAllNotificationsRead(ctx, staff.ID, time.Now())
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return n, nil
}

func (s *Service) RegisterPushToken(ctx context.Context, token, platform string) error {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return err
	}

	token = strings.TrimSpace(token)
	if !entity.IsPushToken(token) {
		return fmt.Errorf("%w: malformed push token", entity.ErrInvalidArgument)
	}

	err = s.repo.SavePushToken(ctx, entity.PushToken{
		StaffID:  staff.ID,
		Token:    token,
		Platform: strings.ToLower(strings.TrimSpace(platform)),
		Source:   entity.PushTokenSourceTokens,
	}, time.Now())
	if err != nil {
		return fmt.Errorf("save push token: %w", err)
	}

	return nil
}

// PurgeNotifications is the expiry job for notifications.
func (s *Service) PurgeNotifications(ctx context.Context) error {
	n, err := s.repo.DeleteExpiredNotifications(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("delete expired notifications: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired notifications deleted", "count", n)
	}

	return nil
}

// HandleJobAssigned records a notification for the assignee and pushes it to their devices.
func (s *Service) HandleJobAssigned(ctx context.Context, event entity.JobAssignedEvent) error {
	now := time.Now()
	jobID := event.JobID

	title := "New job assigned"
	if event.Priority == entity.PriorityUrgent {
		title = "Urgent job assigned"
	}

	message := fmt.Sprintf("%s at %s", event.Title, event.ScheduledAt.UTC().Format("Jan 2 15:04 MST"))
	if event.Property != "" {
		message = fmt.Sprintf("%s, %s", message, event.Property)
	}

	n := entity.Notification{
		ID:        uuid.Must(uuid.NewV4()),
		StaffID:   event.StaffID,
		JobID:     &jobID,
		Priority:  event.Priority,
		Title:     title,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Jobs.NotificationTTL),
	}

	err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return s.NotifyStaff(ctx, event.StaffID, entity.PushMessage{
		Title:     title,
		Body:      message,
		Sound:     "default",
		Priority:  entity.PushPriority(event.Priority),
		ChannelID: pushChannelJobs,
		Data: map[string]any{
			"type":           string(entity.JobEventAssigned),
			"jobId":          jobID.String(),
			"notificationId": n.ID.String(),
		},
	})
}

// NotifyStaff pushes msg to every known device of a staff member, falling back to
// e-mail when none is registered.
func (s *Service) NotifyStaff(ctx context.Context, staffID uuid.UUID, msg entity.PushMessage) error {
	tokens, err := s.repo.PushTokens(ctx, staffID)
	if err != nil {
		return fmt.Errorf("get push tokens: %w", err)
	}

	msg.To = uniqueTokens(tokens)

	if len(msg.To) == 0 {
		return s.mailFallback(ctx, staffID, msg)
	}

	tickets, err := s.push.Send(ctx, msg)
	if err != nil {
		slog.WarnContext(ctx, "push send partially failed", "staff_id", staffID, "error", err)
	}

	failed := 0

	for _, t := range tickets {
		if t.Status != entity.PushTicketError {
			continue
		}

		failed++

		if t.Details.Error == entity.PushErrorDeviceNotRegistered {
			err := s.repo.DeactivatePushToken(ctx, t.Token, time.Now())
			if err != nil {
				slog.WarnContext(ctx, "deactivate push token", "error", err)
			}
		}
	}

	slog.InfoContext(ctx, "push sent", "staff_id", staffID, "tokens", len(msg.To), "tickets", len(tickets), "failed", failed)

	if len(tickets) == 0 && err != nil {
		return fmt.Errorf("send push: %w", err)
	}

	return nil
}

func (s *Service) mailFallback(ctx context.Context, staffID uuid.UUID, msg entity.PushMessage) error {
	profile, err := s.repo.Profile(ctx, staffID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	if profile.Email == "" || !s.mailer.Enabled() {
		slog.InfoContext(ctx, "no push tokens and no mail fallback", "staff_id", staffID)
		return nil
	}

	err = s.mailer.SendMessage(msg.Title, msg.Body, profile.Email)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.InfoContext(ctx, "notification mailed", "staff_id", staffID)

	return nil
}

func uniqueTokens(tokens []entity.PushToken) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, t := range tokens {
		if !entity.IsPushToken(t.Token) {
			continue
		}

		if _, ok := seen[t.Token]; ok {
			continue
		}

		seen[t.Token] = struct{}{}
		out = append(out, t.Token)
	}

	return out
}
