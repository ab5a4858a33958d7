package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/staff/internal/entity"
)

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

const maxFlagNameLen = 64

// Profiles lists the profiles a device can switch between, served from the device
// cache when it is warm.
func (s *Service) Profiles(ctx context.Context, deviceID string) ([]entity.StaffProfile, error) {
	cached, err := s.sessions.CachedProfiles(ctx, deviceID)
	if err == nil {
		return cached, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		slog.WarnContext(ctx, "read cached profiles", "error", err)
	}

	return s.reloadProfiles(ctx, deviceID)
}

func (s *Service) reloadProfiles(ctx context.Context, deviceID string) ([]entity.StaffProfile, error) {
	profiles, err := s.repo.Profiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profiles: %w", err)
	}

	err = s.sessions.CacheProfiles(ctx, deviceID, profiles, s.cfg.Session.ProfilesCacheTTL)
	if err != nil {
		slog.WarnContext(ctx, "cache profiles", "error", err)
	}

	return profiles, nil
}

func (s *Service) activeProfile(ctx context.Context, staffID uuid.UUID) (entity.StaffProfile, error) {
	profile, err := s.repo.Profile(ctx, staffID)
	if err != nil {
		return entity.StaffProfile{}, fmt.Errorf("get profile %s: %w", staffID, err)
	}

	if !profile.IsActive {
		return entity.StaffProfile{}, entity.ErrStaffInactive
	}

	return profile, nil
}

// SelectProfile tells the client which PIN screen comes next for the chosen profile.
func (s *Service) SelectProfile(ctx context.Context, staffID uuid.UUID) (entity.PINRoute, error) {
	_, err := s.activeProfile(ctx, staffID)
	if err != nil {
		return "", err
	}

	_, err = s.repo.PIN(ctx, staffID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.PINRouteCreate, nil
		}

		return "", fmt.Errorf("get pin: %w", err)
	}

	return entity.PINRouteEnter, nil
}

func (s *Service) CreatePIN(ctx context.Context, deviceID string, staffID uuid.UUID, pin string) (entity.SessionTokens, error) {
	if !pinPattern.MatchString(pin) {
		return entity.SessionTokens{}, entity.ErrPINInvalidFormat
	}

	profile, err := s.activeProfile(ctx, staffID)
	if err != nil {
		return entity.SessionTokens{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return entity.SessionTokens{}, fmt.Errorf("hash pin: %w", err)
	}

	err = s.repo.CreatePIN(ctx, staffID, string(hash), time.Now())
	if err != nil {
		return entity.SessionTokens{}, fmt.Errorf("save pin: %w", err)
	}

	profile.HasPIN = true

	_, err = s.reloadProfiles(ctx, deviceID)
	if err != nil {
		slog.WarnContext(ctx, "reload profiles", "error", err)
	}

	slog.InfoContext(ctx, "pin created", "staff_id", staffID)

	return s.startSession(ctx, deviceID, profile)
}

func (s *Service) VerifyPIN(ctx context.Context, deviceID string, staffID uuid.UUID, pin string) (entity.SessionTokens, error) {
	if !pinPattern.MatchString(pin) {
		return entity.SessionTokens{}, entity.ErrPINInvalidFormat
	}

	profile, err := s.activeProfile(ctx, staffID)
	if err != nil {
		return entity.SessionTokens{}, err
	}

	stored, err := s.repo.PIN(ctx, staffID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.SessionTokens{}, entity.ErrPINNotSet
		}

		return entity.SessionTokens{}, fmt.Errorf("get pin: %w", err)
	}

	now := time.Now()

	if stored.IsLocked(now) {
		return entity.SessionTokens{}, &entity.LockedError{LockedUntil: *stored.LockedUntil}
	}

	err = bcrypt.CompareHashAndPassword([]byte(stored.PINHash), []byte(pin))
	if err != nil {
		return entity.SessionTokens{}, s.failPIN(ctx, staffID, now)
	}

	if stored.FailedAttempts > 0 || stored.LockedUntil != nil {
		err = s.repo.ResetPINAttempts(ctx, staffID, now)
		if err != nil {
			return entity.SessionTokens{}, fmt.Errorf("reset pin attempts: %w", err)
		}
	}

	return s.startSession(ctx, deviceID, profile)
}

func (s *Service) failPIN(ctx context.Context, staffID uuid.UUID, now time.Time) error {
	limit := s.cfg.Session.PINAttemptLimit
	lockUntil := now.Add(s.cfg.Session.PINLockTime)

	stored, err := s.repo.RegisterFailedPINAttempt(ctx, staffID, limit, lockUntil, now)
	if err != nil {
		return fmt.Errorf("register failed pin attempt: %w", err)
	}

	if stored.IsLocked(now) {
		slog.WarnContext(ctx, "profile locked", "staff_id", staffID, "locked_until", stored.LockedUntil)
		return &entity.LockedError{LockedUntil: *stored.LockedUntil}
	}

	return fmt.Errorf("%w: %d attempts left", entity.ErrPINInvalid, limit-stored.FailedAttempts)
}

func (s *Service) startSession(ctx context.Context, deviceID string, profile entity.StaffProfile) (entity.SessionTokens, error) {
	now := time.Now()

	session := entity.StaffSession{
		ID:          uuid.Must(uuid.NewV4()),
		ProfileID:   profile.ID,
		DeviceID:    deviceID,
		CreatedAt:   now,
		RefreshedAt: now,
		ExpiresAt:   now.Add(s.cfg.Session.TTL),
	}

	return s.saveSession(ctx, session, profile, now)
}

func (s *Service) saveSession(
	ctx context.Context,
	session entity.StaffSession,
	profile entity.StaffProfile,
	now time.Time,
) (entity.SessionTokens, error) {
	err := s.sessions.SaveSession(ctx, session, profile, now)
	if err != nil {
		return entity.SessionTokens{}, fmt.Errorf("save session: %w", err)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionJwtClaims{
		SessionID: session.ID,
		StaffID:   profile.ID,
		DeviceID:  session.DeviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}).SignedString([]byte(s.cfg.Session.Secret))
	if err != nil {
		return entity.SessionTokens{}, fmt.Errorf("sign session token: %w", err)
	}

	return entity.SessionTokens{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Session:   session,
		Profile:   profile,
	}, nil
}

// Authenticate accepts a token only while the session it names is still the current
// session of the device it was issued to.
func (s *Service) Authenticate(ctx context.Context, token, deviceID string) (entity.StaffSession, entity.StaffProfile, error) {
	var claims entity.SessionJwtClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(s.cfg.Session.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.StaffSession{}, entity.StaffProfile{}, entity.ErrSessionExpired
		}

		return entity.StaffSession{}, entity.StaffProfile{}, fmt.Errorf("%w: %w", entity.ErrTokenInvalid, err)
	}

	if !parsed.Valid || claims.DeviceID != deviceID {
		return entity.StaffSession{}, entity.StaffProfile{}, entity.ErrTokenInvalid
	}

	session, err := s.sessions.Session(ctx, deviceID, time.Now())
	if err != nil {
		return entity.StaffSession{}, entity.StaffProfile{}, err
	}

	if session.ID != claims.SessionID {
		return entity.StaffSession{}, entity.StaffProfile{}, entity.ErrSessionNotFound
	}

	profile, err := s.sessions.CurrentProfile(ctx, deviceID)
	if err != nil {
		return entity.StaffSession{}, entity.StaffProfile{}, err
	}

	return session, profile, nil
}

// RefreshSession extends the caller's session by the configured TTL and reissues its token.
func (s *Service) RefreshSession(ctx context.Context) (entity.SessionTokens, error) {
	session, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return entity.SessionTokens{}, err
	}

	profile, err := s.repo.Profile(ctx, session.ProfileID)
	if err != nil {
		return entity.SessionTokens{}, fmt.Errorf("get profile: %w", err)
	}

	if !profile.IsActive {
		err = s.sessions.Clear(ctx, session.DeviceID)
		if err != nil {
			slog.WarnContext(ctx, "clear session of inactive staff", "error", err)
		}

		return entity.SessionTokens{}, entity.ErrStaffInactive
	}

	_, err = s.repo.PIN(ctx, profile.ID)
	profile.HasPIN = err == nil

	now := time.Now()
	session.RefreshedAt = now
	session.ExpiresAt = now.Add(s.cfg.Session.TTL)

	return s.saveSession(ctx, session, profile, now)
}

func (s *Service) Logout(ctx context.Context) error {
	session, err := entity.SessionFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.sessions.Clear(ctx, session.DeviceID)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "logged out", "session_id", session.ID)

	return nil
}

func (s *Service) Flags(ctx context.Context, deviceID string) (map[string]bool, error) {
	return s.sessions.Flags(ctx, deviceID)
}

func (s *Service) SetFlag(ctx context.Context, deviceID, name string, value bool) (map[string]bool, error) {
	if name == "" || len(name) > maxFlagNameLen {
		return nil, fmt.Errorf("%w: flag name must be 1-%d characters", entity.ErrInvalidArgument, maxFlagNameLen)
	}

	return s.sessions.SetFlag(ctx, deviceID, name, value)
}

// ClearExpiredPINLocks is the lock cleanup job.
func (s *Service) ClearExpiredPINLocks(ctx context.Context) error {
	n, err := s.repo.ClearExpiredPINLocks(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("clear expired pin locks: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "pin locks cleared", "count", n)
	}

	return nil
}
