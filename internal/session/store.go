package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samandr77/microservices/staff/internal/entity"
)

const (
	keySession        = "session"
	keyCurrentProfile = "current_profile"
	keyProfiles       = "profiles"
	keyFlags          = "flags"
	keyJobCache       = "job_cache"
)

// logoutKeys is everything a logout removes from a device. Profiles and flags survive.
var logoutKeys = []string{keySession, keyCurrentProfile, keyJobCache}

type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

func deviceKey(deviceID, key string) string {
	return "device:" + deviceID + ":" + key
}

// SaveSession writes the session and the selected profile; both expire with the session.
func (s *Store) SaveSession(ctx context.Context, session entity.StaffSession, profile entity.StaffProfile, now time.Time) error {
	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return entity.ErrSessionExpired
	}

	err := s.setJSON(ctx, deviceKey(session.DeviceID, keySession), session, ttl)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	err = s.setJSON(ctx, deviceKey(session.DeviceID, keyCurrentProfile), profile, ttl)
	if err != nil {
		return fmt.Errorf("save current profile: %w", err)
	}

	return nil
}

// Session restores the device session. An expired record is cleared and reported as expired.
func (s *Store) Session(ctx context.Context, deviceID string, now time.Time) (entity.StaffSession, error) {
	var session entity.StaffSession

	err := s.getJSON(ctx, deviceKey(deviceID, keySession), &session)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.StaffSession{}, entity.ErrSessionNotFound
		}

		return entity.StaffSession{}, err
	}

	if session.Expired(now) {
		err = s.Clear(ctx, deviceID)
		if err != nil {
			return entity.StaffSession{}, err
		}

		return entity.StaffSession{}, entity.ErrSessionExpired
	}

	return session, nil
}

func (s *Store) CurrentProfile(ctx context.Context, deviceID string) (entity.StaffProfile, error) {
	var profile entity.StaffProfile

	err := s.getJSON(ctx, deviceKey(deviceID, keyCurrentProfile), &profile)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.StaffProfile{}, entity.ErrSessionNotFound
		}

		return entity.StaffProfile{}, err
	}

	return profile, nil
}

func (s *Store) Clear(ctx context.Context, deviceID string) error {
	keys := make([]string, 0, len(logoutKeys))
	for _, k := range logoutKeys {
		keys = append(keys, deviceKey(deviceID, k))
	}

	err := s.kv.Del(ctx, keys...)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (s *Store) CachedProfiles(ctx context.Context, deviceID string) ([]entity.StaffProfile, error) {
	var profiles []entity.StaffProfile

	err := s.getJSON(ctx, deviceKey(deviceID, keyProfiles), &profiles)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (s *Store) CacheProfiles(ctx context.Context, deviceID string, profiles []entity.StaffProfile, ttl time.Duration) error {
	return s.setJSON(ctx, deviceKey(deviceID, keyProfiles), profiles, ttl)
}

func (s *Store) CachedJobs(ctx context.Context, deviceID string) ([]entity.JobAssignment, error) {
	var jobs []entity.JobAssignment

	err := s.getJSON(ctx, deviceKey(deviceID, keyJobCache), &jobs)
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

func (s *Store) CacheJobs(ctx context.Context, deviceID string, jobs []entity.JobAssignment, ttl time.Duration) error {
	return s.setJSON(ctx, deviceKey(deviceID, keyJobCache), jobs, ttl)
}

// Flags returns the device feature flags, empty when none were set.
func (s *Store) Flags(ctx context.Context, deviceID string) (map[string]bool, error) {
	flags := make(map[string]bool)

	err := s.getJSON(ctx, deviceKey(deviceID, keyFlags), &flags)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	return flags, nil
}

func (s *Store) SetFlag(ctx context.Context, deviceID, name string, value bool) (map[string]bool, error) {
	flags, err := s.Flags(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	flags[name] = value

	err = s.setJSON(ctx, deviceKey(deviceID, keyFlags), flags, 0)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (s *Store) getJSON(ctx context.Context, key string, dest any) error {
	b, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}

	err = json.Unmarshal(b, dest)
	if err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}

	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return s.kv.Set(ctx, key, b, ttl)
}
