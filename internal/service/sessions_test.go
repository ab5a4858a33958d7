package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/service"
)

const testDevice = "device-1"

func activeStaff() entity.StaffProfile {
	return entity.StaffProfile{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Ana",
		Email:    "ana@example.com",
		Role:     entity.RoleCleaner,
		IsActive: true,
	}
}

func pinHash(t *testing.T, pin string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestService_SelectProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pinErr  error
		want    entity.PINRoute
		wantErr error
	}{
		{name: "no pin yet", pinErr: fmt.Errorf("get pin: %w", entity.ErrNotFound), want: entity.PINRouteCreate},
		{name: "pin set", want: entity.PINRouteEnter},
		{name: "lookup failed", pinErr: errors.New("db down"), wantErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newTestService(t)
			staff := activeStaff()

			d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
			d.repo.EXPECT().PIN(gomock.Any(), staff.ID).Return(entity.StaffPIN{StaffID: staff.ID}, tt.pinErr)

			route, err := s.SelectProfile(context.Background(), staff.ID)
			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, route)
		})
	}
}

func TestService_SelectProfile_Inactive(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	staff.IsActive = false

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)

	_, err := s.SelectProfile(context.Background(), staff.ID)
	require.ErrorIs(t, err, entity.ErrStaffInactive)
}

func TestService_CreatePIN(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()

	var saved entity.StaffSession

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().CreatePIN(gomock.Any(), staff.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string, _ time.Time) error {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("0420")))
			return nil
		})
	d.repo.EXPECT().Profiles(gomock.Any()).Return([]entity.StaffProfile{staff}, nil)
	d.sessions.EXPECT().CacheProfiles(gomock.Any(), testDevice, gomock.Any(), testCfg.Session.ProfilesCacheTTL).Return(nil)
	d.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session entity.StaffSession, profile entity.StaffProfile, _ time.Time) error {
			saved = session
			require.True(t, profile.HasPIN)
			return nil
		})

	tokens, err := s.CreatePIN(context.Background(), testDevice, staff.ID, "0420")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.Token)
	require.Equal(t, saved, tokens.Session)
	require.Equal(t, staff.ID, tokens.Session.ProfileID)
	require.Equal(t, testDevice, tokens.Session.DeviceID)
	require.WithinDuration(t, time.Now().Add(time.Hour), tokens.ExpiresAt, time.Minute)
}

func TestService_CreatePIN_InvalidFormat(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	for _, pin := range []string{"", "123", "12345", "12a4", " 1234"} {
		_, err := s.CreatePIN(context.Background(), testDevice, uuid.Must(uuid.NewV4()), pin)
		require.ErrorIs(t, err, entity.ErrPINInvalidFormat, pin)
	}
}

func TestService_VerifyPIN_Wrong(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).Return(entity.StaffPIN{StaffID: staff.ID, PINHash: pinHash(t, "1234")}, nil)
	d.repo.EXPECT().RegisterFailedPINAttempt(gomock.Any(), staff.ID, 5, gomock.Any(), gomock.Any()).
		Return(entity.StaffPIN{StaffID: staff.ID, FailedAttempts: 2}, nil)

	_, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "9999")
	require.ErrorIs(t, err, entity.ErrPINInvalid)
	require.ErrorContains(t, err, "3 attempts left")
}

func TestService_VerifyPIN_LocksOnLimit(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	lockedUntil := time.Now().Add(15 * time.Minute)

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).
		Return(entity.StaffPIN{StaffID: staff.ID, PINHash: pinHash(t, "1234"), FailedAttempts: 4}, nil)
	d.repo.EXPECT().RegisterFailedPINAttempt(gomock.Any(), staff.ID, 5, gomock.Any(), gomock.Any()).
		Return(entity.StaffPIN{StaffID: staff.ID, LockedUntil: &lockedUntil}, nil)

	_, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "0000")

	var locked *entity.LockedError
	require.ErrorAs(t, err, &locked)
	require.Equal(t, lockedUntil, locked.LockedUntil)
}

func TestService_VerifyPIN_WhileLocked(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	lockedUntil := time.Now().Add(5 * time.Minute)

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).
		Return(entity.StaffPIN{StaffID: staff.ID, PINHash: pinHash(t, "1234"), LockedUntil: &lockedUntil}, nil)

	// the correct PIN is refused until the lock expires
	_, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "1234")

	var locked *entity.LockedError
	require.ErrorAs(t, err, &locked)
}

func TestService_VerifyPIN_NotSet(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).Return(entity.StaffPIN{}, entity.ErrNotFound)

	_, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "1234")
	require.ErrorIs(t, err, entity.ErrPINNotSet)
}

func TestService_VerifyPIN_ResetsAttempts(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).
		Return(entity.StaffPIN{StaffID: staff.ID, PINHash: pinHash(t, "1234"), FailedAttempts: 3}, nil)
	d.repo.EXPECT().ResetPINAttempts(gomock.Any(), staff.ID, gomock.Any()).Return(nil)
	d.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), staff, gomock.Any()).Return(nil)

	tokens, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "1234")
	require.NoError(t, err)
	require.Equal(t, staff, tokens.Profile)
}

// login issues a session token through VerifyPIN and returns it with the stored session.
func login(t *testing.T, s *service.Service, d testDeps, staff entity.StaffProfile) entity.SessionTokens {
	t.Helper()

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).Return(entity.StaffPIN{StaffID: staff.ID, PINHash: pinHash(t, "1234")}, nil)
	d.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), staff, gomock.Any()).Return(nil)

	tokens, err := s.VerifyPIN(context.Background(), testDevice, staff.ID, "1234")
	require.NoError(t, err)

	return tokens
}

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	tokens := login(t, s, d, staff)

	d.sessions.EXPECT().Session(gomock.Any(), testDevice, gomock.Any()).Return(tokens.Session, nil)
	d.sessions.EXPECT().CurrentProfile(gomock.Any(), testDevice).Return(staff, nil)

	session, profile, err := s.Authenticate(context.Background(), tokens.Token, testDevice)
	require.NoError(t, err)
	require.Equal(t, tokens.Session.ID, session.ID)
	require.Equal(t, staff, profile)
}

func TestService_Authenticate_Rejects(t *testing.T) {
	t.Parallel()

	t.Run("other device", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		tokens := login(t, s, d, activeStaff())

		_, _, err := s.Authenticate(context.Background(), tokens.Token, "device-2")
		require.ErrorIs(t, err, entity.ErrTokenInvalid)
	})

	t.Run("session replaced on device", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		tokens := login(t, s, d, activeStaff())

		other := tokens.Session
		other.ID = uuid.Must(uuid.NewV4())

		d.sessions.EXPECT().Session(gomock.Any(), testDevice, gomock.Any()).Return(other, nil)

		_, _, err := s.Authenticate(context.Background(), tokens.Token, testDevice)
		require.ErrorIs(t, err, entity.ErrSessionNotFound)
	})

	t.Run("logged out", func(t *testing.T) {
		t.Parallel()

		s, d := newTestService(t)
		tokens := login(t, s, d, activeStaff())

		d.sessions.EXPECT().Session(gomock.Any(), testDevice, gomock.Any()).Return(entity.StaffSession{}, entity.ErrSessionNotFound)

		_, _, err := s.Authenticate(context.Background(), tokens.Token, testDevice)
		require.ErrorIs(t, err, entity.ErrSessionNotFound)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionJwtClaims{
			SessionID: uuid.Must(uuid.NewV4()),
			DeviceID:  testDevice,
		}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, _, err = s.Authenticate(context.Background(), token, testDevice)
		require.ErrorIs(t, err, entity.ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestService(t)

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, entity.SessionJwtClaims{
			SessionID: uuid.Must(uuid.NewV4()),
			DeviceID:  testDevice,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, _, err = s.Authenticate(context.Background(), token, testDevice)
		require.ErrorIs(t, err, entity.ErrSessionExpired)
	})
}

func TestService_RefreshSession(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	session := entity.StaffSession{
		ID:        uuid.Must(uuid.NewV4()),
		ProfileID: staff.ID,
		DeviceID:  testDevice,
		ExpiresAt: time.Now().Add(time.Minute),
	}

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.repo.EXPECT().PIN(gomock.Any(), staff.ID).Return(entity.StaffPIN{StaffID: staff.ID}, nil)
	d.sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	ctx := entity.CtxWithSession(context.Background(), session)

	tokens, err := s.RefreshSession(ctx)
	require.NoError(t, err)
	require.Equal(t, session.ID, tokens.Session.ID)
	require.True(t, tokens.Profile.HasPIN)
	require.True(t, tokens.ExpiresAt.After(session.ExpiresAt))
}

func TestService_RefreshSession_Inactive(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	staff := activeStaff()
	staff.IsActive = false
	session := entity.StaffSession{ID: uuid.Must(uuid.NewV4()), ProfileID: staff.ID, DeviceID: testDevice}

	d.repo.EXPECT().Profile(gomock.Any(), staff.ID).Return(staff, nil)
	d.sessions.EXPECT().Clear(gomock.Any(), testDevice).Return(nil)

	_, err := s.RefreshSession(entity.CtxWithSession(context.Background(), session))
	require.ErrorIs(t, err, entity.ErrStaffInactive)
}

func TestService_Logout(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)
	session := entity.StaffSession{ID: uuid.Must(uuid.NewV4()), DeviceID: testDevice}

	d.sessions.EXPECT().Clear(gomock.Any(), testDevice).Return(nil)

	require.NoError(t, s.Logout(entity.CtxWithSession(context.Background(), session)))
	require.ErrorIs(t, s.Logout(context.Background()), entity.ErrUnauthenticated)
}

func TestService_SetFlag(t *testing.T) {
	t.Parallel()

	s, d := newTestService(t)

	d.sessions.EXPECT().SetFlag(gomock.Any(), testDevice, "dark_mode", true).Return(map[string]bool{"dark_mode": true}, nil)

	flags, err := s.SetFlag(context.Background(), testDevice, "dark_mode", true)
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"dark_mode": true}, flags)

	_, err = s.SetFlag(context.Background(), testDevice, "", true)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
