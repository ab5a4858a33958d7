package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/staff/internal/api"
	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/livesync"
	"github.com/samandr77/microservices/staff/internal/mocks"
)

const (
	testDevice = "device-1"
	testToken  = "session-token"
)

type clientAPI struct {
	router   http.Handler
	service  *mocks.MockService
	authMock *mocks.MockAuthService
}

func newClientAPI(t *testing.T) *clientAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	c := &clientAPI{
		service:  mocks.NewMockService(ctrl),
		authMock: mocks.NewMockAuthService(ctrl),
	}

	c.router = api.NewRouter(api.NewHandler(c.service), api.NewMiddleware(c.authMock))

	return c
}

func (c *clientAPI) do(t *testing.T, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("X-Device-Id", testDevice)

	for k, v := range header {
		r.Header[k] = v
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, r)

	return w
}

// login makes the next authenticated request resolve to staff.
func (c *clientAPI) login(staff entity.StaffProfile) http.Header {
	session := entity.StaffSession{
		ID:        uuid.Must(uuid.NewV4()),
		ProfileID: staff.ID,
		DeviceID:  testDevice,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	c.authMock.EXPECT().Authenticate(gomock.Any(), testToken, testDevice).Return(session, staff, nil)

	return http.Header{"Authorization": []string{"Bearer " + testToken}}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T

	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))

	return v
}

func staffWithRole(role entity.StaffRole) entity.StaffProfile {
	return entity.StaffProfile{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     "Ana",
		Role:     role,
		IsActive: true,
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	w := c.do(t, http.MethodGet, "/api/health", nil, http.Header{"X-Request-Id": []string{"req-1"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK\n", w.Body.String())
	require.Equal(t, "req-1", w.Header().Get("X-Request-Id"))
}

func TestHandler_Profiles_DeviceFingerprint(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	profiles := []entity.StaffProfile{staffWithRole(entity.RoleCleaner)}

	r := httptest.NewRequest(http.MethodGet, "/api/profiles", nil)
	r.RemoteAddr = "10.0.0.7:51234"
	r.Header.Set("User-Agent", "staff-app/2.1")

	c.service.EXPECT().Profiles(gomock.Any(), api.DeviceFingerprint("10.0.0.7", "staff-app/2.1")).Return(profiles, nil)

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	got := decode[api.ProfilesResponse](t, w)
	require.Len(t, got.Profiles, 1)
	require.Equal(t, profiles[0].ID, got.Profiles[0].ID)
}

func TestDeviceFingerprint(t *testing.T) {
	t.Parallel()

	a := api.DeviceFingerprint("10.0.0.7", "staff-app/2.1")

	require.True(t, strings.HasPrefix(a, "fp-"))
	require.Len(t, a, len("fp-")+32)
	require.Equal(t, a, api.DeviceFingerprint("10.0.0.7", "staff-app/2.1"))
	require.NotEqual(t, a, api.DeviceFingerprint("10.0.0.8", "staff-app/2.1"))
}

func TestHandler_SelectProfile(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	id := uuid.Must(uuid.NewV4())

	c.service.EXPECT().SelectProfile(gomock.Any(), id).Return(entity.PINRouteCreate, nil)

	w := c.do(t, http.MethodPost, "/api/profiles/"+id.String()+"/select", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, entity.PINRouteCreate, decode[api.SelectProfileResponse](t, w).Route)

	w = c.do(t, http.MethodPost, "/api/profiles/not-a-uuid/select", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	inactive := uuid.Must(uuid.NewV4())
	c.service.EXPECT().SelectProfile(gomock.Any(), inactive).Return(entity.PINRoute(""), entity.ErrStaffInactive)

	w = c.do(t, http.MethodPost, "/api/profiles/"+inactive.String()+"/select", nil, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CreatePIN(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleCleaner)
	tokens := entity.SessionTokens{Token: testToken, Profile: staff}

	c.service.EXPECT().CreatePIN(gomock.Any(), testDevice, staff.ID, "1234").Return(tokens, nil)

	w := c.do(t, http.MethodPost, "/api/profiles/"+staff.ID.String()+"/pin", api.PINRequest{PIN: "1234"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, testToken, decode[entity.SessionTokens](t, w).Token)

	c.service.EXPECT().CreatePIN(gomock.Any(), testDevice, staff.ID, "12a4").
		Return(entity.SessionTokens{}, entity.ErrPINInvalidFormat)

	w = c.do(t, http.MethodPost, "/api/profiles/"+staff.ID.String()+"/pin", api.PINRequest{PIN: "12a4"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	c.service.EXPECT().CreatePIN(gomock.Any(), testDevice, staff.ID, "1234").
		Return(entity.SessionTokens{}, entity.ErrPINAlreadySet)

	w = c.do(t, http.MethodPost, "/api/profiles/"+staff.ID.String()+"/pin", api.PINRequest{PIN: "1234"}, nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_VerifyPIN(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staffID := uuid.Must(uuid.NewV4())
	path := "/api/profiles/" + staffID.String() + "/pin/verify"

	c.service.EXPECT().VerifyPIN(gomock.Any(), testDevice, staffID, "0000").
		Return(entity.SessionTokens{}, errors.Join(entity.ErrPINInvalid, errors.New("4 attempts left")))

	w := c.do(t, http.MethodPost, path, api.PINRequest{PIN: "0000"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Wrong PIN", decode[api.ResponseError](t, w).Message)

	lockedUntil := time.Date(2030, time.January, 7, 9, 45, 0, 0, time.UTC)

	c.service.EXPECT().VerifyPIN(gomock.Any(), testDevice, staffID, "0000").
		Return(entity.SessionTokens{}, &entity.LockedError{LockedUntil: lockedUntil})

	w = c.do(t, http.MethodPost, path, api.PINRequest{PIN: "0000"}, nil)
	require.Equal(t, http.StatusLocked, w.Code)
	require.True(t, lockedUntil.Equal(decode[api.LockedResponse](t, w).LockedUntil))

	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{"))
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	w := c.do(t, http.MethodGet, "/api/jobs", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	c.authMock.EXPECT().Authenticate(gomock.Any(), "stale", testDevice).
		Return(entity.StaffSession{}, entity.StaffProfile{}, entity.ErrSessionExpired)

	w = c.do(t, http.MethodGet, "/api/jobs", nil, http.Header{"Authorization": []string{"Bearer stale"}})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Session is missing or expired", decode[api.ResponseError](t, w).Message)
}

func TestHandler_Session(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleHousekeeper)

	w := c.do(t, http.MethodGet, "/api/session", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[api.SessionResponse](t, w)
	require.Equal(t, staff.ID, got.Profile.ID)
	require.Equal(t, staff.ID, got.Session.ProfileID)
	require.Equal(t, testDevice, got.Session.DeviceID)

	c.service.EXPECT().Logout(gomock.Any()).Return(nil)

	w = c.do(t, http.MethodPost, "/api/session/logout", nil, c.login(staff))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Jobs(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleCleaner)
	jobs := []entity.JobAssignment{
		{ID: uuid.Must(uuid.NewV4()), Title: "Turnover", Status: entity.JobStatusAssigned, Source: entity.JobSourcePrimary},
	}

	c.service.EXPECT().Jobs(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entity.JobAssignment, error) {
		got, err := entity.StaffFromCtx(ctx)
		require.NoError(t, err)
		require.Equal(t, staff.ID, got.ID)
		require.Equal(t, testDevice, entity.DeviceIDFromCtx(ctx))

		return jobs, nil
	})

	w := c.do(t, http.MethodGet, "/api/jobs", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[api.JobsResponse](t, w)
	require.Len(t, got.Jobs, 1)
	require.Equal(t, jobs[0].ID, got.Jobs[0].ID)
	require.False(t, got.At.IsZero())
}

func TestHandler_JobActions(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleCleaner)
	id := uuid.Must(uuid.NewV4())
	job := entity.JobAssignment{ID: id, Status: entity.JobStatusAccepted}

	c.service.EXPECT().AcceptJob(gomock.Any(), id).Return(job, nil)

	w := c.do(t, http.MethodPost, "/api/jobs/"+id.String()+"/accept", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, entity.JobStatusAccepted, decode[entity.JobAssignment](t, w).Status)

	c.service.EXPECT().StartJob(gomock.Any(), id).Return(entity.JobAssignment{}, entity.ErrJobTaken)

	w = c.do(t, http.MethodPost, "/api/jobs/"+id.String()+"/start", nil, c.login(staff))
	require.Equal(t, http.StatusConflict, w.Code)

	c.service.EXPECT().DeclineJob(gomock.Any(), id, "").Return(job, nil)

	w = c.do(t, http.MethodPost, "/api/jobs/"+id.String()+"/decline", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	c.service.EXPECT().DeclineJob(gomock.Any(), id, "sick").Return(job, nil)

	w = c.do(t, http.MethodPost, "/api/jobs/"+id.String()+"/decline", api.DeclineJobRequest{Reason: "sick"}, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	c.service.EXPECT().SetRequirement(gomock.Any(), id, "windows", true).Return(job, nil)

	w = c.do(t, http.MethodPut, "/api/jobs/"+id.String()+"/requirements/windows",
		api.SetRequirementRequest{IsCompleted: true}, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	c.service.EXPECT().CompleteJob(gomock.Any(), id).Return(entity.JobAssignment{}, errors.New("connection reset"))

	w = c.do(t, http.MethodPost, "/api/jobs/"+id.String()+"/complete", nil, c.login(staff))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Assignments_RequireAssigner(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	w := c.do(t, http.MethodPost, "/api/assignments", entity.AssignmentRequest{Title: "Fix AC"},
		c.login(staffWithRole(entity.RoleCleaner)))
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "Only managers can assign jobs", decode[api.ResponseError](t, w).Message)
}

func TestHandler_CreateAssignment(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	manager := staffWithRole(entity.RoleManager)
	req := entity.AssignmentRequest{
		StaffID:           uuid.Must(uuid.NewV4()),
		Title:             "Fix AC",
		Type:              entity.JobTypeMaintenance,
		ScheduledAt:       time.Date(2030, time.January, 7, 9, 0, 0, 0, time.UTC),
		EstimatedDuration: 60,
	}

	rejected := entity.ValidationResult{
		Errors: []entity.ValidationIssue{{Field: "scheduledAt", Code: entity.IssueScheduleConflict, Message: "overlaps"}},
	}

	c.service.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
		Return(entity.JobAssignment{}, rejected, &entity.ValidationError{Result: rejected})

	w := c.do(t, http.MethodPost, "/api/assignments", req, c.login(manager))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	got := decode[api.ValidationResponse](t, w)
	require.False(t, got.Result.IsValid)
	require.Len(t, got.Result.Errors, 1)
	require.Equal(t, entity.IssueScheduleConflict, got.Result.Errors[0].Code)

	job := entity.JobAssignment{ID: uuid.Must(uuid.NewV4()), Title: req.Title, Status: entity.JobStatusAssigned}

	c.service.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got entity.AssignmentRequest) (entity.JobAssignment, entity.ValidationResult, error) {
			require.Equal(t, req.StaffID, got.StaffID)
			require.Equal(t, req.EstimatedDuration, got.EstimatedDuration)

			return job, entity.ValidationResult{IsValid: true}, nil
		})

	w = c.do(t, http.MethodPost, "/api/assignments", req, c.login(manager))
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[api.CreateAssignmentResponse](t, w)
	require.Equal(t, job.ID, created.Job.ID)
	require.True(t, created.Validation.IsValid)

	c.service.EXPECT().ValidateAssignment(gomock.Any(), gomock.Any()).Return(rejected, nil)

	w = c.do(t, http.MethodPost, "/api/assignments/validate", req, c.login(manager))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[entity.ValidationResult](t, w).Errors, 1)
}

func TestHandler_Notifications(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleConcierge)
	list := []entity.Notification{{ID: uuid.Must(uuid.NewV4()), StaffID: staff.ID, Title: "New job assigned"}}

	c.service.EXPECT().Notifications(gomock.Any(), true, uint64(20)).Return(list, 3, nil)

	w := c.do(t, http.MethodGet, "/api/notifications?unread=true&limit=20", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[api.NotificationsResponse](t, w)
	require.Equal(t, 3, got.Unread)
	require.Len(t, got.Notifications, 1)

	w = c.do(t, http.MethodGet, "/api/notifications?limit=-1", nil, c.login(staff))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(t, http.MethodGet, "/api/notifications?unread=maybe", nil, c.login(staff))
	require.Equal(t, http.StatusBadRequest, w.Code)

	c.service.EXPECT().MarkAllNotificationsRead(gomock.Any()).Return(int64(3), nil)

	w = c.do(t, http.MethodPost, "/api/notifications/read-all", nil, c.login(staff))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(3), decode[api.MarkAllReadResponse](t, w).Updated)

	missing := uuid.Must(uuid.NewV4())
	c.service.EXPECT().MarkNotificationRead(gomock.Any(), missing).Return(entity.Notification{}, entity.ErrNotFound)

	w = c.do(t, http.MethodPost, "/api/notifications/"+missing.String()+"/read", nil, c.login(staff))
	require.Equal(t, http.StatusNotFound, w.Code)

	c.service.EXPECT().RegisterPushToken(gomock.Any(), "ExponentPushToken[x]", "ios").Return(nil)

	w = c.do(t, http.MethodPost, "/api/push-tokens",
		api.RegisterPushTokenRequest{Token: "ExponentPushToken[x]", Platform: "ios"}, c.login(staff))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Flags(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)

	c.service.EXPECT().SetFlag(gomock.Any(), testDevice, "darkMode", true).Return(map[string]bool{"darkMode": true}, nil)

	w := c.do(t, http.MethodPut, "/api/flags/darkMode", api.SetFlagRequest{Value: true}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[string]bool{"darkMode": true}, decode[api.FlagsResponse](t, w).Flags)
}

func TestHandler_LiveJobs(t *testing.T) {
	t.Parallel()

	c := newClientAPI(t)
	staff := staffWithRole(entity.RoleCleaner)
	session := entity.StaffSession{ID: uuid.Must(uuid.NewV4()), ProfileID: staff.ID, DeviceID: testDevice}
	job := entity.JobAssignment{ID: uuid.Must(uuid.NewV4()), Title: "Turnover", Status: entity.JobStatusAssigned}

	srv := httptest.NewServer(c.router)
	t.Cleanup(srv.Close)

	c.authMock.EXPECT().Authenticate(gomock.Any(), testToken, testDevice).Return(session, staff, nil)

	done := make(chan struct{})

	c.service.EXPECT().LiveJobs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sink livesync.Sink) error {
			defer close(done)

			err := sink.Publish(ctx, livesync.Update{
				Jobs:      []entity.JobAssignment{job},
				NewJobIDs: []uuid.UUID{job.ID},
				Source:    "mine",
				At:        time.Now(),
			})
			if err != nil {
				return err
			}

			<-ctx.Done()

			return nil
		})

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/jobs/live?access_token=" + testToken

	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"X-Device-Id": []string{testDevice}})
	require.NoError(t, err)

	defer resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var msg api.LiveMessage

	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "jobs", msg.Type)
	require.Equal(t, "mine", msg.Source)
	require.Len(t, msg.Jobs, 1)
	require.Equal(t, job.ID, msg.Jobs[0].ID)
	require.Equal(t, []uuid.UUID{job.ID}, msg.NewJobIDs)

	require.NoError(t, conn.Close())

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("live stream was not stopped after the client left")
	}
}
