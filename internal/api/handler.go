package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/gorilla/websocket"

	"github.com/samandr77/microservices/staff/internal/entity"
	"github.com/samandr77/microservices/staff/internal/livesync"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	Profiles(ctx context.Context, deviceID string) ([]entity.StaffProfile, error)
	SelectProfile(ctx context.Context, staffID uuid.UUID) (entity.PINRoute, error)
	CreatePIN(ctx context.Context, deviceID string, staffID uuid.UUID, pin string) (entity.SessionTokens, error)
	VerifyPIN(ctx context.Context, deviceID string, staffID uuid.UUID, pin string) (entity.SessionTokens, error)
	RefreshSession(ctx context.Context) (entity.SessionTokens, error)
	Logout(ctx context.Context) error
	Flags(ctx context.Context, deviceID string) (map[string]bool, error)
	SetFlag(ctx context.Context, deviceID, name string, value bool) (map[string]bool, error)

	Jobs(ctx context.Context) ([]entity.JobAssignment, error)
	LiveJobs(ctx context.Context, sink livesync.Sink) error
	AcceptJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error)
	DeclineJob(ctx context.Context, id uuid.UUID, reason string) (entity.JobAssignment, error)
	StartJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error)
	CompleteJob(ctx context.Context, id uuid.UUID) (entity.JobAssignment, error)
	SetRequirement(ctx context.Context, jobID uuid.UUID, reqID string, completed bool) (entity.JobAssignment, error)
	ValidateAssignment(ctx context.Context, req entity.AssignmentRequest) (entity.ValidationResult, error)
	CreateAssignment(ctx context.Context, req entity.AssignmentRequest) (entity.JobAssignment, entity.ValidationResult, error)

	Notifications(ctx context.Context, unreadOnly bool, limit uint64) ([]entity.Notification, int, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) (entity.Notification, error)
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	RegisterPushToken(ctx context.Context, token, platform string) error
}

// @title Staff API
// @version 1.0
// @description Staff app backend: profile switching with PIN sessions, live job lists, assignments and notifications.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s        Service
	upgrader websocket.Upgrader
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the mobile app does not send a browser origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

type ProfilesResponse struct {
	Profiles []entity.StaffProfile `json:"profiles"`
}

// Profiles godoc
// @Summary      Profiles available on this device
// @Tags         profiles
// @Produce      json
// @Param        X-Device-Id header string false "Device id"
// @Success      200 {object} ProfilesResponse
// @Failure      500 {object} ResponseError
// @Router       /profiles [get]
func (h *Handler) Profiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profiles, err := h.s.Profiles(ctx, entity.DeviceIDFromCtx(ctx))
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to load profiles")
		return
	}

	SendJSON(ctx, w, http.StatusOK, ProfilesResponse{Profiles: profiles})
}

type SelectProfileResponse struct {
	Route entity.PINRoute `json:"route"`
}

// SelectProfile godoc
// @Summary      Select a profile
// @Description  Returns the PIN screen to show next: create_pin or enter_pin
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Staff id"
// @Success      200 {object} SelectProfileResponse
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError "Staff inactive"
// @Failure      404 {object} ResponseError
// @Router       /profiles/{id}/select [post]
func (h *Handler) SelectProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid staff id")
		return
	}

	route, err := h.s.SelectProfile(ctx, staffID)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to select profile")
		return
	}

	SendJSON(ctx, w, http.StatusOK, SelectProfileResponse{Route: route})
}

type PINRequest struct {
	PIN string `json:"pin"`
}

// CreatePIN godoc
// @Summary      Create a PIN and start a session
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Staff id"
// @Param        request body PINRequest true "Four digit PIN"
// @Success      201 {object} entity.SessionTokens
// @Failure      400 {object} ResponseError
// @Failure      409 {object} ResponseError "PIN already set"
// @Router       /profiles/{id}/pin [post]
func (h *Handler) CreatePIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid staff id")
		return
	}

	var req PINRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tokens, err := h.s.CreatePIN(ctx, entity.DeviceIDFromCtx(ctx), staffID, req.PIN)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to create PIN")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, tokens)
}

// VerifyPIN godoc
// @Summary      Enter a PIN and start a session
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Staff id"
// @Param        request body PINRequest true "Four digit PIN"
// @Success      200 {object} entity.SessionTokens
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError "Wrong PIN"
// @Failure      423 {object} LockedResponse "Profile locked"
// @Router       /profiles/{id}/pin/verify [post]
func (h *Handler) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid staff id")
		return
	}

	var req PINRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	tokens, err := h.s.VerifyPIN(ctx, entity.DeviceIDFromCtx(ctx), staffID, req.PIN)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to verify PIN")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokens)
}

type SessionResponse struct {
	Session entity.StaffSession `json:"session"`
	Profile entity.StaffProfile `json:"profile"`
}

// Session godoc
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200 {object} SessionResponse
// @Failure      401 {object} ResponseError
// @Router       /session [get]
// @Security     BearerAuth
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, err := entity.SessionFromCtx(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, errInternalText)
		return
	}

	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, SessionResponse{Session: session, Profile: staff})
}

// RefreshSession godoc
// @Summary      Extend the current session
// @Tags         session
// @Produce      json
// @Success      200 {object} entity.SessionTokens
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError "Staff inactive"
// @Router       /session/refresh [post]
// @Security     BearerAuth
func (h *Handler) RefreshSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tokens, err := h.s.RefreshSession(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to refresh session")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tokens)
}

// Logout godoc
// @Summary      End the current session on this device
// @Tags         session
// @Success      204
// @Failure      401 {object} ResponseError
// @Router       /session/logout [post]
// @Security     BearerAuth
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.Logout(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to log out")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type FlagsResponse struct {
	Flags map[string]bool `json:"flags"`
}

type SetFlagRequest struct {
	Value bool `json:"value"`
}

// Flags godoc
// @Summary      Feature flags of this device
// @Tags         flags
// @Produce      json
// @Success      200 {object} FlagsResponse
// @Router       /flags [get]
func (h *Handler) Flags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	flags, err := h.s.Flags(ctx, entity.DeviceIDFromCtx(ctx))
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to load flags")
		return
	}

	SendJSON(ctx, w, http.StatusOK, FlagsResponse{Flags: flags})
}

// SetFlag godoc
// @Summary      Set a feature flag of this device
// @Tags         flags
// @Accept       json
// @Produce      json
// @Param        name path string true "Flag name"
// @Param        request body SetFlagRequest true "Flag value"
// @Success      200 {object} FlagsResponse
// @Failure      400 {object} ResponseError
// @Router       /flags/{name} [put]
func (h *Handler) SetFlag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetFlagRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	flags, err := h.s.SetFlag(ctx, entity.DeviceIDFromCtx(ctx), chi.URLParam(r, "name"), req.Value)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to set flag")
		return
	}

	SendJSON(ctx, w, http.StatusOK, FlagsResponse{Flags: flags})
}

type JobsResponse struct {
	Jobs []entity.JobAssignment `json:"jobs"`
	At   time.Time              `json:"at"`
}
