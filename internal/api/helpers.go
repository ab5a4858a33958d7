package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/staff/internal/entity"
)

const errInternalText = "Internal error"

type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type LockedResponse struct {
	Message     string    `json:"message"`
	Error       string    `json:"error"`
	LockedUntil time.Time `json:"lockedUntil"`
}

type ValidationResponse struct {
	Message string                  `json:"message"`
	Result  entity.ValidationResult `json:"result"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "api error", "error", err, "code", code)
	} else {
		slog.WarnContext(ctx, "api error", "error", err, "code", code)
	}

	SendJSON(ctx, w, code, ResponseError{Message: msg, Error: err.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendServiceErr maps a service error onto a status code. Errors without a known
// sentinel become 500 with the fallback message.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	var (
		locked     *entity.LockedError
		validation *entity.ValidationError
	)

	switch {
	case errors.As(err, &locked):
		slog.WarnContext(ctx, "api error", "error", err, "code", http.StatusLocked)
		SendJSON(ctx, w, http.StatusLocked, LockedResponse{
			Message:     "Too many wrong PIN entries, try again later",
			Error:       err.Error(),
			LockedUntil: locked.LockedUntil,
		})
	case errors.As(err, &validation):
		slog.WarnContext(ctx, "api error", "error", err, "code", http.StatusUnprocessableEntity)
		SendJSON(ctx, w, http.StatusUnprocessableEntity, ValidationResponse{
			Message: "Assignment is not valid",
			Result:  validation.Result,
		})
	case errors.Is(err, entity.ErrUnauthenticated),
		errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrSessionExpired),
		errors.Is(err, entity.ErrTokenInvalid):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Session is missing or expired")
	case errors.Is(err, entity.ErrPINInvalid):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Wrong PIN")
	case errors.Is(err, entity.ErrForbidden), errors.Is(err, entity.ErrStaffInactive):
		SendErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
	case errors.Is(err, entity.ErrNotFound), errors.Is(err, entity.ErrStaffNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrJobTaken),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrPINAlreadySet),
		errors.Is(err, entity.ErrPINNotSet),
		errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Conflict with current state")
	case errors.Is(err, entity.ErrInvalidArgument), errors.Is(err, entity.ErrPINInvalidFormat):
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, fallback)
	}
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errors.Join(entity.ErrInvalidArgument, err)
	}

	return id, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return false, nil
	}

	return strconv.ParseBool(v)
}
