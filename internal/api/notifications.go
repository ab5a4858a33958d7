package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/samandr77/microservices/staff/internal/entity"
)

type NotificationsResponse struct {
	Notifications []entity.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// Notifications godoc
// @Summary      Notifications of the caller
// @Tags         notifications
// @Produce      json
// @Param        unread query bool false "Only unread"
// @Param        limit query int false "Page size, 50 by default"
// @Success      200 {object} NotificationsResponse
// @Failure      400 {object} ResponseError
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	unreadOnly, err := queryBool(r, "unread")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid unread parameter")
		return
	}

	var limit uint64

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			SendErr(ctx, w, http.StatusBadRequest, err, "Invalid limit parameter")
			return
		}
	}

	notifications, unread, err := h.s.Notifications(ctx, unreadOnly, limit)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to load notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, NotificationsResponse{Notifications: notifications, Unread: unread})
}

// MarkNotificationRead godoc
// @Summary      Mark a notification read
// @Description  Repeated calls keep the first read time
// @Tags         notifications
// @Produce      json
// @Param        id path string true "Notification id"
// @Success      200 {object} entity.Notification
// @Failure      404 {object} ResponseError
// @Router       /notifications/{id}/read [post]
// @Security     BearerAuth
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuidParam(r, "id")
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid notification id")
		return
	}

	n, err := h.s.MarkNotificationRead(ctx, id)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to mark notification read")
		return
	}

	SendJSON(ctx, w, http.StatusOK, n)
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// MarkAllNotificationsRead godoc
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200 {object} MarkAllReadResponse
// @Router       /notifications/read-all [post]
// @Security     BearerAuth
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.s.MarkAllNotificationsRead(ctx)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to mark notifications read")
		return
	}

	SendJSON(ctx, w, http.StatusOK, MarkAllReadResponse{Updated: n})
}

type RegisterPushTokenRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

// RegisterPushToken godoc
// @Summary      Register a device push token
// @Tags         notifications
// @Accept       json
// @Param        request body RegisterPushTokenRequest true "Push token"
// @Success      204
// @Failure      400 {object} ResponseError
// @Router       /push-tokens [post]
// @Security     BearerAuth
func (h *Handler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterPushTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	err = h.s.RegisterPushToken(ctx, req.Token, req.Platform)
	if err != nil {
		SendServiceErr(ctx, w, err, "Failed to register push token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
