package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Notification struct {
	ID        uuid.UUID   `json:"id"`
	StaffID   uuid.UUID   `json:"staffId"`
	JobID     *uuid.UUID  `json:"jobId,omitempty"`
	Priority  JobPriority `json:"priority"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	IsRead    bool        `json:"isRead"`
	ReadAt    *time.Time  `json:"readAt,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type NotificationFilter struct {
	StaffID    uuid.UUID
	UnreadOnly bool
	Limit      uint64
}

type PushTokenSource string

const (
	PushTokenSourceTokens PushTokenSource = "push_tokens"
	PushTokenSourceLegacy PushTokenSource = "staff_accounts"
)

type PushToken struct {
	StaffID  uuid.UUID       `json:"staffId"`
	Token    string          `json:"token"`
	Platform string          `json:"platform,omitempty"`
	Source   PushTokenSource `json:"-"`
}

// IsPushToken reports whether token looks like a gateway-issued device token.
func IsPushToken(token string) bool {
	return (strings.HasPrefix(token, "ExponentPushToken[") || strings.HasPrefix(token, "ExpoPushToken[")) &&
		strings.HasSuffix(token, "]")
}

type PushMessage struct {
	To        []string       `json:"to"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Sound     string         `json:"sound,omitempty"`
	Priority  string         `json:"priority,omitempty"`
	ChannelID string         `json:"channelId,omitempty"`
}

type PushTicketStatus string

const (
	PushTicketOK    PushTicketStatus = "ok"
	PushTicketError PushTicketStatus = "error"
)

const PushErrorDeviceNotRegistered = "DeviceNotRegistered"

type PushTicket struct {
	Token   string           `json:"-"`
	Status  PushTicketStatus `json:"status"`
	ID      string           `json:"id,omitempty"`
	Message string           `json:"message,omitempty"`
	Details struct {
		Error string `json:"error,omitempty"`
	} `json:"details,omitempty"`
}

// PushPriority maps job priority onto the gateway's delivery priority.
func PushPriority(p JobPriority) string {
	if p == PriorityUrgent || p == PriorityHigh {
		return "high"
	}

	return "default"
}
