package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type StaffRole string

const (
	RoleAdmin       StaffRole = "admin"
	RoleManager     StaffRole = "manager"
	RoleStaff       StaffRole = "staff"
	RoleCleaner     StaffRole = "cleaner"
	RoleMaintenance StaffRole = "maintenance"
	RoleConcierge   StaffRole = "concierge"
	RoleHousekeeper StaffRole = "housekeeper"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff, RoleCleaner, RoleMaintenance, RoleConcierge, RoleHousekeeper:
		return true
	default:
		return false
	}
}

// CanAssign reports whether the role may create assignments for other staff.
func (r StaffRole) CanAssign() bool {
	return r == RoleAdmin || r == RoleManager
}

type StaffProfile struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       StaffRole `json:"role"`
	Department string    `json:"department"`
	IsActive   bool      `json:"isActive"`
	AvatarURL  string    `json:"avatarUrl,omitempty"`
	HasPIN     bool      `json:"hasPin"`
}

type StaffPIN struct {
	StaffID        uuid.UUID
	PINHash        string
	FailedAttempts int
	LockedUntil    *time.Time
	UpdatedAt      time.Time
}

func (p StaffPIN) IsLocked(now time.Time) bool {
	return p.LockedUntil != nil && p.LockedUntil.After(now)
}

type PINRoute string

const (
	PINRouteCreate PINRoute = "create_pin"
	PINRouteEnter  PINRoute = "enter_pin"
)

type StaffSession struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profileId"`
	DeviceID    string    `json:"deviceId"`
	CreatedAt   time.Time `json:"createdAt"`
	RefreshedAt time.Time `json:"refreshedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (s StaffSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

type SessionTokens struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Session   StaffSession `json:"session"`
	Profile   StaffProfile `json:"profile"`
}

type SessionJwtClaims struct {
	SessionID uuid.UUID `json:"sid"`
	StaffID   uuid.UUID `json:"staff_id"`
	DeviceID  string    `json:"device_id"`
	jwt.RegisteredClaims
}
