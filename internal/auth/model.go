package auth

import (
	"time"

	"github.com/xw1nchester/protech-admin/internal/apperror"
)

var (
	ErrInvalidCredentials  = apperror.NewAppError("Invalid login credentials")
	ErrEmailAlreadyExists  = apperror.NewAppError("the user with this email already exists")
	ErrSessionNotFound     = apperror.NewAppError("session not found")
	ErrInvalidRefreshToken = apperror.NewAppError("invalid refresh token")
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is one sign-in of a user. Its ID survives token refreshes.
type Session struct {
	ID              string    `json:"id"`
	User            User      `json:"user"`
	AccessToken     string    `json:"access_token,omitempty"`
	AccessExpiresAt time.Time `json:"access_expires_at,omitempty"`
	RefreshToken    string    `json:"-"`
	ExpiresAt       time.Time `json:"expires_at"`
}

// AccessExpired reports whether the access token is missing or past its expiry at now.
func (s *Session) AccessExpired(now time.Time) bool {
	return s.AccessToken == "" || !now.Before(s.AccessExpiresAt)
}

type Event string

const (
	SignedIn  Event = "SIGNED_IN"
	SignedOut Event = "SIGNED_OUT"
)

type StateChange struct {
	Event     Event
	SessionID string
	User      *User
}
