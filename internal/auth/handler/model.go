package handler

import (
	"time"

	"github.com/xw1nchester/protech-admin/internal/auth"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type JwtToken struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type AuthResponse struct {
	User auth.User `json:"user"`
	JwtToken
}

type SessionResponse struct {
	User       *auth.User `json:"user"`
	IsLoggedIn bool       `json:"isLoggedIn"`
}
