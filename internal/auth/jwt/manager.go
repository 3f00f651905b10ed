package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/xw1nchester/protech-admin/internal/config"
)

var ErrInvalidToken = errors.New("invalid token")

type manager struct {
	jwtConfig config.JWT
}

func NewManager(jwtConfig config.JWT) *manager {
	return &manager{
		jwtConfig: jwtConfig,
	}
}

type UserClaims struct {
	UserID    int    `json:"user_id"`
	SessionID string `json:"session_id"`
}

type customClaims struct {
	jwt.RegisteredClaims
	UserClaims
}

// GenerateToken signs an access token for user and returns it with its expiry.
func (m *manager) GenerateToken(user UserClaims) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.jwtConfig.AccessTokenTTL)

	claims := customClaims{
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		user,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(m.jwtConfig.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func (m *manager) GetRefreshTokenTTL() time.Duration {
	return m.jwtConfig.RefreshTokenTTL
}

func (m *manager) ParseToken(tokenStr string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&customClaims{},
		func(token *jwt.Token) (any, error) {
			return []byte(m.jwtConfig.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return &claims.UserClaims, nil
}
