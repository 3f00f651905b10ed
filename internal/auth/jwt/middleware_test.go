package jwtauth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	mockjwt "github.com/xw1nchester/protech-admin/internal/auth/jwt/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenManager := mockjwt.NewMockJwtManager(ctrl)
	middleware := jwtauth.NewMiddleware(zap.NewNop(), mockTokenManager)

	tests := []struct {
		name               string
		authHeader         string
		setupMock          func()
		expectedStatusCode int
		expectedClaims     *jwtauth.UserClaims
	}{
		{
			name:               "No auth header",
			authHeader:         "",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid format",
			authHeader:         "Bearer",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Wrong scheme",
			authHeader:         "Basic dXNlcjpwYXNz",
			setupMock:          func() {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer invalid.token.here",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("invalid.token.here").
					Return(nil, errors.New("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid.token",
			setupMock: func() {
				mockTokenManager.EXPECT().
					ParseToken("valid.token").
					Return(&jwtauth.UserClaims{UserID: 42, SessionID: "s-1"}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedClaims:     &jwtauth.UserClaims{UserID: 42, SessionID: "s-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/brands", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			var actualClaims *jwtauth.UserClaims

			protectedHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := jwtauth.ClaimsFromContext(r.Context()); ok {
					actualClaims = claims
				}
				w.WriteHeader(http.StatusOK)
			})

			middleware(protectedHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, tt.expectedClaims, actualClaims)
		})
	}
}
