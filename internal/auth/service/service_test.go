package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/protech-admin/internal/auth"
	authDB "github.com/xw1nchester/protech-admin/internal/auth/db"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	mockauthservice "github.com/xw1nchester/protech-admin/internal/auth/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	UserID          = 1
	Email           = "admin@protech.test"
	Password        = "s3cret"
	UserAgent       = "Go-http-client/1.1"
	AccessToken     = "some.access.token"
	RefreshToken    = "refresh-token"
	RefreshTokenTTL = 720 * time.Hour
)

var (
	PasswordHash  = []byte("hash")
	ErrUnexpected = errors.New("unexpected error")
)

type fixture struct {
	repo     *mockauthservice.MockRepository
	tokens   *mockauthservice.MockTokenManager
	password *mockauthservice.MockPasswordManager
	svc      *service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:     mockauthservice.NewMockRepository(ctrl),
		tokens:   mockauthservice.NewMockTokenManager(ctrl),
		password: mockauthservice.NewMockPasswordManager(ctrl),
	}
	f.svc = NewService(f.repo, f.tokens, f.password, zap.NewNop())

	t.Cleanup(f.svc.Close)

	return f
}

func TestSignInWithPassword(t *testing.T) {
	type mockBehavior func(f *fixture)

	tests := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError error
	}{
		{
			name: "success",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(&auth.User{ID: UserID, Email: Email, PasswordHash: PasswordHash}, nil)
				f.password.EXPECT().CompareHashAndPassword(PasswordHash, []byte(Password)).Return(nil)
				f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
				f.tokens.EXPECT().GenerateToken(gomock.Any()).Return(AccessToken, time.Now().Add(time.Minute), nil)
				f.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), UserID, gomock.Any(), UserAgent, gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown email",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(nil, authDB.ErrUserNotFound)
			},
			expectedError: auth.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(&auth.User{ID: UserID, PasswordHash: PasswordHash}, nil)
				f.password.EXPECT().CompareHashAndPassword(PasswordHash, []byte(Password)).Return(bcrypt.ErrMismatchedHashAndPassword)
			},
			expectedError: auth.ErrInvalidCredentials,
		},
		{
			name: "token generation error",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(&auth.User{ID: UserID, PasswordHash: PasswordHash}, nil)
				f.password.EXPECT().CompareHashAndPassword(PasswordHash, []byte(Password)).Return(nil)
				f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
				f.tokens.EXPECT().GenerateToken(gomock.Any()).Return("", time.Time{}, ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
		{
			name: "creating session error",
			mockBehavior: func(f *fixture) {
				f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(&auth.User{ID: UserID, PasswordHash: PasswordHash}, nil)
				f.password.EXPECT().CompareHashAndPassword(PasswordHash, []byte(Password)).Return(nil)
				f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
				f.tokens.EXPECT().GenerateToken(gomock.Any()).Return(AccessToken, time.Now().Add(time.Minute), nil)
				f.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), UserID, gomock.Any(), UserAgent, gomock.Any()).Return(ErrUnexpected)
			},
			expectedError: ErrUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockBehavior(f)

			session, err := f.svc.SignInWithPassword(context.Background(), Email, Password, UserAgent)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.ID)
			assert.NotEmpty(t, session.RefreshToken)
			assert.Equal(t, AccessToken, session.AccessToken)
			assert.Nil(t, session.User.PasswordHash)
		})
	}
}

func TestSignInEmitsSignedIn(t *testing.T) {
	f := newFixture(t)

	var claims jwtauth.UserClaims
	f.repo.EXPECT().GetUserByEmail(gomock.Any(), Email).Return(&auth.User{ID: UserID, PasswordHash: PasswordHash}, nil)
	f.password.EXPECT().CompareHashAndPassword(gomock.Any(), gomock.Any()).Return(nil)
	f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
	f.tokens.EXPECT().GenerateToken(gomock.Any()).DoAndReturn(func(c jwtauth.UserClaims) (string, time.Time, error) {
		claims = c
		return AccessToken, time.Now().Add(time.Minute), nil
	})
	f.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any(), UserID, gomock.Any(), UserAgent, gomock.Any()).Return(nil)

	session, err := f.svc.SignInWithPassword(context.Background(), Email, Password, UserAgent)
	require.NoError(t, err)
	assert.Equal(t, jwtauth.UserClaims{UserID: UserID, SessionID: session.ID}, claims)
}

func TestRefresh(t *testing.T) {
	t.Run("keeps session id", func(t *testing.T) {
		f := newFixture(t)

		f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
		f.repo.EXPECT().
			RotateRefreshToken(gomock.Any(), RefreshToken, gomock.Not(RefreshToken), UserAgent, gomock.Any()).
			Return(&auth.Session{ID: "s-1", User: auth.User{ID: UserID}, RefreshToken: "rotated", ExpiresAt: time.Now().Add(time.Hour)}, nil)
		f.tokens.EXPECT().
			GenerateToken(jwtauth.UserClaims{UserID: UserID, SessionID: "s-1"}).
			Return(AccessToken, time.Now().Add(time.Minute), nil)

		session, err := f.svc.Refresh(context.Background(), RefreshToken, UserAgent)
		require.NoError(t, err)
		assert.Equal(t, "s-1", session.ID)
		assert.Equal(t, "rotated", session.RefreshToken)
		assert.Equal(t, AccessToken, session.AccessToken)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newFixture(t)

		f.tokens.EXPECT().GetRefreshTokenTTL().Return(RefreshTokenTTL)
		f.repo.EXPECT().
			RotateRefreshToken(gomock.Any(), RefreshToken, gomock.Any(), UserAgent, gomock.Any()).
			Return(nil, authDB.ErrSessionNotFound)

		_, err := f.svc.Refresh(context.Background(), RefreshToken, UserAgent)
		require.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}

func TestGetSession(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetSession(gomock.Any(), "s-1").
			Return(&auth.Session{ID: "s-1", RefreshToken: RefreshToken, ExpiresAt: time.Now().Add(time.Hour)}, nil)

		session, err := f.svc.GetSession(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Empty(t, session.RefreshToken)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetSession(gomock.Any(), "s-1").Return(nil, authDB.ErrSessionNotFound)

		_, err := f.svc.GetSession(context.Background(), "s-1")
		require.ErrorIs(t, err, auth.ErrSessionNotFound)
	})
}

func TestSignOut(t *testing.T) {
	f := newFixture(t)

	var events []auth.StateChange
	stop := f.svc.OnAuthStateChange("s-1", func(c auth.StateChange) { events = append(events, c) })

	f.repo.EXPECT().DeleteSession(gomock.Any(), "s-1").Return(nil)
	f.repo.EXPECT().DeleteSession(gomock.Any(), "s-1").Return(authDB.ErrSessionNotFound)

	require.NoError(t, f.svc.SignOut(context.Background(), "s-1"))

	stop()
	require.NoError(t, f.svc.SignOut(context.Background(), "s-1"))

	require.Len(t, events, 1)
	assert.Equal(t, auth.StateChange{Event: auth.SignedOut, SessionID: "s-1"}, events[0])
}

func TestSessionExpiry(t *testing.T) {
	f := newFixture(t)

	expired := make(chan auth.StateChange, 1)
	f.svc.OnAuthStateChange("s-1", func(c auth.StateChange) { expired <- c })

	f.repo.EXPECT().GetSession(gomock.Any(), "s-1").
		Return(&auth.Session{ID: "s-1", ExpiresAt: time.Now().Add(20 * time.Millisecond)}, nil)
	f.repo.EXPECT().DeleteSession(gomock.Any(), "s-1").Return(nil)

	_, err := f.svc.GetSession(context.Background(), "s-1")
	require.NoError(t, err)

	select {
	case c := <-expired:
		assert.Equal(t, auth.SignedOut, c.Event)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not expire")
	}
}

func TestCreateUser(t *testing.T) {
	type mockBehavior func(f *fixture)

	tests := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError error
	}{
		{
			name: "success",
			mockBehavior: func(f *fixture) {
				f.password.EXPECT().GenerateHashFromPassword([]byte(Password)).Return(PasswordHash, nil)
				f.repo.EXPECT().CreateUser(gomock.Any(), Email, PasswordHash).Return(&auth.User{ID: UserID, Email: Email, PasswordHash: PasswordHash}, nil)
			},
		},
		{
			name: "email taken",
			mockBehavior: func(f *fixture) {
				f.password.EXPECT().GenerateHashFromPassword([]byte(Password)).Return(PasswordHash, nil)
				f.repo.EXPECT().CreateUser(gomock.Any(), Email, PasswordHash).Return(nil, authDB.ErrUserExists)
			},
			expectedError: auth.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockBehavior(f)

			user, err := f.svc.CreateUser(context.Background(), Email, Password)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, Email, user.Email)
			assert.Nil(t, user.PasswordHash)
		})
	}
}
