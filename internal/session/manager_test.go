package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/protech-admin/internal/auth"
	mocksession "github.com/xw1nchester/protech-admin/internal/session/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newSession(id string) *auth.Session {
	return &auth.Session{
		ID:              id,
		User:            auth.User{ID: 1, Email: "admin@protech.test"},
		AccessToken:     "access",
		AccessExpiresAt: time.Now().Add(time.Hour),
		RefreshToken:    "refresh",
		ExpiresAt:       time.Now().Add(24 * time.Hour),
	}
}

type listeners struct {
	fns map[string]func(auth.StateChange)
}

func (l *listeners) expect(backend *mocksession.MockBackend) {
	backend.EXPECT().OnAuthStateChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(sessionID string, fn func(auth.StateChange)) func() {
			l.fns[sessionID] = fn
			return func() { delete(l.fns, sessionID) }
		},
	).AnyTimes()
}

func setup(t *testing.T) (*Manager, *mocksession.MockBackend, *mocksession.MockNavigator, *listeners, *[]string) {
	c := gomock.NewController(t)

	backend := mocksession.NewMockBackend(c)
	navigator := mocksession.NewMockNavigator(c)
	l := &listeners{fns: make(map[string]func(auth.StateChange))}
	l.expect(backend)

	var signedOut []string
	m := New(backend, navigator, func(id string) { signedOut = append(signedOut, id) }, zap.NewNop())

	return m, backend, navigator, l, &signedOut
}

func TestManager_LoginWithEmail(t *testing.T) {
	type mockBehavior func(b *mocksession.MockBackend)

	tests := []struct {
		name          string
		mockBehavior  mockBehavior
		expectedError error
		loggedIn      bool
	}{
		{
			name: "OK",
			mockBehavior: func(b *mocksession.MockBackend) {
				b.EXPECT().SignInWithPassword(gomock.Any(), "admin@protech.test", "s3cret", "ua").Return(newSession("s-1"), nil)
			},
			loggedIn: true,
		},
		{
			name: "Rejected credentials",
			mockBehavior: func(b *mocksession.MockBackend) {
				b.EXPECT().SignInWithPassword(gomock.Any(), "admin@protech.test", "s3cret", "ua").Return(nil, auth.ErrInvalidCredentials)
			},
			expectedError: auth.ErrInvalidCredentials,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, backend, _, l, _ := setup(t)
			tc.mockBehavior(backend)

			session, err := m.LoginWithEmail(context.Background(), "admin@protech.test", "s3cret", "ua")

			assert.ErrorIs(t, err, tc.expectedError)
			assert.Equal(t, tc.loggedIn, m.IsLoggedIn())

			if tc.loggedIn {
				require.NotNil(t, session)
				assert.Equal(t, Authenticated, m.State())
				assert.Equal(t, "s-1", m.SessionID())
				assert.Equal(t, "access", m.Session().AccessToken)
				assert.Contains(t, l.fns, "s-1")
			} else {
				assert.Equal(t, Anonymous, m.State())
				assert.Nil(t, m.Session())
			}
		})
	}
}

func TestManager_FetchSession(t *testing.T) {
	t.Run("No session is anonymous", func(t *testing.T) {
		m, _, _, _, _ := setup(t)

		require.NoError(t, m.FetchSession(context.Background()))
		assert.False(t, m.IsLoggedIn())
	})

	t.Run("Session gone", func(t *testing.T) {
		m, backend, _, l, _ := setup(t)
		m.Adopt(newSession("s-1"))

		backend.EXPECT().GetSession(gomock.Any(), "s-1").Return(nil, auth.ErrSessionNotFound)

		require.NoError(t, m.FetchSession(context.Background()))
		assert.False(t, m.IsLoggedIn())
		assert.Empty(t, l.fns)
	})

	t.Run("Backend failure keeps state", func(t *testing.T) {
		m, backend, _, _, _ := setup(t)
		m.Adopt(newSession("s-1"))

		backend.EXPECT().GetSession(gomock.Any(), "s-1").Return(nil, errors.New("connection refused"))

		require.NoError(t, m.FetchSession(context.Background()))
		assert.True(t, m.IsLoggedIn())
	})

	t.Run("Expired access token is refreshed", func(t *testing.T) {
		m, backend, _, _, _ := setup(t)
		m.Adopt(newSession("s-1"))
		m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		stored := newSession("s-1")
		stored.AccessToken = ""
		stored.RefreshToken = ""

		refreshed := newSession("s-1")
		refreshed.AccessToken = "access-2"
		refreshed.AccessExpiresAt = time.Now().Add(3 * time.Hour)
		refreshed.RefreshToken = "refresh-2"

		gomock.InOrder(
			backend.EXPECT().GetSession(gomock.Any(), "s-1").Return(stored, nil),
			backend.EXPECT().Refresh(gomock.Any(), "refresh", "").Return(refreshed, nil),
		)

		require.NoError(t, m.FetchSession(context.Background()))
		assert.Equal(t, "access-2", m.Session().AccessToken)
	})
}

func TestManager_RefreshSession(t *testing.T) {
	t.Run("Without refresh token", func(t *testing.T) {
		m, _, _, _, _ := setup(t)

		assert.ErrorIs(t, m.RefreshSession(context.Background()), auth.ErrInvalidRefreshToken)
	})

	t.Run("Rejected refresh token clears state", func(t *testing.T) {
		m, backend, _, _, _ := setup(t)
		m.Adopt(newSession("s-1"))

		backend.EXPECT().Refresh(gomock.Any(), "refresh", "").Return(nil, auth.ErrInvalidRefreshToken)

		assert.ErrorIs(t, m.RefreshSession(context.Background()), auth.ErrInvalidRefreshToken)
		assert.False(t, m.IsLoggedIn())
	})
}

func TestManager_RestoreMissingSession(t *testing.T) {
	m, backend, _, l, _ := setup(t)

	backend.EXPECT().GetSession(gomock.Any(), "s-1").Return(nil, auth.ErrSessionNotFound)

	ok, err := m.Restore(context.Background(), "s-1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, l.fns)
}

func TestManager_Restore(t *testing.T) {
	m, backend, _, l, _ := setup(t)

	stored := newSession("s-1")
	stored.AccessToken = ""
	stored.RefreshToken = ""

	backend.EXPECT().GetSession(gomock.Any(), "s-1").Return(stored, nil)

	ok, err := m.Restore(context.Background(), "s-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin@protech.test", m.Session().User.Email)
	assert.Contains(t, l.fns, "s-1")
}

func TestManager_Logout(t *testing.T) {
	m, backend, navigator, l, signedOut := setup(t)
	m.Adopt(newSession("s-1"))

	gomock.InOrder(
		backend.EXPECT().SignOut(gomock.Any(), "s-1").DoAndReturn(func(ctx context.Context, id string) error {
			assert.NotContains(t, l.fns, "s-1")
			return nil
		}),
		navigator.EXPECT().Navigate(LoginRoute),
	)

	require.NoError(t, m.Logout(context.Background()))
	assert.False(t, m.IsLoggedIn())
	assert.Equal(t, "", m.SessionID())
	assert.Equal(t, []string{"s-1"}, *signedOut)
}

func TestManager_SignedOutElsewhere(t *testing.T) {
	m, _, _, l, signedOut := setup(t)
	m.Adopt(newSession("s-1"))

	l.fns["s-1"](auth.StateChange{Event: auth.SignedOut, SessionID: "s-1"})

	assert.False(t, m.IsLoggedIn())
	assert.Empty(t, l.fns)
	assert.Equal(t, []string{"s-1"}, *signedOut)
}

func TestManager_SignedInElsewhere(t *testing.T) {
	m, _, _, l, _ := setup(t)
	m.Adopt(newSession("s-1"))

	l.fns["s-1"](auth.StateChange{
		Event:     auth.SignedIn,
		SessionID: "s-1",
		User:      &auth.User{ID: 1, Email: "renamed@protech.test"},
	})

	assert.Equal(t, "renamed@protech.test", m.Session().User.Email)
}
