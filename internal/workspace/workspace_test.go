package workspace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/auth"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	"github.com/xw1nchester/protech-admin/internal/config"
	"github.com/xw1nchester/protech-admin/internal/notification"
	mocksession "github.com/xw1nchester/protech-admin/internal/session/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type listeners struct {
	fns map[string]func(auth.StateChange)
}

func newRegistry(t *testing.T, cfg config.Workspace) (*Registry, *mocksession.MockBackend, *listeners) {
	c := gomock.NewController(t)

	backend := mocksession.NewMockBackend(c)
	l := &listeners{fns: make(map[string]func(auth.StateChange))}

	backend.EXPECT().OnAuthStateChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(sessionID string, fn func(auth.StateChange)) func() {
			l.fns[sessionID] = fn
			return func() { delete(l.fns, sessionID) }
		},
	).AnyTimes()

	r := NewRegistry(Deps{Auth: backend, Config: cfg}, zap.NewNop())
	t.Cleanup(r.Close)

	return r, backend, l
}

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

func waitDialog(t *testing.T, h *notification.Hub) notification.ConfirmDialog {
	t.Helper()

	var d notification.ConfirmDialog
	require.Eventually(t, func() bool {
		d = h.ConfirmDialog()
		return d.Show
	}, time.Second, 5*time.Millisecond)

	return d
}

func TestWorkspace_ConfirmDelete(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		r, _, _ := newRegistry(t, config.Workspace{})
		w := r.Open()
		defer w.Close()

		assert.NoError(t, w.ConfirmDelete(context.Background(), "this brand"))
	})

	t.Run("Confirmed", func(t *testing.T) {
		r, _, _ := newRegistry(t, config.Workspace{ConfirmDeletes: true, ConfirmTimeout: time.Second})
		w := r.Open()
		defer w.Close()

		go func() {
			d := waitDialog(t, w.Hub)
			assert.Equal(t, "Are you sure you want to delete this brand?", d.Message)
			w.Hub.Confirm(d.ID)
		}()

		assert.NoError(t, w.ConfirmDelete(context.Background(), "this brand"))
	})

	t.Run("Declined", func(t *testing.T) {
		r, _, _ := newRegistry(t, config.Workspace{ConfirmDeletes: true, ConfirmTimeout: time.Second})
		w := r.Open()
		defer w.Close()

		go func() {
			d := waitDialog(t, w.Hub)
			w.Hub.Cancel(d.ID)
		}()

		assert.ErrorIs(t, w.ConfirmDelete(context.Background(), "this brand"), apperror.ErrCancelled)
	})

	t.Run("Timed out", func(t *testing.T) {
		r, _, _ := newRegistry(t, config.Workspace{ConfirmDeletes: true, ConfirmTimeout: 10 * time.Millisecond})
		w := r.Open()
		defer w.Close()

		assert.ErrorIs(t, w.ConfirmDelete(context.Background(), "this brand"), apperror.ErrCancelled)
	})
}

func TestRegistry_LoginAndSignOutElsewhere(t *testing.T) {
	r, backend, l := newRegistry(t, config.Workspace{})

	backend.EXPECT().SignInWithPassword(gomock.Any(), "admin@protech.test", "s3cret", "ua").Return(newSession("s-1"), nil)

	session, err := r.Login(context.Background(), "admin@protech.test", "s3cret", "ua")
	require.NoError(t, err)
	assert.Equal(t, "s-1", session.ID)

	w, ok := r.Get("s-1")
	require.True(t, ok)
	assert.True(t, w.Session.IsLoggedIn())

	l.fns["s-1"](auth.StateChange{Event: auth.SignedOut, SessionID: "s-1"})

	_, ok = r.Get("s-1")
	assert.False(t, ok)
	assert.False(t, w.Session.IsLoggedIn())
}

func TestRegistry_LoginRejected(t *testing.T) {
	r, backend, _ := newRegistry(t, config.Workspace{})

	backend.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, auth.ErrInvalidCredentials)

	_, err := r.Login(context.Background(), "admin@protech.test", "wrong", "ua")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Logout(t *testing.T) {
	r, backend, _ := newRegistry(t, config.Workspace{})

	backend.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newSession("s-1"), nil)
	backend.EXPECT().SignOut(gomock.Any(), "s-1").Return(nil)

	_, err := r.Login(context.Background(), "admin@protech.test", "s3cret", "ua")
	require.NoError(t, err)

	w, _ := r.Get("s-1")
	events, cancel := w.Hub.Subscribe()
	defer cancel()

	require.NoError(t, r.Logout(WithWorkspace(context.Background(), w)))

	e := <-events
	assert.Equal(t, notification.EventNavigate, e.Kind)
	assert.Equal(t, "login", e.Route)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_Refresh(t *testing.T) {
	r, backend, _ := newRegistry(t, config.Workspace{})

	refreshed := newSession("s-1")
	refreshed.AccessToken = "access-2"

	backend.EXPECT().Refresh(gomock.Any(), "refresh", "ua").Return(refreshed, nil)

	session, err := r.Refresh(context.Background(), "refresh", "ua")
	require.NoError(t, err)
	assert.Equal(t, "access-2", session.AccessToken)

	w, ok := r.Get("s-1")
	require.True(t, ok)
	assert.Equal(t, "access-2", w.Session.Session().AccessToken)
}

func TestRegistry_Middleware(t *testing.T) {
	type mockBehavior func(b *mocksession.MockBackend)

	tests := []struct {
		name               string
		claims             *jwtauth.UserClaims
		mockBehavior       mockBehavior
		expectedStatusCode int
	}{
		{
			name:               "No claims",
			mockBehavior:       func(b *mocksession.MockBackend) {},
			expectedStatusCode: 401,
		},
		{
			name:   "Restored session",
			claims: &jwtauth.UserClaims{UserID: 1, SessionID: "s-1"},
			mockBehavior: func(b *mocksession.MockBackend) {
				stored := newSession("s-1")
				stored.AccessToken = ""
				stored.RefreshToken = ""
				b.EXPECT().GetSession(gomock.Any(), "s-1").Return(stored, nil)
			},
			expectedStatusCode: 200,
		},
		{
			name:   "Unknown session",
			claims: &jwtauth.UserClaims{UserID: 1, SessionID: "s-1"},
			mockBehavior: func(b *mocksession.MockBackend) {
				b.EXPECT().GetSession(gomock.Any(), "s-1").Return(nil, auth.ErrSessionNotFound)
			},
			expectedStatusCode: 401,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, backend, _ := newRegistry(t, config.Workspace{})
			tc.mockBehavior(backend)

			next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ws, err := FromContext(req.Context())
				require.NoError(t, err)
				assert.True(t, ws.Session.IsLoggedIn())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/brands", nil)
			if tc.claims != nil {
				req = req.WithContext(jwtauth.WithClaims(req.Context(), tc.claims))
			}

			w := httptest.NewRecorder()
			r.Middleware(next).ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatusCode, w.Code)

			if tc.expectedStatusCode == http.StatusOK {
				_, ok := r.Get("s-1")
				assert.True(t, ok)
			} else {
				assert.Equal(t, 0, r.Len())
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = Brands(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	assert.ErrorIs(t, Confirm(context.Background(), "this brand"), apperror.ErrUnauthorized)
}
