// Package session keeps the signed-in identity of one workspace in step with
// the auth backend.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/xw1nchester/protech-admin/internal/auth"
	"go.uber.org/zap"
)

const LoginRoute = "login"

//go:generate mockgen -source=manager.go -destination=mocks/mock.go -package=mocksession
type Backend interface {
	SignInWithPassword(ctx context.Context, email, password, userAgent string) (*auth.Session, error)
	GetSession(ctx context.Context, id string) (*auth.Session, error)
	Refresh(ctx context.Context, refreshToken, userAgent string) (*auth.Session, error)
	SignOut(ctx context.Context, sessionID string) error
	OnAuthStateChange(sessionID string, fn func(auth.StateChange)) func()
}

type Navigator interface {
	Navigate(route string)
}

type State string

const (
	Anonymous     State = "anonymous"
	Authenticated State = "authenticated"
)

type Manager struct {
	mu              sync.Mutex
	sessionID       string
	user            *auth.User
	accessToken     string
	accessExpiresAt time.Time
	refreshToken    string
	expiresAt       time.Time
	unsubscribe     func()

	backend     Backend
	navigator   Navigator
	onSignedOut func(sessionID string)
	now         func() time.Time
	logger      *zap.Logger
}

// New returns an anonymous manager. onSignedOut, if set, runs after every
// sign-out of the tracked session, whether local or pushed by the backend.
func New(backend Backend, navigator Navigator, onSignedOut func(sessionID string), logger *zap.Logger) *Manager {
	return &Manager{
		backend:     backend,
		navigator:   navigator,
		onSignedOut: onSignedOut,
		now:         time.Now,
		logger:      logger,
	}
}

// LoginWithEmail signs in and makes the new session current.
func (m *Manager) LoginWithEmail(ctx context.Context, email, password, userAgent string) (*auth.Session, error) {
	session, err := m.backend.SignInWithPassword(ctx, email, password, userAgent)
	if err != nil {
		return nil, err
	}

	m.Adopt(session)

	return session, nil
}

// Adopt makes session current and follows its auth state changes.
func (m *Manager) Adopt(session *auth.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.follow(session.ID)

	user := session.User
	m.user = &user
	m.expiresAt = session.ExpiresAt

	if session.AccessToken != "" {
		m.accessToken = session.AccessToken
		m.accessExpiresAt = session.AccessExpiresAt
	}
	if session.RefreshToken != "" {
		m.refreshToken = session.RefreshToken
	}
}

// Restore points the manager at an existing session and reconciles with the
// backend. The tokens stay with the client that presented the session.
func (m *Manager) Restore(ctx context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	m.follow(sessionID)
	m.mu.Unlock()

	return m.CheckAuth(ctx)
}

// FetchSession reconciles the local state with the backend.
func (m *Manager) FetchSession(ctx context.Context) error {
	m.mu.Lock()
	sessionID := m.sessionID
	m.mu.Unlock()

	if sessionID == "" {
		m.clear()
		return nil
	}

	session, err := m.backend.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) {
			m.clear()
			return nil
		}

		m.logger.Error("error fetching session", zap.String("session_id", sessionID), zap.Error(err))
		return nil
	}

	m.Adopt(session)

	m.mu.Lock()
	expired := m.accessToken == "" || !m.now().Before(m.accessExpiresAt)
	canRefresh := m.refreshToken != ""
	m.mu.Unlock()

	if expired && canRefresh {
		return m.RefreshSession(ctx)
	}

	return nil
}

// RefreshSession exchanges the refresh token for a new access token.
func (m *Manager) RefreshSession(ctx context.Context) error {
	m.mu.Lock()
	refreshToken := m.refreshToken
	m.mu.Unlock()

	if refreshToken == "" {
		return auth.ErrInvalidRefreshToken
	}

	session, err := m.backend.Refresh(ctx, refreshToken, "")
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			m.clear()
		}

		return err
	}

	m.Adopt(session)

	return nil
}

// Logout signs the session out, clears the identity and sends the UI to the login page.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	sessionID := m.sessionID
	m.unfollow()
	m.mu.Unlock()

	if sessionID != "" {
		if err := m.backend.SignOut(ctx, sessionID); err != nil {
			m.logger.Error("error signing out", zap.String("session_id", sessionID), zap.Error(err))
		}
	}

	m.clear()
	m.navigator.Navigate(LoginRoute)

	if sessionID != "" && m.onSignedOut != nil {
		m.onSignedOut(sessionID)
	}

	return nil
}

func (m *Manager) CheckAuth(ctx context.Context) (bool, error) {
	if err := m.FetchSession(ctx); err != nil {
		return false, err
	}

	return m.IsLoggedIn(), nil
}

func (m *Manager) IsLoggedIn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.user != nil
}

func (m *Manager) State() State {
	if m.IsLoggedIn() {
		return Authenticated
	}
	return Anonymous
}

func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sessionID
}

// Session returns a snapshot of the current session, or nil when anonymous.
func (m *Manager) Session() *auth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil
	}

	return &auth.Session{
		ID:              m.sessionID,
		User:            *m.user,
		AccessToken:     m.accessToken,
		AccessExpiresAt: m.accessExpiresAt,
		ExpiresAt:       m.expiresAt,
	}
}

// Close stops following auth state changes.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unfollow()
}

func (m *Manager) onAuthStateChange(change auth.StateChange) {
	switch change.Event {
	case auth.SignedIn:
		if change.User == nil {
			return
		}

		m.mu.Lock()
		user := *change.User
		m.user = &user
		m.mu.Unlock()
	case auth.SignedOut:
		m.mu.Lock()
		current := m.sessionID == change.SessionID
		m.mu.Unlock()

		if !current {
			return
		}

		m.clear()

		if m.onSignedOut != nil {
			m.onSignedOut(change.SessionID)
		}
	}
}

// follow must be called with mu held.
func (m *Manager) follow(sessionID string) {
	if m.sessionID == sessionID && m.unsubscribe != nil {
		return
	}

	m.unfollow()
	m.sessionID = sessionID
	m.unsubscribe = m.backend.OnAuthStateChange(sessionID, m.onAuthStateChange)
}

// unfollow must be called with mu held.
func (m *Manager) unfollow() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Manager) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unfollow()
	m.sessionID = ""
	m.user = nil
	m.accessToken = ""
	m.accessExpiresAt = time.Time{}
	m.refreshToken = ""
	m.expiresAt = time.Time{}
}
