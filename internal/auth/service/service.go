package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xw1nchester/protech-admin/internal/auth"
	authDB "github.com/xw1nchester/protech-admin/internal/auth/db"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockauthservice
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.User, error)
	CreateUser(ctx context.Context, email string, passwordHash []byte) (*auth.User, error)
	CreateSession(ctx context.Context, id string, userID int, refreshToken string, userAgent string, expiresAt time.Time) error
	GetSession(ctx context.Context, id string) (*auth.Session, error)
	RotateRefreshToken(ctx context.Context, token string, newToken string, userAgent string, expiresAt time.Time) (*auth.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

type TokenManager interface {
	GenerateToken(user jwtauth.UserClaims) (string, time.Time, error)
	GetRefreshTokenTTL() time.Duration
}

type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	repository      Repository
	tokenManager    TokenManager
	passwordManager PasswordManager
	logger          *zap.Logger

	mu        sync.Mutex
	listeners map[string]map[uint64]func(auth.StateChange)
	nextID    uint64
	timers    map[string]*time.Timer
}

func NewService(
	repository Repository,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		repository:      repository,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		logger:          logger,
		listeners:       make(map[string]map[uint64]func(auth.StateChange)),
		timers:          make(map[string]*time.Timer),
	}
}

func (s *service) SignInWithPassword(ctx context.Context, email, password, userAgent string) (*auth.Session, error) {
	user, err := s.repository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authDB.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}

		s.logger.Error("unexpected error when fetching user by email", zap.Error(err))
		return nil, err
	}

	if err := s.passwordManager.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	user.PasswordHash = nil

	session := &auth.Session{
		ID:           uuid.NewString(),
		User:         *user,
		RefreshToken: uuid.NewString(),
		ExpiresAt:    time.Now().Add(s.tokenManager.GetRefreshTokenTTL()),
	}

	if err := s.issueAccessToken(session); err != nil {
		return nil, err
	}

	if err := s.repository.CreateSession(
		ctx,
		session.ID,
		user.ID,
		session.RefreshToken,
		userAgent,
		session.ExpiresAt,
	); err != nil {
		s.logger.Error("unexpected error when creating session", zap.Error(err))
		return nil, err
	}

	s.scheduleExpiry(session.ID, session.ExpiresAt)
	s.emit(auth.StateChange{Event: auth.SignedIn, SessionID: session.ID, User: &session.User})

	return session, nil
}

// GetSession returns the live session with id. The result carries no tokens.
func (s *service) GetSession(ctx context.Context, id string) (*auth.Session, error) {
	session, err := s.repository.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, authDB.ErrSessionNotFound) {
			return nil, auth.ErrSessionNotFound
		}

		s.logger.Error("unexpected error when fetching session", zap.Error(err))
		return nil, err
	}

	session.RefreshToken = ""
	s.scheduleExpiry(session.ID, session.ExpiresAt)

	return session, nil
}

// Refresh rotates refreshToken and issues a new access token for the same session.
func (s *service) Refresh(ctx context.Context, refreshToken, userAgent string) (*auth.Session, error) {
	session, err := s.repository.RotateRefreshToken(
		ctx,
		refreshToken,
		uuid.NewString(),
		userAgent,
		time.Now().Add(s.tokenManager.GetRefreshTokenTTL()),
	)
	if err != nil {
		if errors.Is(err, authDB.ErrSessionNotFound) {
			return nil, auth.ErrInvalidRefreshToken
		}

		s.logger.Error("unexpected error when rotating refresh token", zap.Error(err))
		return nil, err
	}

	if err := s.issueAccessToken(session); err != nil {
		return nil, err
	}

	s.scheduleExpiry(session.ID, session.ExpiresAt)

	return session, nil
}

func (s *service) SignOut(ctx context.Context, sessionID string) error {
	s.stopExpiry(sessionID)

	if err := s.repository.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, authDB.ErrSessionNotFound) {
		s.logger.Error("unexpected error when deleting session", zap.Error(err))
		return err
	}

	s.emit(auth.StateChange{Event: auth.SignedOut, SessionID: sessionID})

	return nil
}

// OnAuthStateChange calls fn with every state change of sessionID until the
// returned func is called.
func (s *service) OnAuthStateChange(sessionID string, fn func(auth.StateChange)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	if s.listeners[sessionID] == nil {
		s.listeners[sessionID] = make(map[uint64]func(auth.StateChange))
	}
	s.listeners[sessionID][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.listeners[sessionID], id)
		if len(s.listeners[sessionID]) == 0 {
			delete(s.listeners, sessionID)
		}
	}
}

func (s *service) CreateUser(ctx context.Context, email, password string) (*auth.User, error) {
	hash, err := s.passwordManager.GenerateHashFromPassword([]byte(password))
	if err != nil {
		return nil, err
	}

	user, err := s.repository.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, authDB.ErrUserExists) {
			return nil, auth.ErrEmailAlreadyExists
		}

		s.logger.Error("unexpected error when creating user", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = nil

	return user, nil
}

// Close stops every expiry timer.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *service) issueAccessToken(session *auth.Session) error {
	token, expiresAt, err := s.tokenManager.GenerateToken(jwtauth.UserClaims{
		UserID:    session.User.ID,
		SessionID: session.ID,
	})
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))
		return err
	}

	session.AccessToken = token
	session.AccessExpiresAt = expiresAt

	return nil
}

func (s *service) scheduleExpiry(sessionID string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
	}

	s.timers[sessionID] = time.AfterFunc(time.Until(expiresAt), func() {
		s.expire(sessionID)
	})
}

func (s *service) stopExpiry(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[sessionID]; ok {
		timer.Stop()
		delete(s.timers, sessionID)
	}
}

func (s *service) expire(sessionID string) {
	s.mu.Lock()
	delete(s.timers, sessionID)
	s.mu.Unlock()

	s.logger.Info("session expired", zap.String("session_id", sessionID))

	if err := s.repository.DeleteSession(context.Background(), sessionID); err != nil && !errors.Is(err, authDB.ErrSessionNotFound) {
		s.logger.Error("unexpected error when deleting expired session", zap.Error(err))
	}

	s.emit(auth.StateChange{Event: auth.SignedOut, SessionID: sessionID})
}

func (s *service) emit(change auth.StateChange) {
	s.mu.Lock()
	fns := make([]func(auth.StateChange), 0, len(s.listeners[change.SessionID]))
	for _, fn := range s.listeners[change.SessionID] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}
