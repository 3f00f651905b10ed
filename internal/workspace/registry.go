package workspace

import (
	"context"
	"net/http"
	"sync"

	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/auth"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	"go.uber.org/zap"
)

// Registry keeps the live workspace of every signed-in session.
type Registry struct {
	mu         sync.Mutex
	workspaces map[string]*Workspace
	closed     bool

	deps   Deps
	logger *zap.Logger
}

func NewRegistry(deps Deps, logger *zap.Logger) *Registry {
	return &Registry{
		workspaces: make(map[string]*Workspace),
		deps:       deps,
		logger:     logger,
	}
}

// Open builds a workspace that releases itself from r when its session ends.
func (r *Registry) Open() *Workspace {
	return Open(r.deps, r.Release, r.logger)
}

// Attach makes w the workspace of sessionID, closing the one it replaces.
func (r *Registry) Attach(sessionID string, w *Workspace) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		w.Close()
		return
	}
	prev := r.workspaces[sessionID]
	r.workspaces[sessionID] = w
	r.mu.Unlock()

	if prev != nil && prev != w {
		prev.Close()
	}
}

func (r *Registry) Get(sessionID string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workspaces[sessionID]
	return w, ok
}

// Release closes the workspace of sessionID. Releasing twice is a no-op.
func (r *Registry) Release(sessionID string) {
	r.mu.Lock()
	w, ok := r.workspaces[sessionID]
	delete(r.workspaces, sessionID)
	r.mu.Unlock()

	if ok {
		r.logger.Debug("workspace released", zap.String("session_id", sessionID))
		w.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.workspaces)
}

func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	workspaces := r.workspaces
	r.workspaces = make(map[string]*Workspace)
	r.mu.Unlock()

	for _, w := range workspaces {
		w.Close()
	}
}

func (r *Registry) Login(ctx context.Context, email, password, userAgent string) (*auth.Session, error) {
	w := r.Open()

	session, err := w.Session.LoginWithEmail(ctx, email, password, userAgent)
	if err != nil {
		w.Close()
		return nil, err
	}

	r.Attach(session.ID, w)

	return session, nil
}

// Refresh rotates refreshToken and hands the new tokens to the session's workspace.
func (r *Registry) Refresh(ctx context.Context, refreshToken, userAgent string) (*auth.Session, error) {
	session, err := r.deps.Auth.Refresh(ctx, refreshToken, userAgent)
	if err != nil {
		return nil, err
	}

	w, ok := r.Get(session.ID)
	if !ok {
		w = r.Open()
		r.Attach(session.ID, w)
	}

	w.Session.Adopt(session)

	return session, nil
}

// CurrentSession reconciles the request's session with the backend.
func (r *Registry) CurrentSession(ctx context.Context) (*auth.Session, error) {
	w, err := FromContext(ctx)
	if err != nil {
		return nil, err
	}

	ok, err := w.Session.CheckAuth(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return w.Session.Session(), nil
}

func (r *Registry) Logout(ctx context.Context) error {
	w, err := FromContext(ctx)
	if err != nil {
		return err
	}

	return w.Session.Logout(ctx)
}

// Middleware resolves the workspace of the session named by the JWT claims.
// It must run after the JWT middleware.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		claims, ok := jwtauth.ClaimsFromContext(req.Context())
		if !ok {
			unauthorized(w)
			return
		}

		ws, err := r.resolve(req.Context(), claims.SessionID)
		if err != nil {
			r.logger.Debug("no workspace for session", zap.String("session_id", claims.SessionID), zap.Error(err))
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, req.WithContext(WithWorkspace(req.Context(), ws)))
	})
}

func (r *Registry) resolve(ctx context.Context, sessionID string) (*Workspace, error) {
	if w, ok := r.Get(sessionID); ok {
		return w, nil
	}

	w := r.Open()

	ok, err := w.Session.Restore(ctx, sessionID)
	if err != nil || !ok {
		w.Close()
		if err == nil {
			err = auth.ErrSessionNotFound
		}
		return nil, err
	}

	r.mu.Lock()
	if existing, found := r.workspaces[sessionID]; found {
		r.mu.Unlock()
		w.Close()
		return existing, nil
	}
	if r.closed {
		r.mu.Unlock()
		w.Close()
		return nil, apperror.ErrUnauthorized
	}
	r.workspaces[sessionID] = w
	r.mu.Unlock()

	r.logger.Debug("workspace restored", zap.String("session_id", sessionID))

	return w, nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write(apperror.ErrUnauthorized.Marshal())
}
