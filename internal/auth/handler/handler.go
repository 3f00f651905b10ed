package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/protech-admin/internal/apperror"
	"github.com/xw1nchester/protech-admin/internal/auth"
	"github.com/xw1nchester/protech-admin/internal/handlers"
	"go.uber.org/zap"
)

const (
	RefreshTokenCookieName = "refresh-token"
)

var validate = validator.New()

//go:generate mockgen -source=handler.go -destination=mocks/mock.go -package=mockauthhandler
type Service interface {
	Login(ctx context.Context, email, password, userAgent string) (*auth.Session, error)
	Refresh(ctx context.Context, refreshToken, userAgent string) (*auth.Session, error)
	CurrentSession(ctx context.Context) (*auth.Session, error)
	Logout(ctx context.Context) error
}

type handler struct {
	service        Service
	authMiddleware func(http.Handler) http.Handler
	logger         *zap.Logger
}

func New(service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) handlers.Handler {
	return &handler{
		service:        service,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (h *handler) Register(router chi.Router) {
	router.Route("/auth", func(authRouter chi.Router) {
		authRouter.Post("/login", apperror.Middleware(h.loginHandler))
		authRouter.Post("/refresh", apperror.Middleware(h.refreshHandler))

		authRouter.Group(func(privateRouter chi.Router) {
			privateRouter.Use(h.authMiddleware)

			privateRouter.Get("/session", apperror.Middleware(h.sessionHandler))
			privateRouter.Post("/logout", apperror.Middleware(h.logoutHandler))
		})
	})
}

func (h *handler) setRefreshTokenToCookie(w http.ResponseWriter, session *auth.Session) {
	cookie := &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    session.RefreshToken,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	http.SetCookie(w, cookie)
}

func (h *handler) clearCookie(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     RefreshTokenCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	http.SetCookie(w, cookie)
}

// @Tags		auth
// @Param		request	body		LoginRequest	true	"request body"
// @Success	200		{object}	AuthResponse
// @Failure	400,500	{object}	apperror.AppError
// @Router		/auth/login [post]
func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var dto LoginRequest
	if err := render.DecodeJSON(r.Body, &dto); err != nil {
		return apperror.ErrDecodeBody
	}

	if err := validate.Struct(dto); err != nil {
		return apperror.NewValidationErr(err.(validator.ValidationErrors))
	}

	session, err := h.service.Login(r.Context(), dto.Email, dto.Password, r.Header.Get("User-Agent"))
	if err != nil {
		return err
	}

	h.setRefreshTokenToCookie(w, session)

	render.JSON(w, r, AuthResponse{
		User:     session.User,
		JwtToken: JwtToken{AccessToken: session.AccessToken, ExpiresAt: session.AccessExpiresAt},
	})

	return nil
}

// @Tags		auth
// @Success	200		{object}	JwtToken
// @Failure	401		{object}	apperror.AppError
// @Router		/auth/refresh [post]
func (h *handler) refreshHandler(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(RefreshTokenCookieName)
	if err != nil {
		return apperror.ErrUnauthorized
	}

	session, err := h.service.Refresh(r.Context(), cookie.Value, r.Header.Get("User-Agent"))
	if err != nil {
		h.logger.Debug("refresh rejected", zap.Error(err))
		return apperror.ErrUnauthorized
	}

	h.setRefreshTokenToCookie(w, session)

	render.JSON(w, r, JwtToken{AccessToken: session.AccessToken, ExpiresAt: session.AccessExpiresAt})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		auth
// @Success	200	{object}	SessionResponse
// @Router		/auth/session [get]
func (h *handler) sessionHandler(w http.ResponseWriter, r *http.Request) error {
	session, err := h.service.CurrentSession(r.Context())
	if err != nil {
		return err
	}

	if session == nil {
		render.JSON(w, r, SessionResponse{})
		return nil
	}

	render.JSON(w, r, SessionResponse{User: &session.User, IsLoggedIn: true})

	return nil
}

// @Security	ApiKeyAuth
// @Tags		auth
// @Success	204
// @Router		/auth/logout [post]
func (h *handler) logoutHandler(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Logout(r.Context()); err != nil {
		return err
	}

	h.clearCookie(w)
	w.WriteHeader(http.StatusNoContent)

	return nil
}
