package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xw1nchester/protech-admin/internal/auth"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgtx "github.com/xw1nchester/protech-admin/pkg/transactor/postgresql"
	"go.uber.org/zap"
)

// Postgres SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrUserExists      = errors.New("user already exists")
)

type repository struct {
	client pgtx.DBExecutor
	logger *zap.Logger
}

func NewRepository(client pgtx.DBExecutor, logger *zap.Logger) *repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE lower(email) = lower($1)`

	logging.LogSQLQuery(r.logger, query)

	return r.scanUser(r.client.QueryRow(ctx, query, email))
}

func (r *repository) GetUserByID(ctx context.Context, id int) (*auth.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	return r.scanUser(r.client.QueryRow(ctx, query, id))
}

func (r *repository) CreateUser(ctx context.Context, email string, passwordHash []byte) (*auth.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at
	`

	logging.LogSQLQuery(r.logger, query)

	u, err := r.scanUser(r.client.QueryRow(ctx, query, email, passwordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrUserExists
		}

		return nil, err
	}

	return u, nil
}

func (r *repository) scanUser(row pgx.Row) (*auth.User, error) {
	var u auth.User

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &u, nil
}

func (r *repository) CreateSession(
	ctx context.Context,
	id string,
	userID int,
	refreshToken string,
	userAgent string,
	expiresAt time.Time,
) error {
	query := `
		INSERT INTO sessions (id, user_id, refresh_token, user_agent, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	logging.LogSQLQuery(r.logger, query)

	_, err := r.client.Exec(ctx, query, id, userID, refreshToken, userAgent, expiresAt)

	return err
}

// GetSession returns the session with id unless it has expired.
func (r *repository) GetSession(ctx context.Context, id string) (*auth.Session, error) {
	query := `
		SELECT s.id, s.refresh_token, s.expires_at, u.id, u.email, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1 AND s.expires_at > now()
	`

	logging.LogSQLQuery(r.logger, query)

	return scanSession(r.client.QueryRow(ctx, query, id))
}

// RotateRefreshToken swaps a live refresh token for newToken and extends the
// session to expiresAt.
func (r *repository) RotateRefreshToken(
	ctx context.Context,
	token string,
	newToken string,
	userAgent string,
	expiresAt time.Time,
) (*auth.Session, error) {
	query := `
		WITH s AS (
			UPDATE sessions
			SET refresh_token = $2, user_agent = $3, expires_at = $4
			WHERE refresh_token = $1 AND expires_at > now()
			RETURNING id, user_id, refresh_token, expires_at
		)
		SELECT s.id, s.refresh_token, s.expires_at, u.id, u.email, u.created_at
		FROM s
		JOIN users u ON u.id = s.user_id
	`

	logging.LogSQLQuery(r.logger, query)

	return scanSession(r.client.QueryRow(ctx, query, token, newToken, userAgent, expiresAt))
}

func (r *repository) DeleteSession(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	logging.LogSQLQuery(r.logger, query)

	tag, err := r.client.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func scanSession(row pgx.Row) (*auth.Session, error) {
	var s auth.Session

	if err := row.Scan(
		&s.ID,
		&s.RefreshToken,
		&s.ExpiresAt,
		&s.User.ID,
		&s.User.Email,
		&s.User.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}

		return nil, err
	}

	return &s, nil
}
