package app_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/protech-admin/internal/app"
	authdb "github.com/xw1nchester/protech-admin/internal/auth/db"
	"github.com/xw1nchester/protech-admin/internal/auth/password"
	"github.com/xw1nchester/protech-admin/internal/catalog/brand"
	"github.com/xw1nchester/protech-admin/internal/config"
	"github.com/xw1nchester/protech-admin/internal/lib/api/response"
	pgclient "github.com/xw1nchester/protech-admin/pkg/client/postgresql"
	"go.uber.org/zap"
)

const (
	adminEmail    = "admin@protech.test"
	adminPassword = "s3cret-pass"
)

type APITestSuite struct {
	suite.Suite
	cfg      *config.Config
	dbClient *pgxpool.Pool
	logger   *zap.Logger
	baseUrl  string
	app      *app.App
}

// The suite needs a running Postgres and MinIO described by TEST_CONFIG_PATH.
func TestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	if os.Getenv("TEST_CONFIG_PATH") == "" {
		t.Skip("TEST_CONFIG_PATH is not set")
	}

	suite.Run(t, &APITestSuite{})
}

func (s *APITestSuite) SetupSuite() {
	cfg := config.MustLoadByPath(os.Getenv("TEST_CONFIG_PATH"))

	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	s.Require().NoError(err)

	log := zap.NewNop()

	s.applyMigrations(cfg, true)

	application := app.NewApp(log, *cfg)

	s.cfg = cfg
	s.dbClient = pgClient
	s.logger = log
	s.baseUrl = fmt.Sprintf("http://localhost%s/api", cfg.HTTPServer.Address)
	s.app = application

	go application.MustRun()

	time.Sleep(500 * time.Millisecond)
}

func (s *APITestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.Require().NoError(s.app.Shutdown(ctx))

	s.applyMigrations(s.cfg, false)
	s.dbClient.Close()
}

func (s *APITestSuite) SetupTest() {
	_, err := s.dbClient.Exec(context.Background(), `
		TRUNCATE pro_tech_enquiry, pro_tech_product, pro_tech_category_brand,
			pro_tech_category, pro_tech_brand, sessions, users
		RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)

	hash, err := password.New(s.logger).GenerateHashFromPassword([]byte(adminPassword))
	s.Require().NoError(err)

	_, err = authdb.NewRepository(s.dbClient, s.logger).CreateUser(context.Background(), adminEmail, hash)
	s.Require().NoError(err)
}

func (s *APITestSuite) applyMigrations(cfg *config.Config, isUp bool) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgreSQL.Username,
		cfg.PostgreSQL.Password,
		cfg.PostgreSQL.Host,
		cfg.PostgreSQL.Port,
		cfg.PostgreSQL.Database,
	)

	db, err := sql.Open("postgres", dsn)
	s.Require().NoError(err)
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	s.Require().NoError(err)

	m, err := migrate.NewWithDatabaseInstance("file://../../migrations", "postgres", driver)
	s.Require().NoError(err)

	if isUp {
		err = m.Up()
	} else {
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		s.Require().NoError(err)
	}
}

func (s *APITestSuite) do(method, path, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.baseUrl+path, reader)
	s.Require().NoError(err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *APITestSuite) login() string {
	resp := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": adminEmail, "password": adminPassword})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	body, err := decodeResponseBody[struct {
		AccessToken string `json:"accessToken"`
	}](resp)
	s.Require().NoError(err)
	s.Require().NotEmpty(body.AccessToken)

	return body.AccessToken
}

func (s *APITestSuite) TestPing() {
	response, err := http.Get(fmt.Sprintf("%s/ping", s.baseUrl))
	s.NoError(err)

	byteBody, err := io.ReadAll(response.Body)
	s.NoError(err)

	response.Body.Close()

	s.Equal(http.StatusOK, response.StatusCode)
	s.Equal("pong", string(byteBody))
}

func (s *APITestSuite) TestLogin() {
	resp := s.do(http.MethodPost, "/auth/login", "", map[string]string{"email": adminEmail, "password": "wrong-pass"})
	resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	token := s.login()

	resp = s.do(http.MethodGet, "/auth/session", token, nil)
	session, err := decodeResponseBody[struct {
		IsLoggedIn bool `json:"isLoggedIn"`
	}](resp)
	s.NoError(err)
	s.True(session.IsLoggedIn)

	resp = s.do(http.MethodPost, "/auth/logout", token, nil)
	resp.Body.Close()
	s.Equal(http.StatusNoContent, resp.StatusCode)

	resp = s.do(http.MethodGet, "/brands", token, nil)
	resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *APITestSuite) TestBrandLifecycle() {
	token := s.login()

	resp := s.do(http.MethodPost, "/brands", token, map[string]string{"name": "Acme", "description": "tools"})
	created, err := decodeResponseBody[struct {
		Brand brand.Brand `json:"brand"`
	}](resp)
	s.NoError(err)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Nil(created.Brand.Image)

	resp = s.do(http.MethodGet, "/brands?search=acm", token, nil)
	page, err := decodeResponseBody[response.Page[brand.Brand]](resp)
	s.NoError(err)
	s.Equal(1, page.Total)
	s.Equal("Acme", page.Items[0].Name)

	var categoryID int
	err = s.dbClient.QueryRow(context.Background(), `INSERT INTO pro_tech_category (name) VALUES ('Drills') RETURNING id`).Scan(&categoryID)
	s.Require().NoError(err)

	_, err = s.dbClient.Exec(
		context.Background(),
		`INSERT INTO pro_tech_product (name, part_number, image, category_id, brand_id) VALUES ('X1', 'PN-1', 'http://cdn/x1.png', $1, $2)`,
		categoryID,
		created.Brand.ID,
	)
	s.Require().NoError(err)

	resp = s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", created.Brand.ID), token, nil)
	conflict, err := decodeResponseBody[struct {
		Message string `json:"message"`
	}](resp)
	s.NoError(err)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Cannot delete: This item is still assigned to one or more products.", conflict.Message)
}

func decodeResponseBody[T any](resp *http.Response) (*T, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &result, nil
}
