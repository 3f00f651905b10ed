package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	authdb "github.com/xw1nchester/protech-admin/internal/auth/db"
	jwtauth "github.com/xw1nchester/protech-admin/internal/auth/jwt"
	"github.com/xw1nchester/protech-admin/internal/auth/password"
	authservice "github.com/xw1nchester/protech-admin/internal/auth/service"
	"github.com/xw1nchester/protech-admin/internal/config"
	"github.com/xw1nchester/protech-admin/internal/logging"
	pgclient "github.com/xw1nchester/protech-admin/pkg/client/postgresql"
	"go.uber.org/zap"
)

type adminRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func main() {
	var configPath, email, pass string

	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to config file")
	flag.StringVar(&email, "email", "", "admin email")
	flag.StringVar(&pass, "password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if err := validator.New().Struct(adminRequest{Email: email, Password: pass}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoadByPath(configPath)

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	pgClient, err := pgclient.NewClient(ctx, pgclient.Config{
		Username: cfg.PostgreSQL.Username,
		Password: cfg.PostgreSQL.Password,
		Host:     cfg.PostgreSQL.Host,
		Port:     cfg.PostgreSQL.Port,
		Database: cfg.PostgreSQL.Database,
	})
	if err != nil {
		log.Fatal(err.Error())
	}
	defer pgClient.Close()

	authService := authservice.NewService(
		authdb.NewRepository(pgClient, log),
		jwtauth.NewManager(cfg.JWT),
		password.New(log),
		log,
	)
	defer authService.Close()

	user, err := authService.CreateUser(ctx, email, pass)
	if err != nil {
		log.Fatal("failed to create admin", zap.Error(err))
	}

	log.Info("admin created", zap.Int("id", user.ID), zap.String("email", user.Email))
}
