package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/protech-admin/internal/app"
	"github.com/xw1nchester/protech-admin/internal/config"
	"github.com/xw1nchester/protech-admin/internal/logging"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title						Protech Admin API
// @version					1.0
// @BasePath					/api
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.MustLoad()

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	go application.MustRun()

	log.Info("server started", zap.String("addr", cfg.HTTPServer.Address), zap.String("env", cfg.Env))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sign := <-stop

	log.Info("stopping server", zap.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.Error("failed to stop server gracefully", zap.Error(err))
		return
	}

	log.Info("server stopped")
}
