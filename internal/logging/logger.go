package logging

import (
	"github.com/xw1nchester/protech-admin/internal/config"
	"go.uber.org/zap"
)

// New builds the process logger: human-readable for local runs, JSON otherwise.
func New(env string) (*zap.Logger, error) {
	if env == config.EnvLocal {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
