package rom

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// NewLogger builds a zap backed logr.Logger.  level is a zap level name
// ("debug", "info", "warn", "error"); operators log at V(1), which needs
// "debug".  An empty level disables logging.  development selects zap's
// human readable console encoder instead of JSON.
func NewLogger(level string, development bool) (logr.Logger, error) {
	if level == "" {
		return logr.Discard(), nil
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("rom: log level: %w", err)
	}
	cfg.Level = lvl

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("rom: building logger: %w", err)
	}
	return zapr.NewLogger(z).WithName("rom"), nil
}
