package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/internal/config"
	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/metrics"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg        *config.Config
	Calculator *scoring.Calculator
	Metrics    *metrics.Manager
	Logger     *zap.Logger
	Ctx        context.Context
}
