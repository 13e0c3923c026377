package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/cmd/cli/commands"
	"github.com/jakechorley/conference-scheduling/internal/config"
	"github.com/jakechorley/conference-scheduling/pkg/core/services"
	"github.com/jakechorley/conference-scheduling/pkg/metrics"
	"github.com/jakechorley/conference-scheduling/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
	stop       context.CancelFunc
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cli",
		Short:        "Conference scheduling CLI - Score talk schedules",
		Long:         `A CLI tool for scoring, explaining and validating conference talk schedules against the scheduling constraints.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if stop != nil {
				stop()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to conference_config.yaml (default: current then home directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs on the console")

	rootCmd.AddCommand(commands.EvaluateCmd(app))
	rootCmd.AddCommand(commands.ExplainCmd(app))
	rootCmd.AddCommand(commands.AnalyzeCmd(app))
	rootCmd.AddCommand(commands.ConstraintsCmd(app))
	rootCmd.AddCommand(commands.ValidateCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads the configuration, then sets up the logger, metrics and calculator
func initApp() error {
	cfg, usingDefaults, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Cfg = cfg

	app.Logger, _, err = logging.InitLogger(logging.Options{Env: env, Dir: cfg.LogDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))
	if usingDefaults {
		app.Logger.Info("No config file found, using defaults")
	} else {
		app.Logger.Debug("Configuration loaded successfully")
	}

	app.Ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	app.Metrics = metrics.NewManager()
	app.Calculator = services.NewCalculator(cfg, app.Logger)

	return nil
}

// loadConfig reads the explicit --config path, or searches the default locations
// and falls back to the defaults when no file exists
func loadConfig() (*config.Config, bool, error) {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		return cfg, false, err
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.Default(), true, nil
	}
	return cfg, false, err
}
