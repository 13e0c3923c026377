package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/internal/config"
	"github.com/jakechorley/conference-scheduling/pkg/core/model"
	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/problemio"
)

// Schedule is a loaded problem document: the problem facts and the schedule it carries
type Schedule struct {
	ID         string
	Path       string
	Problem    *model.Problem
	Assignment *model.Assignment
}

// LoadSchedule reads a YAML or JSON problem document and builds its problem and assignment
func LoadSchedule(path string, logger *zap.Logger) (*Schedule, error) {
	logger.Debug("Loading schedule", zap.String("path", path))

	doc, err := problemio.Load(path)
	if err != nil {
		return nil, err
	}

	problem, assignment, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build schedule from %s: %w", path, err)
	}

	logger.Debug("Schedule loaded",
		zap.String("schedule_id", doc.ID),
		zap.String("name", problem.Name),
		zap.Int("timeslots", len(problem.Timeslots)),
		zap.Int("rooms", len(problem.Rooms)),
		zap.Int("speakers", len(problem.Speakers)),
		zap.Int("talks", len(problem.Talks)),
		zap.Int("assigned", assignment.AssignedCount()))

	return &Schedule{
		ID:         doc.ID,
		Path:       path,
		Problem:    problem,
		Assignment: assignment,
	}, nil
}

// NewCalculator builds a calculator from the configuration.
// Weights naming unknown constraints are ignored and reported as warnings.
func NewCalculator(cfg *config.Config, logger *zap.Logger) *scoring.Calculator {
	weights := cfg.EffectiveWeights()
	if unknown := scoring.UnknownConstraintNames(weights); len(unknown) > 0 {
		logger.Warn("Ignoring weights for unknown constraints", zap.Strings("constraints", unknown))
	}

	calculator := scoring.NewCalculator(cfg.CalculatorOptions()...)
	logger.Debug("Calculator ready",
		zap.Int("constraints", len(calculator.Constraints())),
		zap.Int("configured_weights", len(weights)),
		zap.Int("minimum_pause_minutes", calculator.Settings().MinimumConsecutiveTalksPauseInMinutes),
		zap.Bool("crowd_control_lone_talks", calculator.Settings().CrowdControlPenalizeLoneTalks))
	return calculator
}
