package services

import (
	"go.uber.org/zap"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
)

// ExplainResult lists every constraint match of one schedule
type ExplainResult struct {
	Schedule       *Schedule
	Score          scoring.Score
	Justifications []scoring.Justification
}

// ExplainSchedule loads one schedule and records a justification for every match.
// The score is the sum of the justification impacts.
func ExplainSchedule(path string, calculator *scoring.Calculator, logger *zap.Logger) (*ExplainResult, error) {
	schedule, err := LoadSchedule(path, logger)
	if err != nil {
		return nil, err
	}

	justifications := calculator.Explain(schedule.Assignment)

	var score scoring.Score
	for _, justification := range justifications {
		score = score.Add(justification.Score())
	}

	logger.Debug("Schedule explained",
		zap.String("schedule_id", schedule.ID),
		zap.Int("justifications", len(justifications)),
		zap.String("score", score.String()))

	return &ExplainResult{
		Schedule:       schedule,
		Score:          score,
		Justifications: justifications,
	}, nil
}

// AnalyzeSchedule loads one schedule and breaks its score down per constraint
func AnalyzeSchedule(path string, calculator *scoring.Calculator, logger *zap.Logger) (*Schedule, *scoring.Analysis, error) {
	schedule, err := LoadSchedule(path, logger)
	if err != nil {
		return nil, nil, err
	}

	analysis := calculator.Analyze(schedule.Assignment)
	logger.Debug("Schedule analyzed",
		zap.String("schedule_id", schedule.ID),
		zap.Int("broken_constraints", len(analysis.Broken())),
		zap.String("score", analysis.Score.String()))

	return schedule, analysis, nil
}
