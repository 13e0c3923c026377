package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jakechorley/conference-scheduling/internal/config"
	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
	"github.com/jakechorley/conference-scheduling/pkg/metrics"
)

// EvaluationResult is the outcome of scoring one schedule document.
// Err is set when the document could not be loaded; the other fields are then empty.
type EvaluationResult struct {
	Path          string
	ScheduleID    string
	Name          string
	TotalTalks    int
	AssignedTalks int
	Analysis      *scoring.Analysis
	Err           error
}

// Score returns the analysed score, or the zero score when evaluation failed
func (r EvaluationResult) Score() scoring.Score {
	if r.Analysis == nil {
		return scoring.Score{}
	}
	return r.Analysis.Score
}

// EvaluateSchedules scores every schedule document at paths with one calculator.
// Documents are independent and evaluated concurrently, at most cfg.Concurrency at a time.
// Results keep the order of paths. A document that fails to load is reported in its result
// and does not stop the others; only context cancellation aborts the run.
// The last-score gauges reflect the final successfully loaded document in paths.
func EvaluateSchedules(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	calculator *scoring.Calculator,
	recorder *metrics.Manager,
	paths []string,
) ([]EvaluationResult, error) {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))
	logger.Debug("Starting evaluation run",
		zap.Int("documents", len(paths)),
		zap.Int("concurrency", cfg.Concurrency))

	results := make([]EvaluationResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = evaluateSchedule(path, calculator, recorder, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation run %s cancelled: %w", runID, err)
	}

	failed := 0
	var last *EvaluationResult
	for i := range results {
		if results[i].Err != nil {
			failed++
			continue
		}
		last = &results[i]
	}
	if last != nil {
		recorder.RecordLast(last.Score(), last.AssignedTalks)
	}
	logger.Info("Evaluation run finished",
		zap.Int("documents", len(paths)),
		zap.Int("failed", failed))

	return results, nil
}

func evaluateSchedule(path string, calculator *scoring.Calculator, recorder *metrics.Manager, logger *zap.Logger) EvaluationResult {
	schedule, err := LoadSchedule(path, logger)
	if err != nil {
		logger.Error("Failed to load schedule", zap.String("path", path), zap.Error(err))
		recorder.RecordError()
		return EvaluationResult{Path: path, Err: err}
	}

	started := time.Now()
	analysis := calculator.Analyze(schedule.Assignment)
	elapsed := time.Since(started)

	assigned := schedule.Assignment.AssignedCount()
	recorder.RecordAnalysis(analysis, elapsed)

	logger.Debug("Schedule evaluated",
		zap.String("path", path),
		zap.String("schedule_id", schedule.ID),
		zap.String("score", analysis.Score.String()),
		zap.Int("broken_constraints", len(analysis.Broken())),
		zap.Duration("elapsed", elapsed))

	return EvaluationResult{
		Path:          path,
		ScheduleID:    schedule.ID,
		Name:          schedule.Problem.Name,
		TotalTalks:    len(schedule.Problem.Talks),
		AssignedTalks: assigned,
		Analysis:      analysis,
	}
}
