package services

import (
	"github.com/samber/lo"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
)

// ConstraintInfo describes a catalog constraint under the current configuration
type ConstraintInfo struct {
	Name    string
	Level   scoring.Level
	Impact  scoring.Impact
	Weight  int
	Enabled bool
}

// ListConstraints returns the calculator's constraints in evaluation order
func ListConstraints(calculator *scoring.Calculator) []ConstraintInfo {
	return lo.Map(calculator.Constraints(), func(constraint scoring.Constraint, _ int) ConstraintInfo {
		weight := calculator.Weight(constraint.Name())
		return ConstraintInfo{
			Name:    constraint.Name(),
			Level:   constraint.Level(),
			Impact:  constraint.Impact(),
			Weight:  weight,
			Enabled: weight != 0,
		}
	})
}
