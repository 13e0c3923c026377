package scoring

import (
	"github.com/samber/lo"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// ConstraintAnalysis is the contribution of one constraint to a score
type ConstraintAnalysis struct {
	Name   string `json:"name" yaml:"name"`
	Level  Level  `json:"level" yaml:"level"`
	Impact Impact `json:"impact" yaml:"impact"`
	Weight int    `json:"weight" yaml:"weight"`

	// Units is the sum of unweighted match units
	Units int64 `json:"units" yaml:"units"`
	// Score is the signed, weighted contribution at Level
	Score      int64 `json:"score" yaml:"score"`
	MatchCount int   `json:"matchCount" yaml:"matchCount"`

	Justifications []Justification `json:"justifications,omitempty" yaml:"justifications,omitempty"`
}

// Analysis breaks a score down per constraint
type Analysis struct {
	Score       Score                `json:"score" yaml:"score"`
	Constraints []ConstraintAnalysis `json:"constraints" yaml:"constraints"`
}

// Analyze evaluates every constraint once and reports its contribution together with
// its justifications. Analysis.Score always equals Evaluate on the same assignment.
// Disabled constraints are listed with a zero weight and no matches.
func (c *Calculator) Analyze(assignment *model.Assignment) *Analysis {
	solution := NewSolution(assignment, c.settings)

	analysis := &Analysis{Constraints: make([]ConstraintAnalysis, 0, len(c.constraints))}
	for _, constraint := range c.constraints {
		weight := c.Weight(constraint.Name())
		entry := ConstraintAnalysis{
			Name:   constraint.Name(),
			Level:  constraint.Level(),
			Impact: constraint.Impact(),
			Weight: weight,
		}

		if weight != 0 {
			constraint.Evaluate(solution, func(m Match) {
				entry.Units += m.Units
				entry.MatchCount++
				entry.Justifications = append(entry.Justifications, newJustification(constraint, int64(weight), m))
			})
			entry.Score = constraint.Impact().sign() * int64(weight) * entry.Units
			analysis.Score.add(entry.Level, entry.Score)
		}

		analysis.Constraints = append(analysis.Constraints, entry)
	}
	return analysis
}

// Broken returns the constraints with at least one match
func (a *Analysis) Broken() []ConstraintAnalysis {
	return lo.Filter(a.Constraints, func(entry ConstraintAnalysis, _ int) bool {
		return entry.MatchCount > 0
	})
}

// Constraint returns the entry with the given name
func (a *Analysis) Constraint(name string) (ConstraintAnalysis, bool) {
	return lo.Find(a.Constraints, func(entry ConstraintAnalysis) bool {
		return entry.Name == name
	})
}
