package scoring

import (
	"maps"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// Calculator turns an assignment into a Score. It is immutable once built and
// safe for concurrent use as long as every call gets its own assignment.
type Calculator struct {
	constraints []Constraint
	weights     map[string]int
	settings    Settings
}

// Option configures a Calculator
type Option func(*Calculator)

// WithWeights sets per-constraint weights by name. Names outside the catalog are ignored
// and constraints without a weight keep DefaultWeight. A weight of 0 disables a constraint.
func WithWeights(weights map[string]int) Option {
	return func(c *Calculator) {
		maps.Copy(c.weights, weights)
	}
}

// WithMinimumConsecutiveTalksPause sets the pause a speaker needs between two talks
func WithMinimumConsecutiveTalksPause(minutes int) Option {
	return func(c *Calculator) {
		c.settings.MinimumConsecutiveTalksPauseInMinutes = minutes
	}
}

// WithCrowdControlLoneTalkPenalty makes crowd control also penalize a risky talk
// that has no other risky talk in its timeslot
func WithCrowdControlLoneTalkPenalty(enabled bool) Option {
	return func(c *Calculator) {
		c.settings.CrowdControlPenalizeLoneTalks = enabled
	}
}

// WithConstraints replaces the catalog with the given constraints
func WithConstraints(constraints ...Constraint) Option {
	return func(c *Calculator) {
		c.constraints = constraints
	}
}

// NewCalculator creates a calculator over the full catalog with default weights
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		constraints: Catalog(),
		weights:     make(map[string]int),
		settings: Settings{
			MinimumConsecutiveTalksPauseInMinutes: DefaultMinimumConsecutiveTalksPauseInMinutes,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Constraints returns the constraints the calculator evaluates, in order
func (c *Calculator) Constraints() []Constraint {
	return c.constraints
}

// Settings returns the problem-wide parameters passed to constraints
func (c *Calculator) Settings() Settings {
	return c.settings
}

// Weight returns the weight applied to the named constraint
func (c *Calculator) Weight(name string) int {
	if weight, ok := c.weights[name]; ok {
		return weight
	}
	return DefaultWeight
}

// Evaluate scores the assignment. Unassigned talks never contribute to constraints
// that need a placement. The result is identical across repeated calls.
func (c *Calculator) Evaluate(assignment *model.Assignment) Score {
	solution := NewSolution(assignment, c.settings)

	var score Score
	for _, constraint := range c.constraints {
		weight := int64(c.Weight(constraint.Name()))
		if weight == 0 {
			continue
		}

		var units int64
		constraint.Evaluate(solution, func(m Match) {
			units += m.Units
		})
		score.add(constraint.Level(), constraint.Impact().sign()*weight*units)
	}
	return score
}
