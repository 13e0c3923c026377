package scoring

import "github.com/jakechorley/conference-scheduling/pkg/core/model"

// Justification explains one triggered instance of a constraint
type Justification struct {
	Constraint  string   `json:"constraint" yaml:"constraint"`
	Level       Level    `json:"level" yaml:"level"`
	TalkCodes   []string `json:"talks" yaml:"talks"`
	SpeakerIDs  []string `json:"speakers,omitempty" yaml:"speakers,omitempty"`
	Description string   `json:"description" yaml:"description"`

	// Units is the unweighted contribution
	Units int64 `json:"units" yaml:"units"`
	// Impact is the signed, weighted contribution to the score at Level
	Impact int64 `json:"impact" yaml:"impact"`
}

// Explain lists a justification for every match of every enabled constraint, in
// catalog order and then in each constraint's match order. It does not affect scoring.
func (c *Calculator) Explain(assignment *model.Assignment) []Justification {
	solution := NewSolution(assignment, c.settings)

	var justifications []Justification
	for _, constraint := range c.constraints {
		weight := int64(c.Weight(constraint.Name()))
		if weight == 0 {
			continue
		}
		constraint.Evaluate(solution, func(m Match) {
			justifications = append(justifications, newJustification(constraint, weight, m))
		})
	}
	return justifications
}

func newJustification(constraint Constraint, weight int64, m Match) Justification {
	return Justification{
		Constraint:  constraint.Name(),
		Level:       constraint.Level(),
		TalkCodes:   m.TalkCodes,
		SpeakerIDs:  m.SpeakerIDs,
		Description: m.Description(),
		Units:       m.Units,
		Impact:      constraint.Impact().sign() * weight * m.Units,
	}
}

// Score returns the justification's impact as a score at its level
func (j Justification) Score() Score {
	var score Score
	score.add(j.Level, j.Impact)
	return score
}
