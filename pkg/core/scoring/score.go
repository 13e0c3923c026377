package scoring

import "fmt"

// Score is the three level result of an evaluation.
// A schedule is feasible when Hard is not negative.
type Score struct {
	Hard   int64 `json:"hard" yaml:"hard"`
	Medium int64 `json:"medium" yaml:"medium"`
	Soft   int64 `json:"soft" yaml:"soft"`
}

// String renders the score as "<hard>hard/<medium>medium/<soft>soft"
func (s Score) String() string {
	return fmt.Sprintf("%dhard/%dmedium/%dsoft", s.Hard, s.Medium, s.Soft)
}

// IsFeasible returns true if no hard constraint is broken
func (s Score) IsFeasible() bool {
	return s.Hard >= 0
}

// Add returns the level-wise sum of both scores
func (s Score) Add(other Score) Score {
	return Score{
		Hard:   s.Hard + other.Hard,
		Medium: s.Medium + other.Medium,
		Soft:   s.Soft + other.Soft,
	}
}

// Compare orders scores by hard, then medium, then soft.
// It returns -1, 0 or +1 when s is worse than, equal to or better than other.
func (s Score) Compare(other Score) int {
	for _, pair := range [3][2]int64{{s.Hard, other.Hard}, {s.Medium, other.Medium}, {s.Soft, other.Soft}} {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// add accumulates a signed value at the given level
func (s *Score) add(level Level, value int64) {
	switch level {
	case Hard:
		s.Hard += value
	case Medium:
		s.Medium += value
	default:
		s.Soft += value
	}
}

// Of returns the component of the score at the given level
func (s Score) Of(level Level) int64 {
	switch level {
	case Hard:
		return s.Hard
	case Medium:
		return s.Medium
	default:
		return s.Soft
	}
}
