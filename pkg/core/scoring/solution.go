package scoring

import "github.com/jakechorley/conference-scheduling/pkg/core/model"

// Settings are the problem-wide parameters constraints read
type Settings struct {
	MinimumConsecutiveTalksPauseInMinutes int

	// CrowdControlPenalizeLoneTalks also penalizes a risky talk that has no
	// other risky talk in its timeslot. By default only a risky talk sharing its
	// timeslot with two or more other risky talks is penalized.
	CrowdControlPenalizeLoneTalks bool
}

// Solution is the read-only view a constraint evaluates: the problem facts joined
// with one assignment. It is built per evaluation and never shared between goroutines.
type Solution struct {
	Problem *model.Problem

	// Talks holds every talk in code order, assigned or not
	Talks []model.ScheduledTalk

	// Assigned holds the talks with both a timeslot and a room, in code order
	Assigned []model.ScheduledTalk

	Settings Settings
}

// NewSolution joins the assignment with its problem facts
func NewSolution(assignment *model.Assignment, settings Settings) *Solution {
	talks := assignment.Scheduled()
	assigned := make([]model.ScheduledTalk, 0, len(talks))
	for _, talk := range talks {
		if talk.IsAssigned() {
			assigned = append(assigned, talk)
		}
	}

	return &Solution{
		Problem:  assignment.Problem(),
		Talks:    talks,
		Assigned: assigned,
		Settings: settings,
	}
}

// forEachUniquePair visits every unordered pair of assigned talks once, lower code first
func (s *Solution) forEachUniquePair(visit func(a, b model.ScheduledTalk)) {
	for i := 0; i < len(s.Assigned); i++ {
		for j := i + 1; j < len(s.Assigned); j++ {
			visit(s.Assigned[i], s.Assigned[j])
		}
	}
}

// forEachOrderedPair visits every ordered pair of assigned talks, self pairs included
func (s *Solution) forEachOrderedPair(visit func(a, b model.ScheduledTalk)) {
	for i := range s.Assigned {
		for j := range s.Assigned {
			visit(s.Assigned[i], s.Assigned[j])
		}
	}
}
