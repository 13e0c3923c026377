package model

import "fmt"

// Placement is where and when a talk is held. Either field may be nil.
type Placement struct {
	Timeslot *Timeslot
	Room     *Room
}

// IsAssigned returns true if both the timeslot and the room are set
func (p Placement) IsAssigned() bool {
	return p.Timeslot != nil && p.Room != nil
}

// Assignment is the mutable placement of every talk of a problem, indexed like Problem.Talks.
// It is owned by a single search job and must not be shared between concurrent jobs.
type Assignment struct {
	problem    *Problem
	placements []Placement
}

// NewAssignment creates an assignment with every talk unassigned
func NewAssignment(problem *Problem) *Assignment {
	return &Assignment{
		problem:    problem,
		placements: make([]Placement, len(problem.Talks)),
	}
}

// Problem returns the problem the assignment belongs to
func (a *Assignment) Problem() *Problem {
	return a.problem
}

// Len returns the number of talks
func (a *Assignment) Len() int {
	return len(a.placements)
}

// Placement returns the placement of the talk at the given index
func (a *Assignment) Placement(index int) Placement {
	return a.placements[index]
}

// Set places the talk at the given index. Nil values unassign the field.
func (a *Assignment) Set(index int, timeslot *Timeslot, room *Room) {
	a.placements[index] = Placement{Timeslot: timeslot, Room: room}
}

// Assign places the talk with the given code by timeslot and room id.
// An empty id leaves that field unassigned. Compatibility is not checked.
func (a *Assignment) Assign(code, timeslotID, roomID string) error {
	index, ok := a.problem.TalkIndex(code)
	if !ok {
		return fmt.Errorf("%w: talk %s", ErrUnknownReference, code)
	}

	var placement Placement
	if timeslotID != "" {
		placement.Timeslot = a.problem.Timeslot(timeslotID)
		if placement.Timeslot == nil {
			return fmt.Errorf("%w: talk %s assigned to timeslot %s", ErrUnknownReference, code, timeslotID)
		}
	}
	if roomID != "" {
		placement.Room = a.problem.Room(roomID)
		if placement.Room == nil {
			return fmt.Errorf("%w: talk %s assigned to room %s", ErrUnknownReference, code, roomID)
		}
	}

	a.placements[index] = placement
	return nil
}

// Unassign clears the placement of the talk with the given code
func (a *Assignment) Unassign(code string) error {
	index, ok := a.problem.TalkIndex(code)
	if !ok {
		return fmt.Errorf("%w: talk %s", ErrUnknownReference, code)
	}
	a.placements[index] = Placement{}
	return nil
}

// Clone returns an independent copy sharing the same problem facts
func (a *Assignment) Clone() *Assignment {
	return &Assignment{
		problem:    a.problem,
		placements: append([]Placement(nil), a.placements...),
	}
}

// AssignedCount returns the number of talks with both a timeslot and a room
func (a *Assignment) AssignedCount() int {
	count := 0
	for _, placement := range a.placements {
		if placement.IsAssigned() {
			count++
		}
	}
	return count
}

// Scheduled joins the talk facts with their placements, in talk code order
func (a *Assignment) Scheduled() []ScheduledTalk {
	scheduled := make([]ScheduledTalk, len(a.placements))
	for i, talk := range a.problem.Talks {
		scheduled[i] = ScheduledTalk{
			Talk:     talk,
			Index:    i,
			Timeslot: a.placements[i].Timeslot,
			Room:     a.placements[i].Room,
		}
	}
	return scheduled
}
