package model

import (
	"fmt"
	"time"
)

// Timeslot is a period of the conference that talks can be scheduled in
type Timeslot struct {
	ID    string
	Start time.Time
	End   time.Time

	// TalkTypes lists the names of the talk types that may use this timeslot
	TalkTypes []string

	Tags Tags

	// Cached, recomputed by SetTimes
	durationInMinutes int
}

// NewTimeslot creates a timeslot, rejecting an end that is not after the start
func NewTimeslot(id string, start, end time.Time, talkTypes []string, tags Tags) (*Timeslot, error) {
	timeslot := &Timeslot{
		ID:        id,
		TalkTypes: talkTypes,
		Tags:      tags,
	}
	if err := timeslot.SetTimes(start, end); err != nil {
		return nil, err
	}
	return timeslot, nil
}

// SetTimes sets the start and end instants and recomputes the cached duration.
// A zero start or end leaves the timeslot without a duration.
func (t *Timeslot) SetTimes(start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		return fmt.Errorf("%w: timeslot %s ends at %s which is not after its start %s",
			ErrInvalidTimeslot, t.ID, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	t.Start = start
	t.End = end
	if start.IsZero() || end.IsZero() {
		t.durationInMinutes = 0
	} else {
		t.durationInMinutes = int(end.Sub(start) / time.Minute)
	}
	return nil
}

// DurationInMinutes returns the cached length of the timeslot
func (t *Timeslot) DurationInMinutes() int {
	return t.durationInMinutes
}

// same reports whether both values denote the same timeslot
func (t *Timeslot) same(other *Timeslot) bool {
	return t == other || (t.ID != "" && t.ID == other.ID)
}

// Same returns true if both timeslots are the same fact (identical object or id)
func (t *Timeslot) Same(other *Timeslot) bool {
	if t == nil || other == nil {
		return false
	}
	return t.same(other)
}

// OverlapsTime reports half-open interval overlap: a.start < b.end && b.start < a.end.
// A timeslot always overlaps itself.
func (t *Timeslot) OverlapsTime(other *Timeslot) bool {
	if t.same(other) {
		return true
	}
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// OverlapInMinutes returns the minutes shared by both timeslots.
// The result is only meaningful when the timeslots overlap.
func (t *Timeslot) OverlapInMinutes(other *Timeslot) int {
	if t.same(other) {
		return t.durationInMinutes
	}

	startMaximum := t.Start
	if t.Start.Before(other.Start) {
		startMaximum = other.Start
	}
	endMinimum := t.End
	if other.End.Before(t.End) {
		endMinimum = other.End
	}
	return int(endMinimum.Sub(startMaximum) / time.Minute)
}

// StartsAfter returns true if this timeslot starts at or after the other ends
func (t *Timeslot) StartsAfter(other *Timeslot) bool {
	return !other.End.After(t.Start)
}

// EndsBefore returns true if this timeslot ends at or before the other starts
func (t *Timeslot) EndsBefore(other *Timeslot) bool {
	return !t.End.After(other.Start)
}

// IsOnSameDayAs compares the calendar dates of both start instants
func (t *Timeslot) IsOnSameDayAs(other *Timeslot) bool {
	return civilDate(t.Start).Equal(civilDate(other.Start))
}

// PauseExists returns true if there are at least minMinutes between the two timeslots.
// Overlapping timeslots never have a pause and timeslots on different days always do.
func (t *Timeslot) PauseExists(other *Timeslot, minMinutes int) bool {
	if t.OverlapsTime(other) {
		return false
	}
	if !t.IsOnSameDayAs(other) {
		return true
	}

	var pause time.Duration
	if t.StartsAfter(other) {
		pause = t.Start.Sub(other.End)
	} else {
		pause = other.Start.Sub(t.End)
	}
	return int(pause/time.Minute) >= minMinutes
}

// DaysBetween returns the absolute number of calendar days between two instants
func DaysBetween(a, b time.Time) int {
	days := int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// civilDate truncates an instant to midnight UTC of its calendar date in its own location
func civilDate(instant time.Time) time.Time {
	year, month, day := instant.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
