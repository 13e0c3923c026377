package model

// ScheduledTalk is a read-only view of a talk joined with its placement.
// Every derived query returns a neutral value when the talk is not placed.
type ScheduledTalk struct {
	*Talk
	Index    int
	Timeslot *Timeslot
	Room     *Room
}

// IsAssigned returns true if both the timeslot and the room are set
func (s ScheduledTalk) IsAssigned() bool {
	return s.Timeslot != nil && s.Room != nil
}

// DurationInMinutes returns the timeslot duration, or 0 without a timeslot
func (s ScheduledTalk) DurationInMinutes() int {
	if s.Timeslot == nil {
		return 0
	}
	return s.Timeslot.DurationInMinutes()
}

// OverlapsTime returns true if both talks have timeslots that overlap
func (s ScheduledTalk) OverlapsTime(other ScheduledTalk) bool {
	return s.Timeslot != nil && other.Timeslot != nil && s.Timeslot.OverlapsTime(other.Timeslot)
}

// OverlappingDurationInMinutes returns the minutes both talks run at the same time
func (s ScheduledTalk) OverlappingDurationInMinutes(other ScheduledTalk) int {
	if !s.OverlapsTime(other) {
		return 0
	}
	return s.Timeslot.OverlapInMinutes(other.Timeslot)
}

// CombinedDurationInMinutes returns the sum of both durations, or 0 if either has no timeslot
func (s ScheduledTalk) CombinedDurationInMinutes(other ScheduledTalk) int {
	if s.Timeslot == nil || other.Timeslot == nil {
		return 0
	}
	return s.Timeslot.DurationInMinutes() + other.Timeslot.DurationInMinutes()
}

// HasUnavailableRoom returns true if the room cannot be used during the assigned timeslot
func (s ScheduledTalk) HasUnavailableRoom() bool {
	if !s.IsAssigned() {
		return false
	}
	return s.Room.IsUnavailable(s.Timeslot)
}

// SameRoom returns true if both talks are in the same room
func (s ScheduledTalk) SameRoom(other ScheduledTalk) bool {
	if s.Room == nil || other.Room == nil {
		return false
	}
	return s.Room == other.Room || s.Room.ID == other.Room.ID
}

// SameTimeslot returns true if both talks are in the identical timeslot
func (s ScheduledTalk) SameTimeslot(other ScheduledTalk) bool {
	return s.Timeslot.Same(other.Timeslot)
}

// AvailableTags returns the tags of the placement fact matched by the target
func (s ScheduledTalk) AvailableTags(target TagTarget) Tags {
	if target == RoomTarget {
		if s.Room == nil {
			return nil
		}
		return s.Room.Tags
	}
	if s.Timeslot == nil {
		return nil
	}
	return s.Timeslot.Tags
}

// TagGap counts the talk's own tags of the given kind that are missing from
// (required, preferred) or present on (prohibited, undesired) its timeslot or room
func (s ScheduledTalk) TagGap(kind TagKind, target TagTarget) int {
	if !s.IsAssigned() {
		return 0
	}
	return tagGap(kind, s.TagsFor(kind, target), s.AvailableTags(target))
}

// SpeakerTagGap sums TagGap over every speaker of the talk
func (s ScheduledTalk) SpeakerTagGap(kind TagKind, target TagTarget) int {
	if !s.IsAssigned() {
		return 0
	}
	available := s.AvailableTags(target)
	count := 0
	for _, speaker := range s.Speakers {
		count += tagGap(kind, speaker.TagsFor(kind, target), available)
	}
	return count
}

func tagGap(kind TagKind, wanted, available Tags) int {
	if kind.Missing() {
		return MissingCount(wanted, available)
	}
	return OverlappingCount(wanted, available)
}

func (s ScheduledTalk) MissingRequiredTimeslotTagCount() int {
	return s.TagGap(Required, TimeslotTarget)
}

func (s ScheduledTalk) MissingPreferredTimeslotTagCount() int {
	return s.TagGap(Preferred, TimeslotTarget)
}

func (s ScheduledTalk) PrevailingProhibitedTimeslotTagCount() int {
	return s.TagGap(Prohibited, TimeslotTarget)
}

func (s ScheduledTalk) PrevailingUndesiredTimeslotTagCount() int {
	return s.TagGap(Undesired, TimeslotTarget)
}

func (s ScheduledTalk) MissingRequiredRoomTagCount() int {
	return s.TagGap(Required, RoomTarget)
}

func (s ScheduledTalk) MissingPreferredRoomTagCount() int {
	return s.TagGap(Preferred, RoomTarget)
}

func (s ScheduledTalk) PrevailingProhibitedRoomTagCount() int {
	return s.TagGap(Prohibited, RoomTarget)
}

func (s ScheduledTalk) PrevailingUndesiredRoomTagCount() int {
	return s.TagGap(Undesired, RoomTarget)
}

func (s ScheduledTalk) MissingSpeakerRequiredTimeslotTagCount() int {
	return s.SpeakerTagGap(Required, TimeslotTarget)
}

func (s ScheduledTalk) MissingSpeakerPreferredTimeslotTagCount() int {
	return s.SpeakerTagGap(Preferred, TimeslotTarget)
}

func (s ScheduledTalk) PrevailingSpeakerProhibitedTimeslotTagCount() int {
	return s.SpeakerTagGap(Prohibited, TimeslotTarget)
}

func (s ScheduledTalk) PrevailingSpeakerUndesiredTimeslotTagCount() int {
	return s.SpeakerTagGap(Undesired, TimeslotTarget)
}

func (s ScheduledTalk) MissingSpeakerRequiredRoomTagCount() int {
	return s.SpeakerTagGap(Required, RoomTarget)
}

func (s ScheduledTalk) MissingSpeakerPreferredRoomTagCount() int {
	return s.SpeakerTagGap(Preferred, RoomTarget)
}

func (s ScheduledTalk) PrevailingSpeakerProhibitedRoomTagCount() int {
	return s.SpeakerTagGap(Prohibited, RoomTarget)
}

func (s ScheduledTalk) PrevailingSpeakerUndesiredRoomTagCount() int {
	return s.SpeakerTagGap(Undesired, RoomTarget)
}
