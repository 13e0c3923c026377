package model

import "errors"

var (
	// ErrInvalidTimeslot is returned when a timeslot does not end after it starts
	ErrInvalidTimeslot = errors.New("invalid timeslot")
	// ErrDuplicateID is returned when two facts of the same kind share an id
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownReference is returned when a fact refers to an id that does not exist
	ErrUnknownReference = errors.New("unknown reference")
)

// Room is a place talks can be held in
type Room struct {
	ID       string
	Name     string
	Capacity int

	// TalkTypes lists the names of the talk types that may use this room
	TalkTypes []string

	// UnavailableTimeslots holds the ids of timeslots the room cannot be used in
	UnavailableTimeslots Tags

	Tags Tags
}

// IsUnavailable returns true if the room cannot be used during the timeslot
func (r *Room) IsUnavailable(timeslot *Timeslot) bool {
	return timeslot != nil && r.UnavailableTimeslots.Contains(timeslot.ID)
}

// Speaker presents one or more talks
type Speaker struct {
	ID   string
	Name string

	// UnavailableTimeslots holds the ids of timeslots the speaker cannot attend
	UnavailableTimeslots Tags

	RequiredTimeslotTags   Tags
	PreferredTimeslotTags  Tags
	ProhibitedTimeslotTags Tags
	UndesiredTimeslotTags  Tags

	RequiredRoomTags   Tags
	PreferredRoomTags  Tags
	ProhibitedRoomTags Tags
	UndesiredRoomTags  Tags
}

// IsUnavailable returns true if the speaker cannot attend the timeslot
func (s *Speaker) IsUnavailable(timeslot *Timeslot) bool {
	return timeslot != nil && s.UnavailableTimeslots.Contains(timeslot.ID)
}

// TagKind is one of the four ways a talk or speaker can relate to a tag
type TagKind int

const (
	Required TagKind = iota
	Preferred
	Prohibited
	Undesired
)

func (k TagKind) String() string {
	switch k {
	case Required:
		return "required"
	case Preferred:
		return "preferred"
	case Prohibited:
		return "prohibited"
	case Undesired:
		return "undesired"
	default:
		return "unknown"
	}
}

// Missing reports whether the kind counts tags that are absent (required, preferred)
// rather than tags that are present (prohibited, undesired)
func (k TagKind) Missing() bool {
	return k == Required || k == Preferred
}

// TagTarget is the fact whose tags a tag preference is matched against
type TagTarget int

const (
	TimeslotTarget TagTarget = iota
	RoomTarget
)

func (t TagTarget) String() string {
	if t == RoomTarget {
		return "room"
	}
	return "timeslot"
}

// TagsFor returns the speaker's tag set for the given kind and target
func (s *Speaker) TagsFor(kind TagKind, target TagTarget) Tags {
	if target == RoomTarget {
		switch kind {
		case Required:
			return s.RequiredRoomTags
		case Preferred:
			return s.PreferredRoomTags
		case Prohibited:
			return s.ProhibitedRoomTags
		default:
			return s.UndesiredRoomTags
		}
	}
	switch kind {
	case Required:
		return s.RequiredTimeslotTags
	case Preferred:
		return s.PreferredTimeslotTags
	case Prohibited:
		return s.ProhibitedTimeslotTags
	default:
		return s.UndesiredTimeslotTags
	}
}

// TalkType groups talks that share compatible timeslots and rooms.
// The compatibility sets are filled by NewProblem.
type TalkType struct {
	Name string

	compatibleTimeslots []*Timeslot
	compatibleRooms     []*Room
}

// CompatibleTimeslots returns the timeslots declaring this talk type, sorted by id
func (tt *TalkType) CompatibleTimeslots() []*Timeslot {
	return tt.compatibleTimeslots
}

// CompatibleRooms returns the rooms declaring this talk type, sorted by id
func (tt *TalkType) CompatibleRooms() []*Room {
	return tt.compatibleRooms
}

// IsCompatibleTimeslot returns true if the timeslot accepts this talk type
func (tt *TalkType) IsCompatibleTimeslot(timeslot *Timeslot) bool {
	for _, candidate := range tt.compatibleTimeslots {
		if candidate.Same(timeslot) {
			return true
		}
	}
	return false
}

// IsCompatibleRoom returns true if the room accepts this talk type
func (tt *TalkType) IsCompatibleRoom(room *Room) bool {
	for _, candidate := range tt.compatibleRooms {
		if candidate == room || candidate.ID == room.ID {
			return true
		}
	}
	return false
}

// Talk holds the immutable facts of a talk. Its placement lives in an Assignment.
type Talk struct {
	Code     string
	Title    string
	TalkType *TalkType
	Speakers []*Speaker

	ThemeTrackTags Tags
	SectorTags     Tags
	AudienceTypes  Tags
	AudienceLevel  int
	ContentTags    Tags
	Language       string

	RequiredTimeslotTags   Tags
	PreferredTimeslotTags  Tags
	ProhibitedTimeslotTags Tags
	UndesiredTimeslotTags  Tags

	RequiredRoomTags   Tags
	PreferredRoomTags  Tags
	ProhibitedRoomTags Tags
	UndesiredRoomTags  Tags

	MutuallyExclusiveTalksTags Tags

	// PrerequisiteTalks holds the codes of talks that must finish before this one starts
	PrerequisiteTalks Tags

	FavoriteCount    int
	CrowdControlRisk int

	PublishedTimeslot *Timeslot
	PublishedRoom     *Room
	Pinned            bool
}

// TagsFor returns the talk's tag set for the given kind and target
func (t *Talk) TagsFor(kind TagKind, target TagTarget) Tags {
	if target == RoomTarget {
		switch kind {
		case Required:
			return t.RequiredRoomTags
		case Preferred:
			return t.PreferredRoomTags
		case Prohibited:
			return t.ProhibitedRoomTags
		default:
			return t.UndesiredRoomTags
		}
	}
	switch kind {
	case Required:
		return t.RequiredTimeslotTags
	case Preferred:
		return t.PreferredTimeslotTags
	case Prohibited:
		return t.ProhibitedTimeslotTags
	default:
		return t.UndesiredTimeslotTags
	}
}

// SpeakerTagsFor returns the union of the speakers' tag sets for the given kind and target
func (t *Talk) SpeakerTagsFor(kind TagKind, target TagTarget) Tags {
	sets := make([]Tags, 0, len(t.Speakers))
	for _, speaker := range t.Speakers {
		sets = append(sets, speaker.TagsFor(kind, target))
	}
	return Union(sets...)
}

// HasSpeaker returns true if the speaker presents this talk
func (t *Talk) HasSpeaker(speaker *Speaker) bool {
	for _, candidate := range t.Speakers {
		if candidate == speaker || candidate.ID == speaker.ID {
			return true
		}
	}
	return false
}

// MutualSpeakers returns the distinct speakers of this talk that also present the other,
// in this talk's order. A speaker listed twice is returned once.
func (t *Talk) MutualSpeakers(other *Talk) []*Speaker {
	var mutual []*Speaker
	seen := make(map[string]struct{}, len(t.Speakers))
	for _, speaker := range t.Speakers {
		if _, ok := seen[speaker.ID]; ok {
			continue
		}
		seen[speaker.ID] = struct{}{}
		if other.HasSpeaker(speaker) {
			mutual = append(mutual, speaker)
		}
	}
	return mutual
}

// HasMutualSpeaker returns true if both talks share at least one speaker
func (t *Talk) HasMutualSpeaker(other *Talk) bool {
	for _, speaker := range t.Speakers {
		if other.HasSpeaker(speaker) {
			return true
		}
	}
	return false
}

// HasPrerequisite returns true if the talk with the given code must precede this one
func (t *Talk) HasPrerequisite(code string) bool {
	return t.PrerequisiteTalks.Contains(code)
}

func (t *Talk) OverlappingThemeTrackCount(other *Talk) int {
	return OverlappingCount(t.ThemeTrackTags, other.ThemeTrackTags)
}

func (t *Talk) OverlappingSectorCount(other *Talk) int {
	return OverlappingCount(t.SectorTags, other.SectorTags)
}

func (t *Talk) OverlappingAudienceTypeCount(other *Talk) int {
	return OverlappingCount(t.AudienceTypes, other.AudienceTypes)
}

func (t *Talk) OverlappingContentCount(other *Talk) int {
	return OverlappingCount(t.ContentTags, other.ContentTags)
}

func (t *Talk) OverlappingMutuallyExclusiveTalksTagCount(other *Talk) int {
	return OverlappingCount(t.MutuallyExclusiveTalksTags, other.MutuallyExclusiveTalksTags)
}
