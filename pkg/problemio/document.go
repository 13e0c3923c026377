package problemio

// Document is the serialized form of a conference problem together with one schedule.
// Talks carrying a timeslot and/or room are (partially) assigned.
type Document struct {
	// ID identifies the schedule. A uuid is generated when it is empty.
	ID   string `yaml:"id,omitempty" json:"id,omitempty"`
	Name string `yaml:"name" json:"name" validate:"required"`

	TalkTypes      []TalkTypeDoc       `yaml:"talkTypes" json:"talkTypes" validate:"dive"`
	Timeslots      []TimeslotDoc       `yaml:"timeslots" json:"timeslots" validate:"dive"`
	TimeslotSeries []TimeslotSeriesDoc `yaml:"timeslotSeries,omitempty" json:"timeslotSeries,omitempty" validate:"dive"`
	Rooms          []RoomDoc           `yaml:"rooms" json:"rooms" validate:"dive"`
	Speakers       []SpeakerDoc        `yaml:"speakers" json:"speakers" validate:"dive"`
	Talks          []TalkDoc           `yaml:"talks" json:"talks" validate:"dive"`
}

type TalkTypeDoc struct {
	Name string `yaml:"name" json:"name" validate:"required"`
}

// TimeslotDoc accepts RFC 3339 times or local "2006-01-02T15:04" times (interpreted as UTC)
type TimeslotDoc struct {
	ID        string   `yaml:"id" json:"id" validate:"required"`
	Start     string   `yaml:"start" json:"start" validate:"required"`
	End       string   `yaml:"end" json:"end" validate:"required"`
	TalkTypes []string `yaml:"talkTypes" json:"talkTypes"`
	Tags      []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// TimeslotSeriesDoc expands into one timeslot per occurrence of an RFC 5545 recurrence rule.
// The rule must be bounded by COUNT or UNTIL.
type TimeslotSeriesDoc struct {
	IDPrefix        string   `yaml:"idPrefix" json:"idPrefix" validate:"required"`
	Start           string   `yaml:"start" json:"start" validate:"required"`
	RRule           string   `yaml:"rrule" json:"rrule" validate:"required"`
	DurationMinutes int      `yaml:"durationMinutes" json:"durationMinutes" validate:"required,min=1"`
	TalkTypes       []string `yaml:"talkTypes" json:"talkTypes"`
	Tags            []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

type RoomDoc struct {
	ID                   string   `yaml:"id" json:"id" validate:"required"`
	Name                 string   `yaml:"name,omitempty" json:"name,omitempty"`
	Capacity             int      `yaml:"capacity" json:"capacity" validate:"min=0"`
	TalkTypes            []string `yaml:"talkTypes" json:"talkTypes"`
	UnavailableTimeslots []string `yaml:"unavailableTimeslots,omitempty" json:"unavailableTimeslots,omitempty"`
	Tags                 []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// TagPreferences are the eight required/preferred/prohibited/undesired tag sets
// shared by speakers and talks
type TagPreferences struct {
	RequiredTimeslotTags   []string `yaml:"requiredTimeslotTags,omitempty" json:"requiredTimeslotTags,omitempty"`
	PreferredTimeslotTags  []string `yaml:"preferredTimeslotTags,omitempty" json:"preferredTimeslotTags,omitempty"`
	ProhibitedTimeslotTags []string `yaml:"prohibitedTimeslotTags,omitempty" json:"prohibitedTimeslotTags,omitempty"`
	UndesiredTimeslotTags  []string `yaml:"undesiredTimeslotTags,omitempty" json:"undesiredTimeslotTags,omitempty"`
	RequiredRoomTags       []string `yaml:"requiredRoomTags,omitempty" json:"requiredRoomTags,omitempty"`
	PreferredRoomTags      []string `yaml:"preferredRoomTags,omitempty" json:"preferredRoomTags,omitempty"`
	ProhibitedRoomTags     []string `yaml:"prohibitedRoomTags,omitempty" json:"prohibitedRoomTags,omitempty"`
	UndesiredRoomTags      []string `yaml:"undesiredRoomTags,omitempty" json:"undesiredRoomTags,omitempty"`
}

type SpeakerDoc struct {
	ID                   string   `yaml:"id" json:"id" validate:"required"`
	Name                 string   `yaml:"name,omitempty" json:"name,omitempty"`
	UnavailableTimeslots []string `yaml:"unavailableTimeslots,omitempty" json:"unavailableTimeslots,omitempty"`

	TagPreferences `yaml:",inline" json:",inline"`
}

type TalkDoc struct {
	Code     string   `yaml:"code" json:"code" validate:"required"`
	Title    string   `yaml:"title,omitempty" json:"title,omitempty"`
	TalkType string   `yaml:"talkType" json:"talkType" validate:"required"`
	Speakers []string `yaml:"speakers,omitempty" json:"speakers,omitempty"`

	ThemeTrackTags []string `yaml:"themeTrackTags,omitempty" json:"themeTrackTags,omitempty"`
	SectorTags     []string `yaml:"sectorTags,omitempty" json:"sectorTags,omitempty"`
	AudienceTypes  []string `yaml:"audienceTypes,omitempty" json:"audienceTypes,omitempty"`
	AudienceLevel  int      `yaml:"audienceLevel,omitempty" json:"audienceLevel,omitempty" validate:"min=0"`
	ContentTags    []string `yaml:"contentTags,omitempty" json:"contentTags,omitempty"`
	Language       string   `yaml:"language,omitempty" json:"language,omitempty"`

	TagPreferences `yaml:",inline" json:",inline"`

	MutuallyExclusiveTalksTags []string `yaml:"mutuallyExclusiveTalksTags,omitempty" json:"mutuallyExclusiveTalksTags,omitempty"`
	PrerequisiteTalks          []string `yaml:"prerequisiteTalks,omitempty" json:"prerequisiteTalks,omitempty"`

	FavoriteCount    int `yaml:"favoriteCount,omitempty" json:"favoriteCount,omitempty" validate:"min=0"`
	CrowdControlRisk int `yaml:"crowdControlRisk,omitempty" json:"crowdControlRisk,omitempty" validate:"min=0"`

	PublishedTimeslot string `yaml:"publishedTimeslot,omitempty" json:"publishedTimeslot,omitempty"`
	PublishedRoom     string `yaml:"publishedRoom,omitempty" json:"publishedRoom,omitempty"`
	Pinned            bool   `yaml:"pinned,omitempty" json:"pinned,omitempty"`

	// Timeslot and Room are the talk's placement in this schedule. Either may be empty.
	Timeslot string `yaml:"timeslot,omitempty" json:"timeslot,omitempty"`
	Room     string `yaml:"room,omitempty" json:"room,omitempty"`
}
