package scoring

// Constraint names. They are stable and used as configuration keys.
const (
	RoomUnavailableTimeslot           = "Room unavailable timeslot"
	RoomConflict                      = "Room conflict"
	SpeakerUnavailableTimeslot        = "Speaker unavailable timeslot"
	SpeakerConflict                   = "Speaker conflict"
	TalkPrerequisiteTalks             = "Talk prerequisite talks"
	TalkMutuallyExclusiveTalksTags    = "Talk mutually-exclusive-talks tags"
	ConsecutiveTalksPause             = "Consecutive talks pause"
	CrowdControl                      = "Crowd control"
	SpeakerRequiredTimeslotTags       = "Speaker required timeslot tags"
	SpeakerProhibitedTimeslotTags     = "Speaker prohibited timeslot tags"
	TalkRequiredTimeslotTags          = "Talk required timeslot tags"
	TalkProhibitedTimeslotTags        = "Talk prohibited timeslot tags"
	SpeakerRequiredRoomTags           = "Speaker required room tags"
	SpeakerProhibitedRoomTags         = "Speaker prohibited room tags"
	TalkRequiredRoomTags              = "Talk required room tags"
	TalkProhibitedRoomTags            = "Talk prohibited room tags"
	PublishedTimeslot                 = "Published timeslot"
	PublishedRoom                     = "Published room"
	ThemeTrackConflict                = "Theme track conflict"
	ThemeTrackRoomStability           = "Theme track room stability"
	SectorConflict                    = "Sector conflict"
	AudienceTypeDiversity             = "Audience type diversity"
	AudienceTypeThemeTrackConflict    = "Audience type theme track conflict"
	AudienceLevelDiversity            = "Audience level diversity"
	ContentAudienceLevelFlowViolation = "Content audience level flow violation"
	ContentConflict                   = "Content conflict"
	LanguageDiversity                 = "Language diversity"
	SameDayTalks                      = "Same day talks"
	PopularTalks                      = "Popular talks"
	SpeakerPreferredTimeslotTags      = "Speaker preferred timeslot tags"
	SpeakerUndesiredTimeslotTags      = "Speaker undesired timeslot tags"
	TalkPreferredTimeslotTags         = "Talk preferred timeslot tags"
	TalkUndesiredTimeslotTags         = "Talk undesired timeslot tags"
	SpeakerPreferredRoomTags          = "Speaker preferred room tags"
	SpeakerUndesiredRoomTags          = "Speaker undesired room tags"
	TalkPreferredRoomTags             = "Talk preferred room tags"
	TalkUndesiredRoomTags             = "Talk undesired room tags"
	SpeakerMakespan                   = "Speaker makespan"
)

const (
	// DefaultWeight is applied to every constraint without a configured weight
	DefaultWeight = 1

	// DefaultMinimumConsecutiveTalksPauseInMinutes is the pause a speaker needs between two talks
	DefaultMinimumConsecutiveTalksPauseInMinutes = 30

	// MakespanMinutesPerIdleDay is the cost of every idle day between a speaker's first and last talk
	MakespanMinutesPerIdleDay = 8 * 60
)

// RecommendedWeights returns a weight preset that ranks the constraints of each level
// against each other. Constraints it leaves out keep DefaultWeight.
func RecommendedWeights() map[string]int {
	return map[string]int{
		RoomUnavailableTimeslot:    100_000,
		RoomConflict:               1_000,
		SpeakerUnavailableTimeslot: 100,
		SpeakerConflict:            10,
		TalkPrerequisiteTalks:      10,

		PublishedTimeslot: 10,

		PublishedRoom:                     10,
		ThemeTrackConflict:                10,
		ThemeTrackRoomStability:           10,
		SectorConflict:                    10,
		ContentAudienceLevelFlowViolation: 10,
		ContentConflict:                   100,
		LanguageDiversity:                 10,
		SameDayTalks:                      10,
		PopularTalks:                      10,
		SpeakerPreferredTimeslotTags:      20,
		SpeakerUndesiredTimeslotTags:      10,
		TalkPreferredTimeslotTags:         20,
		TalkUndesiredTimeslotTags:         10,
		SpeakerPreferredRoomTags:          20,
		SpeakerUndesiredRoomTags:          10,
		TalkPreferredRoomTags:             20,
		TalkUndesiredRoomTags:             10,
		SpeakerMakespan:                   20,
	}
}
