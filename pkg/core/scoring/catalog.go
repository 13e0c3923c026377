package scoring

import (
	"github.com/samber/lo"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// Catalog returns every constraint in evaluation order: hard, then medium, then soft.
// Justifications are reported in this order.
func Catalog() []Constraint {
	return []Constraint{
		// Hard
		roomUnavailableTimeslot(),
		roomConflict(),
		speakerUnavailableTimeslot(),
		speakerConflict(),
		talkPrerequisiteTalks(),
		talkMutuallyExclusiveTalksTags(),
		consecutiveTalksPause(),
		crowdControl(),
		tagGapConstraint(SpeakerRequiredTimeslotTags, model.Required, model.TimeslotTarget, true),
		tagGapConstraint(SpeakerProhibitedTimeslotTags, model.Prohibited, model.TimeslotTarget, true),
		tagGapConstraint(TalkRequiredTimeslotTags, model.Required, model.TimeslotTarget, false),
		tagGapConstraint(TalkProhibitedTimeslotTags, model.Prohibited, model.TimeslotTarget, false),
		tagGapConstraint(SpeakerRequiredRoomTags, model.Required, model.RoomTarget, true),
		tagGapConstraint(SpeakerProhibitedRoomTags, model.Prohibited, model.RoomTarget, true),
		tagGapConstraint(TalkRequiredRoomTags, model.Required, model.RoomTarget, false),
		tagGapConstraint(TalkProhibitedRoomTags, model.Prohibited, model.RoomTarget, false),
		// Medium
		publishedTimeslot(),
		// Soft
		publishedRoom(),
		themeTrackConflict(),
		themeTrackRoomStability(),
		sectorConflict(),
		audienceTypeDiversity(),
		audienceTypeThemeTrackConflict(),
		audienceLevelDiversity(),
		contentAudienceLevelFlowViolation(),
		contentConflict(),
		languageDiversity(),
		sameDayTalks(),
		popularTalks(),
		tagGapConstraint(SpeakerPreferredTimeslotTags, model.Preferred, model.TimeslotTarget, true),
		tagGapConstraint(SpeakerUndesiredTimeslotTags, model.Undesired, model.TimeslotTarget, true),
		tagGapConstraint(TalkPreferredTimeslotTags, model.Preferred, model.TimeslotTarget, false),
		tagGapConstraint(TalkUndesiredTimeslotTags, model.Undesired, model.TimeslotTarget, false),
		tagGapConstraint(SpeakerPreferredRoomTags, model.Preferred, model.RoomTarget, true),
		tagGapConstraint(SpeakerUndesiredRoomTags, model.Undesired, model.RoomTarget, true),
		tagGapConstraint(TalkPreferredRoomTags, model.Preferred, model.RoomTarget, false),
		tagGapConstraint(TalkUndesiredRoomTags, model.Undesired, model.RoomTarget, false),
		speakerMakespan(),
	}
}

// ConstraintNames returns the names of the catalog in evaluation order
func ConstraintNames() []string {
	return lo.Map(Catalog(), func(c Constraint, _ int) string { return c.Name() })
}

// UnknownConstraintNames returns the configured weight names that match no catalog constraint, sorted
func UnknownConstraintNames(weights map[string]int) []string {
	known := model.NewTags(ConstraintNames()...)
	unknown := lo.Reject(lo.Keys(weights), func(name string, _ int) bool { return known.Contains(name) })
	return model.NewTags(unknown...).Sorted()
}
