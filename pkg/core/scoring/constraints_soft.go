package scoring

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// publishedTimeslot penalizes a talk moved away from its published timeslot. Units: 1.
func publishedTimeslot() Constraint {
	return penalize(PublishedTimeslot, Medium, func(s *Solution, emit Emitter) {
		for _, talk := range s.Assigned {
			if talk.PublishedTimeslot == nil || talk.PublishedTimeslot.Same(talk.Timeslot) {
				continue
			}
			emit(Match{
				TalkCodes: talkCodes(talk),
				Units:     1,
				describe: func() string {
					return fmt.Sprintf("Talk %s was published in timeslot [%s] but is scheduled in timeslot [%s].",
						talk.Code, talk.PublishedTimeslot.ID, talk.Timeslot.ID)
				},
			})
		}
	})
}

// publishedRoom penalizes a talk moved away from its published room. Units: 1.
func publishedRoom() Constraint {
	return penalize(PublishedRoom, Soft, func(s *Solution, emit Emitter) {
		for _, talk := range s.Assigned {
			if talk.PublishedRoom == nil || talk.PublishedRoom.ID == talk.Room.ID {
				continue
			}
			emit(Match{
				TalkCodes: talkCodes(talk),
				Units:     1,
				describe: func() string {
					return fmt.Sprintf("Talk %s was published in room [%s] but is scheduled in room [%s].",
						talk.Code, talk.PublishedRoom.ID, talk.Room.ID)
				},
			})
		}
	})
}

func themeTrackConflict() Constraint {
	return tagConflict(ThemeTrackConflict, Soft, "themes",
		func(t *model.Talk) model.Tags { return t.ThemeTrackTags })
}

// themeTrackRoomStability penalizes talks on the same day with matching themes held in different rooms.
// Units: shared themes times combined duration.
func themeTrackRoomStability() Constraint {
	return penalize(ThemeTrackRoomStability, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.Timeslot.IsOnSameDayAs(b.Timeslot) || a.SameRoom(b) {
				return
			}
			shared := a.OverlappingThemeTrackCount(b.Talk)
			if shared == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(shared) * int64(a.CombinedDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Talks [%s, %s] with matching themes [%s] were scheduled for different rooms [%s, %s].",
						a.Code, b.Code, strings.Join(a.ThemeTrackTags.Intersection(b.ThemeTrackTags), ", "), a.Room.ID, b.Room.ID)
				},
			})
		})
	})
}

func sectorConflict() Constraint {
	return tagConflict(SectorConflict, Soft, "sectors",
		func(t *model.Talk) model.Tags { return t.SectorTags })
}

// audienceTypeDiversity rewards talks in the same timeslot sharing audience types.
// Units: shared audience types times timeslot duration.
func audienceTypeDiversity() Constraint {
	return reward(AudienceTypeDiversity, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.SameTimeslot(b) {
				return
			}
			shared := a.OverlappingAudienceTypeCount(b.Talk)
			if shared == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(shared) * int64(a.Timeslot.DurationInMinutes()),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] for audience types [%s] share timeslot [%s].",
						a.Code, b.Code, strings.Join(a.AudienceTypes.Intersection(b.AudienceTypes), ", "), a.Timeslot.ID)
				},
			})
		})
	})
}

// audienceTypeThemeTrackConflict penalizes overlapping talks sharing both themes and audience types.
// Units: shared themes times shared audience types times overlapping minutes.
func audienceTypeThemeTrackConflict() Constraint {
	return penalize(AudienceTypeThemeTrackConflict, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.OverlapsTime(b) {
				return
			}
			themes := a.OverlappingThemeTrackCount(b.Talk)
			audiences := a.OverlappingAudienceTypeCount(b.Talk)
			if themes == 0 || audiences == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(themes) * int64(audiences) * int64(a.OverlappingDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with matching themes [%s] and audience types [%s] at same time.",
						a.Code, b.Code,
						strings.Join(a.ThemeTrackTags.Intersection(b.ThemeTrackTags), ", "),
						strings.Join(a.AudienceTypes.Intersection(b.AudienceTypes), ", "))
				},
			})
		})
	})
}

// audienceLevelDiversity rewards talks in the same timeslot with different audience levels.
// Units: timeslot duration.
func audienceLevelDiversity() Constraint {
	return reward(AudienceLevelDiversity, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.SameTimeslot(b) || a.AudienceLevel == b.AudienceLevel {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(a.Timeslot.DurationInMinutes()),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with audience levels [%d, %d] share timeslot [%s].",
						a.Code, b.Code, a.AudienceLevel, b.AudienceLevel, a.Timeslot.ID)
				},
			})
		})
	})
}

// contentAudienceLevelFlowViolation penalizes a lower level talk ending after a higher
// level talk with matching content starts. Units: shared content times combined duration.
func contentAudienceLevelFlowViolation() Constraint {
	return penalize(ContentAudienceLevelFlowViolation, Soft, func(s *Solution, emit Emitter) {
		s.forEachOrderedPair(func(lower, higher model.ScheduledTalk) {
			if lower.AudienceLevel >= higher.AudienceLevel || !lower.Timeslot.End.After(higher.Timeslot.Start) {
				return
			}
			shared := lower.OverlappingContentCount(higher.Talk)
			if shared == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(lower, higher),
				Units:     int64(shared) * int64(lower.CombinedDurationInMinutes(higher)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with the audience level [%d, %d] and matching content [%s] have a flow violation.",
						lower.Code, higher.Code, lower.AudienceLevel, higher.AudienceLevel,
						strings.Join(lower.ContentTags.Intersection(higher.ContentTags), ", "))
				},
			})
		})
	})
}

func contentConflict() Constraint {
	return tagConflict(ContentConflict, Soft, "content",
		func(t *model.Talk) model.Tags { return t.ContentTags })
}

// languageDiversity rewards talks in the same timeslot given in different languages.
// Units: timeslot duration.
func languageDiversity() Constraint {
	return reward(LanguageDiversity, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.SameTimeslot(b) || a.Language == b.Language {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(a.Timeslot.DurationInMinutes()),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] in languages [%s, %s] share timeslot [%s].",
						a.Code, b.Code, a.Language, b.Language, a.Timeslot.ID)
				},
			})
		})
	})
}

// sameDayTalks penalizes talks on different days with matching content or themes.
// Units: shared themes plus shared content, times combined duration.
func sameDayTalks() Constraint {
	return penalize(SameDayTalks, Soft, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if a.Timeslot.IsOnSameDayAs(b.Timeslot) {
				return
			}
			shared := a.OverlappingThemeTrackCount(b.Talk) + a.OverlappingContentCount(b.Talk)
			if shared == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(shared) * int64(a.CombinedDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with matching content [%s] or matching theme [%s] not scheduled at the same day.",
						a.Code, b.Code,
						strings.Join(a.ContentTags.Intersection(b.ContentTags), ", "),
						strings.Join(a.ThemeTrackTags.Intersection(b.ThemeTrackTags), ", "))
				},
			})
		})
	})
}

// popularTalks penalizes a less favored talk held in a larger room than a more favored one.
// Units: combined duration.
func popularTalks() Constraint {
	return penalize(PopularTalks, Soft, func(s *Solution, emit Emitter) {
		s.forEachOrderedPair(func(a, b model.ScheduledTalk) {
			if a.FavoriteCount >= b.FavoriteCount || a.Room.Capacity <= b.Room.Capacity {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(a.CombinedDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with popularity [%d, %d] scheduled to rooms [%s, %s] with capacity [%d, %d].",
						a.Code, b.Code, a.FavoriteCount, b.FavoriteCount, a.Room.ID, b.Room.ID, a.Room.Capacity, b.Room.Capacity)
				},
			})
		})
	})
}

// speakerMakespan penalizes a speaker whose first and last talk start more than one day apart.
// Units: MakespanMinutesPerIdleDay for every day in between.
func speakerMakespan() Constraint {
	type span struct {
		first, last model.ScheduledTalk
	}

	return penalize(SpeakerMakespan, Soft, func(s *Solution, emit Emitter) {
		spans := make(map[string]*span)
		for _, talk := range s.Assigned {
			for _, speaker := range talk.Speakers {
				current, ok := spans[speaker.ID]
				if !ok {
					spans[speaker.ID] = &span{first: talk, last: talk}
					continue
				}
				if talk.Timeslot.Start.Before(current.first.Timeslot.Start) {
					current.first = talk
				}
				if talk.Timeslot.Start.After(current.last.Timeslot.Start) {
					current.last = talk
				}
			}
		}

		for _, speaker := range s.Problem.Speakers {
			current, ok := spans[speaker.ID]
			if !ok {
				continue
			}
			days := model.DaysBetween(current.first.Timeslot.Start, current.last.Timeslot.Start)
			if days <= 1 {
				continue
			}
			emit(Match{
				TalkCodes:  talkCodes(current.first, current.last),
				SpeakerIDs: []string{speaker.ID},
				Units:      int64(days-1) * MakespanMinutesPerIdleDay,
				describe: func() string {
					return fmt.Sprintf("Required makespan for speaker %s: talks [%s, %s] start %s and %s.",
						speaker.Name, current.first.Code, current.last.Code,
						current.first.Timeslot.Start.Format(time.DateOnly), current.last.Timeslot.Start.Format(time.DateOnly))
				},
			})
		}
	})
}
