package scoring

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// roomUnavailableTimeslot penalizes a talk held in a room during one of the room's unavailable timeslots.
// Units: talk duration.
func roomUnavailableTimeslot() Constraint {
	return penalize(RoomUnavailableTimeslot, Hard, func(s *Solution, emit Emitter) {
		for _, talk := range s.Assigned {
			if !talk.HasUnavailableRoom() {
				continue
			}
			emit(Match{
				TalkCodes: talkCodes(talk),
				Units:     int64(talk.DurationInMinutes()),
				describe: func() string {
					return fmt.Sprintf("Room [%s] is unavailable in timeslot [%s] of talk %s.",
						talk.Room.ID, talk.Timeslot.ID, talk.Code)
				},
			})
		}
	})
}

// roomConflict penalizes two talks sharing a room at overlapping times.
// Units: overlapping minutes.
func roomConflict() Constraint {
	return penalize(RoomConflict, Hard, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.SameRoom(b) || !a.OverlapsTime(b) {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(a.OverlappingDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] of same room [%s] at same time.", a.Code, b.Code, a.Room.ID)
				},
			})
		})
	})
}

// speakerUnavailableTimeslot penalizes a talk scheduled in a timeslot one of its speakers cannot attend.
// Only the timeslot needs to be set. Units: talk duration, once per unavailable speaker.
func speakerUnavailableTimeslot() Constraint {
	return penalize(SpeakerUnavailableTimeslot, Hard, func(s *Solution, emit Emitter) {
		for _, talk := range s.Talks {
			if talk.Timeslot == nil {
				continue
			}
			for i, speaker := range talk.Speakers {
				if repeatsEarlierSpeaker(talk.Speakers, i) || !speaker.IsUnavailable(talk.Timeslot) {
					continue
				}
				emit(Match{
					TalkCodes:  talkCodes(talk),
					SpeakerIDs: []string{speaker.ID},
					Units:      int64(talk.DurationInMinutes()),
					describe: func() string {
						return fmt.Sprintf("Speaker %s is unavailable in timeslot [%s] of talk %s.",
							speaker.Name, talk.Timeslot.ID, talk.Code)
					},
				})
			}
		}
	})
}

// speakerConflict penalizes a speaker presenting two talks at overlapping times.
// Units: overlapping minutes, once per shared speaker.
func speakerConflict() Constraint {
	return penalize(SpeakerConflict, Hard, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.OverlapsTime(b) {
				return
			}
			for _, speaker := range a.MutualSpeakers(b.Talk) {
				emit(Match{
					TalkCodes:  talkCodes(a, b),
					SpeakerIDs: []string{speaker.ID},
					Units:      int64(a.OverlappingDurationInMinutes(b)),
					describe: func() string {
						return fmt.Sprintf("Speaker %s presents two talks [%s, %s] at same time.", speaker.Name, a.Code, b.Code)
					},
				})
			}
		})
	})
}

// talkPrerequisiteTalks penalizes a talk that starts before one of its prerequisite talks ends.
// Units: combined duration of both talks.
func talkPrerequisiteTalks() Constraint {
	return penalize(TalkPrerequisiteTalks, Hard, func(s *Solution, emit Emitter) {
		s.forEachOrderedPair(func(prerequisite, talk model.ScheduledTalk) {
			if !talk.HasPrerequisite(prerequisite.Code) || !prerequisite.Timeslot.End.After(talk.Timeslot.Start) {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(prerequisite, talk),
				Units:     int64(prerequisite.CombinedDurationInMinutes(talk)),
				describe: func() string {
					return fmt.Sprintf("Talk %s must be scheduled after talk %s.", talk.Code, prerequisite.Code)
				},
			})
		})
	})
}

// talkMutuallyExclusiveTalksTags penalizes overlapping talks sharing a mutually-exclusive-talks tag.
// Units: shared tags times overlapping minutes.
func talkMutuallyExclusiveTalksTags() Constraint {
	return tagConflict(TalkMutuallyExclusiveTalksTags, Hard, "mutually-exclusive-talks tags",
		func(t *model.Talk) model.Tags { return t.MutuallyExclusiveTalksTags })
}

// consecutiveTalksPause penalizes two talks sharing a speaker without the minimum pause between them.
// Units: combined duration of both talks.
func consecutiveTalksPause() Constraint {
	return penalize(ConsecutiveTalksPause, Hard, func(s *Solution, emit Emitter) {
		minimum := s.Settings.MinimumConsecutiveTalksPauseInMinutes
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.HasMutualSpeaker(b.Talk) || a.Timeslot.PauseExists(b.Timeslot, minimum) {
				return
			}
			emit(Match{
				TalkCodes:  talkCodes(a, b),
				SpeakerIDs: speakerIDs(a.MutualSpeakers(b.Talk)),
				Units:      int64(a.CombinedDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Required minimum consecutive pauses between talks [%s, %s].", a.Code, b.Code)
				},
			})
		})
	})
}

// crowdControl penalizes a talk with a crowd control risk unless exactly one other
// risky talk shares its timeslot. A risky talk alone in its timeslot is only penalized
// when Settings.CrowdControlPenalizeLoneTalks is set. Units: talk duration.
func crowdControl() Constraint {
	return penalize(CrowdControl, Hard, func(s *Solution, emit Emitter) {
		risky := make(map[*model.Timeslot]int)
		for _, talk := range s.Assigned {
			if talk.CrowdControlRisk > 0 {
				risky[talk.Timeslot]++
			}
		}

		for _, talk := range s.Assigned {
			if talk.CrowdControlRisk <= 0 {
				continue
			}
			others := risky[talk.Timeslot] - 1
			if others == 1 || (others == 0 && !s.Settings.CrowdControlPenalizeLoneTalks) {
				continue
			}
			emit(Match{
				TalkCodes: talkCodes(talk),
				Units:     int64(talk.DurationInMinutes()),
				describe: func() string {
					return fmt.Sprintf("Required crowd control for talk %s: %d other risky talks in timeslot [%s].",
						talk.Code, others, talk.Timeslot.ID)
				},
			})
		}
	})
}

func repeatsEarlierSpeaker(speakers []*model.Speaker, index int) bool {
	for _, earlier := range speakers[:index] {
		if earlier.ID == speakers[index].ID {
			return true
		}
	}
	return false
}

func speakerIDs(speakers []*model.Speaker) []string {
	return lo.Map(speakers, func(speaker *model.Speaker, _ int) string { return speaker.ID })
}

func speakerNames(speakers []*model.Speaker) string {
	return strings.Join(lo.Map(speakers, func(speaker *model.Speaker, _ int) string { return speaker.Name }), ", ")
}
