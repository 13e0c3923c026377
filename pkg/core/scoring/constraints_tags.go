package scoring

import (
	"fmt"
	"strings"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// tagGapConstraint builds one of the sixteen tag preference constraints: a talk's (or its
// speakers') required, preferred, prohibited or undesired tags matched against the tags of
// its timeslot or room. Units: tag count times talk duration.
func tagGapConstraint(name string, kind model.TagKind, target model.TagTarget, ofSpeakers bool) Constraint {
	level := Soft
	if kind == model.Required || kind == model.Prohibited {
		level = Hard
	}

	return penalize(name, level, func(s *Solution, emit Emitter) {
		for _, talk := range s.Assigned {
			var count int
			if ofSpeakers {
				count = talk.SpeakerTagGap(kind, target)
			} else {
				count = talk.TagGap(kind, target)
			}
			if count <= 0 {
				continue
			}

			match := Match{
				TalkCodes: talkCodes(talk),
				Units:     int64(count) * int64(talk.DurationInMinutes()),
				describe: func() string {
					return describeTagGap(talk, kind, target, ofSpeakers)
				},
			}
			if ofSpeakers {
				match.SpeakerIDs = speakerIDs(talk.Speakers)
			}
			emit(match)
		}
	})
}

func describeTagGap(talk model.ScheduledTalk, kind model.TagKind, target model.TagTarget, ofSpeakers bool) string {
	wanted := talk.TagsFor(kind, target)
	owner := "talk " + talk.Code
	if ofSpeakers {
		wanted = talk.SpeakerTagsFor(kind, target)
		owner = "speakers [" + speakerNames(talk.Speakers) + "]"
	}

	available := talk.AvailableTags(target)
	var tags []string
	prefix := ""
	switch kind {
	case model.Required, model.Preferred:
		tags = wanted.Difference(available)
		prefix = "Missing " + kind.String()
	default:
		tags = wanted.Intersection(available)
		prefix = strings.ToUpper(kind.String()[:1]) + kind.String()[1:]
	}

	return fmt.Sprintf("%s %s tags [%s] for %s.", prefix, target, strings.Join(tags, ", "), owner)
}

// tagConflict penalizes two talks at overlapping times that share tags of the given set.
// Units: shared tags times overlapping minutes.
func tagConflict(name string, level Level, label string, tagsOf func(*model.Talk) model.Tags) Constraint {
	return penalize(name, level, func(s *Solution, emit Emitter) {
		s.forEachUniquePair(func(a, b model.ScheduledTalk) {
			if !a.OverlapsTime(b) {
				return
			}
			shared := model.OverlappingCount(tagsOf(a.Talk), tagsOf(b.Talk))
			if shared == 0 {
				return
			}
			emit(Match{
				TalkCodes: talkCodes(a, b),
				Units:     int64(shared) * int64(a.OverlappingDurationInMinutes(b)),
				describe: func() string {
					return fmt.Sprintf("Two talks [%s, %s] with matching %s [%s] at same time.",
						a.Code, b.Code, label, strings.Join(tagsOf(a.Talk).Intersection(tagsOf(b.Talk)), ", "))
				},
			})
		})
	})
}
