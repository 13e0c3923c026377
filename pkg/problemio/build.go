package problemio

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/teambition/rrule-go"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// maxSeriesOccurrences bounds the expansion of a single timeslot series
const maxSeriesOccurrences = 1000

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

// ParseTime parses RFC 3339 times. Times without an offset are read as UTC.
func ParseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected RFC 3339 or 2006-01-02T15:04", value)
}

// Build turns the document into problem facts and the schedule it describes
func (d *Document) Build() (*model.Problem, *model.Assignment, error) {
	talkTypes := lo.Map(d.TalkTypes, func(doc TalkTypeDoc, _ int) *model.TalkType {
		return &model.TalkType{Name: doc.Name}
	})

	timeslots, err := d.buildTimeslots()
	if err != nil {
		return nil, nil, err
	}

	rooms := lo.Map(d.Rooms, func(doc RoomDoc, _ int) *model.Room {
		return &model.Room{
			ID:                   doc.ID,
			Name:                 lo.Ternary(doc.Name != "", doc.Name, doc.ID),
			Capacity:             doc.Capacity,
			TalkTypes:            doc.TalkTypes,
			UnavailableTimeslots: model.NewTags(doc.UnavailableTimeslots...),
			Tags:                 model.NewTags(doc.Tags...),
		}
	})

	speakers := lo.Map(d.Speakers, func(doc SpeakerDoc, _ int) *model.Speaker {
		return &model.Speaker{
			ID:                     doc.ID,
			Name:                   lo.Ternary(doc.Name != "", doc.Name, doc.ID),
			UnavailableTimeslots:   model.NewTags(doc.UnavailableTimeslots...),
			RequiredTimeslotTags:   model.NewTags(doc.RequiredTimeslotTags...),
			PreferredTimeslotTags:  model.NewTags(doc.PreferredTimeslotTags...),
			ProhibitedTimeslotTags: model.NewTags(doc.ProhibitedTimeslotTags...),
			UndesiredTimeslotTags:  model.NewTags(doc.UndesiredTimeslotTags...),
			RequiredRoomTags:       model.NewTags(doc.RequiredRoomTags...),
			PreferredRoomTags:      model.NewTags(doc.PreferredRoomTags...),
			ProhibitedRoomTags:     model.NewTags(doc.ProhibitedRoomTags...),
			UndesiredRoomTags:      model.NewTags(doc.UndesiredRoomTags...),
		}
	})

	talkTypesByName := lo.KeyBy(talkTypes, func(tt *model.TalkType) string { return tt.Name })
	timeslotsByID := lo.KeyBy(timeslots, func(ts *model.Timeslot) string { return ts.ID })
	roomsByID := lo.KeyBy(rooms, func(r *model.Room) string { return r.ID })
	speakersByID := lo.KeyBy(speakers, func(s *model.Speaker) string { return s.ID })

	talks := make([]*model.Talk, 0, len(d.Talks))
	for _, doc := range d.Talks {
		talkType, ok := talkTypesByName[doc.TalkType]
		if !ok {
			return nil, nil, fmt.Errorf("%w: talk %s has talk type %s", model.ErrUnknownReference, doc.Code, doc.TalkType)
		}

		talkSpeakers := make([]*model.Speaker, 0, len(doc.Speakers))
		for _, id := range doc.Speakers {
			speaker, ok := speakersByID[id]
			if !ok {
				return nil, nil, fmt.Errorf("%w: talk %s has speaker %s", model.ErrUnknownReference, doc.Code, id)
			}
			talkSpeakers = append(talkSpeakers, speaker)
		}

		talk := &model.Talk{
			Code:                       doc.Code,
			Title:                      doc.Title,
			TalkType:                   talkType,
			Speakers:                   talkSpeakers,
			ThemeTrackTags:             model.NewTags(doc.ThemeTrackTags...),
			SectorTags:                 model.NewTags(doc.SectorTags...),
			AudienceTypes:              model.NewTags(doc.AudienceTypes...),
			AudienceLevel:              doc.AudienceLevel,
			ContentTags:                model.NewTags(doc.ContentTags...),
			Language:                   doc.Language,
			RequiredTimeslotTags:       model.NewTags(doc.RequiredTimeslotTags...),
			PreferredTimeslotTags:      model.NewTags(doc.PreferredTimeslotTags...),
			ProhibitedTimeslotTags:     model.NewTags(doc.ProhibitedTimeslotTags...),
			UndesiredTimeslotTags:      model.NewTags(doc.UndesiredTimeslotTags...),
			RequiredRoomTags:           model.NewTags(doc.RequiredRoomTags...),
			PreferredRoomTags:          model.NewTags(doc.PreferredRoomTags...),
			ProhibitedRoomTags:         model.NewTags(doc.ProhibitedRoomTags...),
			UndesiredRoomTags:          model.NewTags(doc.UndesiredRoomTags...),
			MutuallyExclusiveTalksTags: model.NewTags(doc.MutuallyExclusiveTalksTags...),
			PrerequisiteTalks:          model.NewTags(doc.PrerequisiteTalks...),
			FavoriteCount:              doc.FavoriteCount,
			CrowdControlRisk:           doc.CrowdControlRisk,
			Pinned:                     doc.Pinned,
		}

		if doc.PublishedTimeslot != "" {
			if talk.PublishedTimeslot, ok = timeslotsByID[doc.PublishedTimeslot]; !ok {
				return nil, nil, fmt.Errorf("%w: talk %s was published in timeslot %s",
					model.ErrUnknownReference, doc.Code, doc.PublishedTimeslot)
			}
		}
		if doc.PublishedRoom != "" {
			if talk.PublishedRoom, ok = roomsByID[doc.PublishedRoom]; !ok {
				return nil, nil, fmt.Errorf("%w: talk %s was published in room %s",
					model.ErrUnknownReference, doc.Code, doc.PublishedRoom)
			}
		}

		talks = append(talks, talk)
	}

	problem, err := model.NewProblem(d.Name, model.Facts{
		TalkTypes: talkTypes,
		Timeslots: timeslots,
		Rooms:     rooms,
		Speakers:  speakers,
		Talks:     talks,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build problem %s: %w", d.Name, err)
	}

	assignment := model.NewAssignment(problem)
	for _, doc := range d.Talks {
		if doc.Timeslot == "" && doc.Room == "" {
			continue
		}
		if err := assignment.Assign(doc.Code, doc.Timeslot, doc.Room); err != nil {
			return nil, nil, fmt.Errorf("failed to assign talk %s: %w", doc.Code, err)
		}
	}

	return problem, assignment, nil
}

func (d *Document) buildTimeslots() ([]*model.Timeslot, error) {
	timeslots := make([]*model.Timeslot, 0, len(d.Timeslots))
	for _, doc := range d.Timeslots {
		start, err := ParseTime(doc.Start)
		if err != nil {
			return nil, fmt.Errorf("timeslot %s: %w", doc.ID, err)
		}
		end, err := ParseTime(doc.End)
		if err != nil {
			return nil, fmt.Errorf("timeslot %s: %w", doc.ID, err)
		}
		timeslot, err := model.NewTimeslot(doc.ID, start, end, doc.TalkTypes, model.NewTags(doc.Tags...))
		if err != nil {
			return nil, err
		}
		timeslots = append(timeslots, timeslot)
	}

	for _, series := range d.TimeslotSeries {
		expanded, err := series.Expand()
		if err != nil {
			return nil, err
		}
		timeslots = append(timeslots, expanded...)
	}
	return timeslots, nil
}

// Expand creates one timeslot per occurrence of the series rule.
// Timeslot ids are the prefix followed by the occurrence's date and time, e.g. LAB-20260302-0900.
func (s TimeslotSeriesDoc) Expand() ([]*model.Timeslot, error) {
	start, err := ParseTime(s.Start)
	if err != nil {
		return nil, fmt.Errorf("timeslot series %s: %w", s.IDPrefix, err)
	}

	option, err := rrule.StrToROptionInLocation(s.RRule, start.Location())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule for timeslot series %s: %w", s.IDPrefix, err)
	}
	if option.Count == 0 && option.Until.IsZero() {
		return nil, fmt.Errorf("rrule for timeslot series %s must set COUNT or UNTIL", s.IDPrefix)
	}
	option.Dtstart = start

	rule, err := rrule.NewRRule(*option)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule for timeslot series %s: %w", s.IDPrefix, err)
	}

	duration := time.Duration(s.DurationMinutes) * time.Minute
	var timeslots []*model.Timeslot
	next := rule.Iterator()
	for occurrence, ok := next(); ok; occurrence, ok = next() {
		if len(timeslots) == maxSeriesOccurrences {
			return nil, fmt.Errorf("timeslot series %s expands to more than %d timeslots",
				s.IDPrefix, maxSeriesOccurrences)
		}
		id := fmt.Sprintf("%s-%s", s.IDPrefix, occurrence.Format("20060102-1504"))
		timeslot, err := model.NewTimeslot(id, occurrence, occurrence.Add(duration), s.TalkTypes, model.NewTags(s.Tags...))
		if err != nil {
			return nil, err
		}
		timeslots = append(timeslots, timeslot)
	}
	return timeslots, nil
}
