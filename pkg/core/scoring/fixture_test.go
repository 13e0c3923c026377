package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

const talkTypeName = "Talk"

// Monday 2 March 2026
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

// fixture builds small problems for constraint tests
type fixture struct {
	t         *testing.T
	talkType  *model.TalkType
	timeslots []*model.Timeslot
	rooms     []*model.Room
	speakers  []*model.Speaker
	talks     []*model.Talk
	places    [][3]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, talkType: &model.TalkType{Name: talkTypeName}}
}

func (f *fixture) timeslot(id string, start, end time.Time, tags ...string) *model.Timeslot {
	f.t.Helper()
	timeslot, err := model.NewTimeslot(id, start, end, []string{talkTypeName}, model.NewTags(tags...))
	require.NoError(f.t, err)
	f.timeslots = append(f.timeslots, timeslot)
	return timeslot
}

func (f *fixture) room(id string, capacity int, tags ...string) *model.Room {
	room := &model.Room{
		ID:        id,
		Name:      "Room " + id,
		Capacity:  capacity,
		TalkTypes: []string{talkTypeName},
		Tags:      model.NewTags(tags...),
	}
	f.rooms = append(f.rooms, room)
	return room
}

func (f *fixture) speaker(id string) *model.Speaker {
	speaker := &model.Speaker{ID: id, Name: id}
	f.speakers = append(f.speakers, speaker)
	return speaker
}

func (f *fixture) talk(code string, speakers ...*model.Speaker) *model.Talk {
	talk := &model.Talk{
		Code:     code,
		Title:    "Talk " + code,
		TalkType: f.talkType,
		Speakers: speakers,
		Language: "en",
	}
	f.talks = append(f.talks, talk)
	return talk
}

// place records a placement applied by build. An empty id leaves that field unassigned.
func (f *fixture) place(code, timeslotID, roomID string) {
	f.places = append(f.places, [3]string{code, timeslotID, roomID})
}

func (f *fixture) build() *model.Assignment {
	f.t.Helper()
	problem, err := model.NewProblem("test", model.Facts{
		TalkTypes: []*model.TalkType{f.talkType},
		Timeslots: f.timeslots,
		Rooms:     f.rooms,
		Speakers:  f.speakers,
		Talks:     f.talks,
	})
	require.NoError(f.t, err)

	assignment := model.NewAssignment(problem)
	for _, p := range f.places {
		require.NoError(f.t, assignment.Assign(p[0], p[1], p[2]))
	}
	return assignment
}

// analyze returns the analysis entry of the named constraint
func analyze(t *testing.T, name string, assignment *model.Assignment, opts ...Option) ConstraintAnalysis {
	t.Helper()
	entry, ok := NewCalculator(opts...).Analyze(assignment).Constraint(name)
	require.True(t, ok, "constraint %q not in catalog", name)
	return entry
}
