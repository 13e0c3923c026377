package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

func TestRoomConflict_ExactOverlap(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T3", at(2, 10, 0), at(2, 11, 0))
	f.room("R1", 100)
	f.talk("S01")
	f.talk("S02")
	f.talk("S03")
	f.place("S01", "T1", "R1")
	f.place("S02", "T2", "R1")
	f.place("S03", "T3", "R1")
	assignment := f.build()

	entry := analyze(t, RoomConflict, assignment)
	assert.Equal(t, int64(60), entry.Units)
	assert.Equal(t, int64(-60), entry.Score)
	require.Len(t, entry.Justifications, 1)
	assert.Equal(t, "Two talks [S01, S02] of same room [R1] at same time.", entry.Justifications[0].Description)
	assert.Equal(t, []string{"S01", "S02"}, entry.Justifications[0].TalkCodes)
}

func TestRoomConflict_SameTimeslotCountsOncePerPair(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 9, 45))
	f.room("R1", 100)
	f.room("R2", 100)
	f.talk("S01")
	f.talk("S02")
	f.talk("S03")
	f.place("S01", "T1", "R1")
	f.place("S02", "T1", "R1")
	f.place("S03", "T1", "R2")
	assignment := f.build()

	entry := analyze(t, RoomConflict, assignment)
	assert.Equal(t, 1, entry.MatchCount)
	assert.Equal(t, int64(45), entry.Units)
}

func TestRoomUnavailableTimeslot(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 10, 0), at(2, 10, 30))
	room := f.room("R1", 100)
	room.UnavailableTimeslots = model.NewTags("T2")
	f.talk("S01")
	f.talk("S02")
	f.place("S01", "T1", "R1")
	f.place("S02", "T2", "R1")
	assignment := f.build()

	entry := analyze(t, RoomUnavailableTimeslot, assignment)
	assert.Equal(t, int64(30), entry.Units)
	assert.Equal(t, []string{"S02"}, entry.Justifications[0].TalkCodes)
}

func TestSpeakerUnavailableTimeslot(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.room("R1", 100)
	alice := f.speaker("alice")
	bob := f.speaker("bob")
	alice.UnavailableTimeslots = model.NewTags("T1")
	bob.UnavailableTimeslots = model.NewTags("T1")
	f.talk("S01", alice, bob)
	f.talk("S02", alice)

	// A timeslot without a room is enough to be penalized
	f.place("S01", "T1", "")
	assignment := f.build()

	entry := analyze(t, SpeakerUnavailableTimeslot, assignment)
	assert.Equal(t, 2, entry.MatchCount)
	assert.Equal(t, int64(120), entry.Units)
	assert.Equal(t, []string{"alice"}, entry.Justifications[0].SpeakerIDs)
	assert.Equal(t, []string{"bob"}, entry.Justifications[1].SpeakerIDs)
}

func TestSpeakerConflict(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 9, 30), at(2, 10, 30))
	f.room("R1", 100)
	f.room("R2", 100)
	alice := f.speaker("alice")
	bob := f.speaker("bob")
	carol := f.speaker("carol")
	f.talk("S01", alice, bob)
	f.talk("S02", bob, alice)
	f.talk("S03", carol)
	f.place("S01", "T1", "R1")
	f.place("S02", "T2", "R2")
	f.place("S03", "T2", "R1")
	assignment := f.build()

	entry := analyze(t, SpeakerConflict, assignment)
	// One match per shared speaker, each for the 30 overlapping minutes
	assert.Equal(t, 2, entry.MatchCount)
	assert.Equal(t, int64(60), entry.Units)
}

func TestSpeakerConflict_RepeatedSpeakerCountsOnce(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.room("R1", 100)
	f.room("R2", 100)
	sam := f.speaker("sam")
	f.talk("A", sam, sam)
	f.talk("B", sam)
	f.place("A", "T1", "R1")
	f.place("B", "T1", "R2")
	assignment := f.build()

	entry := analyze(t, SpeakerConflict, assignment)
	assert.Equal(t, 1, entry.MatchCount)
	assert.Equal(t, int64(60), entry.Units)
	assert.Equal(t, []string{"sam"}, entry.Justifications[0].SpeakerIDs)
}

func TestTalkPrerequisiteTalks(t *testing.T) {
	tests := []struct {
		name          string
		bStart, bEnd  [2]int
		expectedUnits int64
	}{
		{"B starts before A ends", [2]int{9, 30}, [2]int{10, 30}, 120},
		{"B starts when A ends", [2]int{10, 0}, [2]int{11, 0}, 0},
		{"B starts after A ends", [2]int{11, 0}, [2]int{11, 30}, 0},
		{"B entirely before A", [2]int{7, 0}, [2]int{8, 0}, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.timeslot("TA", at(2, 9, 0), at(2, 10, 0))
			f.timeslot("TB", at(2, tt.bStart[0], tt.bStart[1]), at(2, tt.bEnd[0], tt.bEnd[1]))
			f.room("R1", 100)
			f.room("R2", 100)
			f.talk("A")
			b := f.talk("B")
			b.PrerequisiteTalks = model.NewTags("A")
			f.place("A", "TA", "R1")
			f.place("B", "TB", "R2")
			assignment := f.build()

			entry := analyze(t, TalkPrerequisiteTalks, assignment)
			assert.Equal(t, tt.expectedUnits, entry.Units)
			if tt.expectedUnits > 0 {
				assert.Equal(t, "Talk B must be scheduled after talk A.", entry.Justifications[0].Description)
				assert.Equal(t, []string{"A", "B"}, entry.Justifications[0].TalkCodes)
			}
		})
	}
}

func TestTalkPrerequisiteTalks_DanglingAndCyclic(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 10, 0), at(2, 11, 0))
	f.room("R1", 100)
	a := f.talk("A")
	b := f.talk("B")
	a.PrerequisiteTalks = model.NewTags("B", "MISSING")
	b.PrerequisiteTalks = model.NewTags("A")
	f.place("A", "T1", "R1")
	f.place("B", "T2", "R1")
	assignment := f.build()

	// Only A listing B is violated: A starts before B ends
	entry := analyze(t, TalkPrerequisiteTalks, assignment)
	assert.Equal(t, 1, entry.MatchCount)
	assert.Equal(t, []string{"B", "A"}, entry.Justifications[0].TalkCodes)
}

func TestTalkMutuallyExclusiveTalksTags(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 9, 40), at(2, 10, 40))
	f.room("R1", 100)
	f.room("R2", 100)
	f.talk("S01").MutuallyExclusiveTalksTags = model.NewTags("x", "y")
	f.talk("S02").MutuallyExclusiveTalksTags = model.NewTags("y", "x", "z")
	f.place("S01", "T1", "R1")
	f.place("S02", "T2", "R2")
	assignment := f.build()

	entry := analyze(t, TalkMutuallyExclusiveTalksTags, assignment)
	assert.Equal(t, int64(2*20), entry.Units)
	assert.Equal(t, "Two talks [S01, S02] with matching mutually-exclusive-talks tags [x, y] at same time.",
		entry.Justifications[0].Description)
}

func TestConsecutiveTalksPause(t *testing.T) {
	tests := []struct {
		name          string
		minimum       int
		secondStart   [2]int
		expectedUnits int64
	}{
		{"back to back below the minimum", 30, [2]int{10, 0}, 120},
		{"gap exactly the minimum", 30, [2]int{10, 30}, 0},
		{"back to back with no minimum", 0, [2]int{10, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
			f.timeslot("T2", at(2, tt.secondStart[0], tt.secondStart[1]), at(2, tt.secondStart[0]+1, tt.secondStart[1]))
			f.room("R1", 100)
			alice := f.speaker("alice")
			f.talk("S01", alice)
			f.talk("S02", alice)
			f.place("S01", "T1", "R1")
			f.place("S02", "T2", "R1")
			assignment := f.build()

			entry := analyze(t, ConsecutiveTalksPause, assignment, WithMinimumConsecutiveTalksPause(tt.minimum))
			assert.Equal(t, tt.expectedUnits, entry.Units)
		})
	}
}

func TestConsecutiveTalksPause_DifferentDaysAlwaysHavePause(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 17, 0), at(2, 18, 0))
	f.timeslot("T2", at(3, 8, 0), at(3, 9, 0))
	f.room("R1", 100)
	alice := f.speaker("alice")
	f.talk("S01", alice)
	f.talk("S02", alice)
	f.place("S01", "T1", "R1")
	f.place("S02", "T2", "R1")

	entry := analyze(t, ConsecutiveTalksPause, f.build(), WithMinimumConsecutiveTalksPause(24*60))
	assert.Equal(t, 0, entry.MatchCount)
}

func crowdControlFixture(t *testing.T, riskyInSlot int) *model.Assignment {
	t.Helper()
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.timeslot("T2", at(2, 11, 0), at(2, 12, 0))
	f.room("R1", 100)
	f.room("R2", 100)
	f.room("R3", 100)
	rooms := []string{"R1", "R2", "R3"}
	for i := 0; i < riskyInSlot; i++ {
		code := []string{"S01", "S02", "S03"}[i]
		f.talk(code).CrowdControlRisk = 1
		f.place(code, "T1", rooms[i])
	}
	// A risky talk elsewhere never counts towards T1
	f.talk("S09").CrowdControlRisk = 1
	f.place("S09", "T2", "R1")
	f.talk("S10")
	f.place("S10", "T2", "R2")
	return f.build()
}

func TestCrowdControl(t *testing.T) {
	tests := []struct {
		name            string
		riskyInSlot     int
		penalizeLone    bool
		expectedMatches int
	}{
		// S09 is alone in T2 in every case
		{"lone talks are not penalized by default", 1, false, 0},
		{"pair is allowed", 2, false, 0},
		{"three risky talks are penalized", 3, false, 3},
		{"lone talks penalized when enabled", 1, true, 2},
		{"pair is allowed when lone talks are penalized", 2, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignment := crowdControlFixture(t, tt.riskyInSlot)
			entry := analyze(t, CrowdControl, assignment, WithCrowdControlLoneTalkPenalty(tt.penalizeLone))
			assert.Equal(t, tt.expectedMatches, entry.MatchCount)
			assert.Equal(t, int64(tt.expectedMatches*60), entry.Units)
		})
	}
}

func TestTagGap_RequiredTimeslotTags(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 9, 50), "a")
	f.room("R1", 100)
	f.talk("S01").RequiredTimeslotTags = model.NewTags("a", "b")
	f.place("S01", "T1", "R1")
	assignment := f.build()

	entry := analyze(t, TalkRequiredTimeslotTags, assignment)
	assert.Equal(t, int64(1*50), entry.Units)
	assert.Equal(t, Hard, entry.Level)
	assert.Equal(t, "Missing required timeslot tags [b] for talk S01.", entry.Justifications[0].Description)
}

func TestTagGap_AllKinds(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0), "morning", "recorded")
	f.room("R1", 100, "large", "dark")
	alice := f.speaker("alice")
	bob := f.speaker("bob")
	alice.RequiredTimeslotTags = model.NewTags("afternoon")
	bob.RequiredTimeslotTags = model.NewTags("afternoon", "morning", "evening")
	alice.ProhibitedRoomTags = model.NewTags("dark")
	bob.UndesiredTimeslotTags = model.NewTags("recorded", "morning")
	alice.PreferredRoomTags = model.NewTags("large")

	talk := f.talk("S01", alice, bob)
	talk.ProhibitedTimeslotTags = model.NewTags("recorded")
	talk.PreferredTimeslotTags = model.NewTags("afternoon", "morning")
	talk.RequiredRoomTags = model.NewTags("large")
	talk.UndesiredRoomTags = model.NewTags("dark", "small")
	f.place("S01", "T1", "R1")
	assignment := f.build()

	tests := []struct {
		constraint    string
		expectedCount int64
	}{
		{SpeakerRequiredTimeslotTags, 3},
		{SpeakerProhibitedTimeslotTags, 0},
		{TalkRequiredTimeslotTags, 0},
		{TalkProhibitedTimeslotTags, 1},
		{SpeakerRequiredRoomTags, 0},
		{SpeakerProhibitedRoomTags, 1},
		{TalkRequiredRoomTags, 0},
		{TalkProhibitedRoomTags, 0},
		{SpeakerPreferredTimeslotTags, 0},
		{SpeakerUndesiredTimeslotTags, 2},
		{TalkPreferredTimeslotTags, 1},
		{TalkUndesiredTimeslotTags, 0},
		{SpeakerPreferredRoomTags, 0},
		{SpeakerUndesiredRoomTags, 0},
		{TalkPreferredRoomTags, 0},
		{TalkUndesiredRoomTags, 1},
	}

	analysis := NewCalculator().Analyze(assignment)
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			entry, ok := analysis.Constraint(tt.constraint)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCount*60, entry.Units)
		})
	}

	entry, _ := analysis.Constraint(SpeakerRequiredTimeslotTags)
	assert.Equal(t, "Missing required timeslot tags [afternoon, evening] for speakers [alice, bob].",
		entry.Justifications[0].Description)
	assert.Equal(t, []string{"alice", "bob"}, entry.Justifications[0].SpeakerIDs)

	entry, _ = analysis.Constraint(TalkUndesiredRoomTags)
	assert.Equal(t, Soft, entry.Level)
	assert.Equal(t, "Undesired room tags [dark] for talk S01.", entry.Justifications[0].Description)
}

func TestTagGap_UnassignedRoomContributesNothing(t *testing.T) {
	f := newFixture(t)
	f.timeslot("T1", at(2, 9, 0), at(2, 10, 0))
	f.room("R1", 100)
	f.talk("S01").RequiredTimeslotTags = model.NewTags("a")
	f.place("S01", "T1", "")

	entry := analyze(t, TalkRequiredTimeslotTags, f.build())
	assert.Equal(t, int64(0), entry.Units)
}
