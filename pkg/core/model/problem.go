package model

import (
	"fmt"
	"sort"
)

// Facts is the raw input to NewProblem
type Facts struct {
	TalkTypes []*TalkType
	Timeslots []*Timeslot
	Rooms     []*Room
	Speakers  []*Speaker
	Talks     []*Talk
}

// Problem owns the immutable facts of one conference, sorted by identity,
// with the talk type compatibility index built.
type Problem struct {
	Name string

	TalkTypes []*TalkType
	Timeslots []*Timeslot
	Rooms     []*Room
	Speakers  []*Speaker
	Talks     []*Talk

	talkTypesByName map[string]*TalkType
	timeslotsByID   map[string]*Timeslot
	roomsByID       map[string]*Room
	speakersByID    map[string]*Speaker
	talkIndexByCode map[string]int
}

// NewProblem validates the facts, sorts them and builds the TalkType -> Timeslot/Room index.
// Prerequisite codes are not validated: dangling and cyclic prerequisites are allowed.
func NewProblem(name string, facts Facts) (*Problem, error) {
	p := &Problem{
		Name:            name,
		TalkTypes:       append([]*TalkType(nil), facts.TalkTypes...),
		Timeslots:       append([]*Timeslot(nil), facts.Timeslots...),
		Rooms:           append([]*Room(nil), facts.Rooms...),
		Speakers:        append([]*Speaker(nil), facts.Speakers...),
		Talks:           append([]*Talk(nil), facts.Talks...),
		talkTypesByName: make(map[string]*TalkType, len(facts.TalkTypes)),
		timeslotsByID:   make(map[string]*Timeslot, len(facts.Timeslots)),
		roomsByID:       make(map[string]*Room, len(facts.Rooms)),
		speakersByID:    make(map[string]*Speaker, len(facts.Speakers)),
		talkIndexByCode: make(map[string]int, len(facts.Talks)),
	}

	sort.Slice(p.TalkTypes, func(i, j int) bool { return p.TalkTypes[i].Name < p.TalkTypes[j].Name })
	sort.Slice(p.Timeslots, func(i, j int) bool { return p.Timeslots[i].ID < p.Timeslots[j].ID })
	sort.Slice(p.Rooms, func(i, j int) bool { return p.Rooms[i].ID < p.Rooms[j].ID })
	sort.Slice(p.Speakers, func(i, j int) bool { return p.Speakers[i].ID < p.Speakers[j].ID })
	sort.Slice(p.Talks, func(i, j int) bool { return p.Talks[i].Code < p.Talks[j].Code })

	for _, talkType := range p.TalkTypes {
		if _, exists := p.talkTypesByName[talkType.Name]; exists {
			return nil, fmt.Errorf("%w: talk type %s", ErrDuplicateID, talkType.Name)
		}
		p.talkTypesByName[talkType.Name] = talkType
	}
	for _, timeslot := range p.Timeslots {
		if _, exists := p.timeslotsByID[timeslot.ID]; exists {
			return nil, fmt.Errorf("%w: timeslot %s", ErrDuplicateID, timeslot.ID)
		}
		p.timeslotsByID[timeslot.ID] = timeslot
	}
	for _, room := range p.Rooms {
		if _, exists := p.roomsByID[room.ID]; exists {
			return nil, fmt.Errorf("%w: room %s", ErrDuplicateID, room.ID)
		}
		p.roomsByID[room.ID] = room
	}
	for _, speaker := range p.Speakers {
		if _, exists := p.speakersByID[speaker.ID]; exists {
			return nil, fmt.Errorf("%w: speaker %s", ErrDuplicateID, speaker.ID)
		}
		p.speakersByID[speaker.ID] = speaker
	}
	for i, talk := range p.Talks {
		if _, exists := p.talkIndexByCode[talk.Code]; exists {
			return nil, fmt.Errorf("%w: talk %s", ErrDuplicateID, talk.Code)
		}
		p.talkIndexByCode[talk.Code] = i
	}

	if err := p.checkReferences(); err != nil {
		return nil, err
	}
	p.buildTalkTypeIndex()

	return p, nil
}

func (p *Problem) checkReferences() error {
	for _, timeslot := range p.Timeslots {
		for _, name := range timeslot.TalkTypes {
			if _, ok := p.talkTypesByName[name]; !ok {
				return fmt.Errorf("%w: timeslot %s declares talk type %s", ErrUnknownReference, timeslot.ID, name)
			}
		}
	}

	for _, room := range p.Rooms {
		for _, name := range room.TalkTypes {
			if _, ok := p.talkTypesByName[name]; !ok {
				return fmt.Errorf("%w: room %s declares talk type %s", ErrUnknownReference, room.ID, name)
			}
		}
		for _, id := range room.UnavailableTimeslots.Sorted() {
			if _, ok := p.timeslotsByID[id]; !ok {
				return fmt.Errorf("%w: room %s is unavailable in timeslot %s", ErrUnknownReference, room.ID, id)
			}
		}
	}

	for _, speaker := range p.Speakers {
		for _, id := range speaker.UnavailableTimeslots.Sorted() {
			if _, ok := p.timeslotsByID[id]; !ok {
				return fmt.Errorf("%w: speaker %s is unavailable in timeslot %s", ErrUnknownReference, speaker.ID, id)
			}
		}
	}

	for _, talk := range p.Talks {
		if talk.TalkType == nil {
			return fmt.Errorf("%w: talk %s has no talk type", ErrUnknownReference, talk.Code)
		}
		if p.talkTypesByName[talk.TalkType.Name] != talk.TalkType {
			return fmt.Errorf("%w: talk %s has talk type %s", ErrUnknownReference, talk.Code, talk.TalkType.Name)
		}
		for _, speaker := range talk.Speakers {
			if speaker == nil || p.speakersByID[speaker.ID] != speaker {
				return fmt.Errorf("%w: talk %s has a speaker that is not part of the problem", ErrUnknownReference, talk.Code)
			}
		}
		if talk.PublishedTimeslot != nil && p.timeslotsByID[talk.PublishedTimeslot.ID] != talk.PublishedTimeslot {
			return fmt.Errorf("%w: talk %s was published in timeslot %s", ErrUnknownReference, talk.Code, talk.PublishedTimeslot.ID)
		}
		if talk.PublishedRoom != nil && p.roomsByID[talk.PublishedRoom.ID] != talk.PublishedRoom {
			return fmt.Errorf("%w: talk %s was published in room %s", ErrUnknownReference, talk.Code, talk.PublishedRoom.ID)
		}
	}
	return nil
}

// buildTalkTypeIndex fills every talk type's compatible timeslots and rooms.
// It runs once, after all facts are known.
func (p *Problem) buildTalkTypeIndex() {
	for _, talkType := range p.TalkTypes {
		talkType.compatibleTimeslots = nil
		talkType.compatibleRooms = nil
	}
	for _, timeslot := range p.Timeslots {
		for _, name := range timeslot.TalkTypes {
			talkType := p.talkTypesByName[name]
			talkType.compatibleTimeslots = append(talkType.compatibleTimeslots, timeslot)
		}
	}
	for _, room := range p.Rooms {
		for _, name := range room.TalkTypes {
			talkType := p.talkTypesByName[name]
			talkType.compatibleRooms = append(talkType.compatibleRooms, room)
		}
	}
}

// TalkType returns the talk type with the given name, or nil
func (p *Problem) TalkType(name string) *TalkType {
	return p.talkTypesByName[name]
}

// Timeslot returns the timeslot with the given id, or nil
func (p *Problem) Timeslot(id string) *Timeslot {
	return p.timeslotsByID[id]
}

// Room returns the room with the given id, or nil
func (p *Problem) Room(id string) *Room {
	return p.roomsByID[id]
}

// Speaker returns the speaker with the given id, or nil
func (p *Problem) Speaker(id string) *Speaker {
	return p.speakersByID[id]
}

// TalkIndex returns the position of the talk with the given code in Talks
func (p *Problem) TalkIndex(code string) (int, bool) {
	index, ok := p.talkIndexByCode[code]
	return index, ok
}

// Talk returns the talk with the given code, or nil
func (p *Problem) Talk(code string) *Talk {
	index, ok := p.talkIndexByCode[code]
	if !ok {
		return nil
	}
	return p.Talks[index]
}

// CheckCompatibility reports placements that fall outside the talk type's compatible
// timeslots and rooms. Scoring never calls it: incompatible placements are a caller error.
func (p *Problem) CheckCompatibility(assignment *Assignment) []error {
	var errs []error
	for i, talk := range p.Talks {
		placement := assignment.Placement(i)
		if placement.Timeslot != nil && !talk.TalkType.IsCompatibleTimeslot(placement.Timeslot) {
			errs = append(errs, fmt.Errorf("talk %s of type %s cannot be held in timeslot %s",
				talk.Code, talk.TalkType.Name, placement.Timeslot.ID))
		}
		if placement.Room != nil && !talk.TalkType.IsCompatibleRoom(placement.Room) {
			errs = append(errs, fmt.Errorf("talk %s of type %s cannot be held in room %s",
				talk.Code, talk.TalkType.Name, placement.Room.ID))
		}
	}
	return errs
}
