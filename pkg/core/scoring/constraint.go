package scoring

import (
	"github.com/samber/lo"

	"github.com/jakechorley/conference-scheduling/pkg/core/model"
)

// Level is the score accumulator a constraint contributes to
type Level int

const (
	Hard Level = iota
	Medium
	Soft
)

func (l Level) String() string {
	switch l {
	case Hard:
		return "hard"
	case Medium:
		return "medium"
	default:
		return "soft"
	}
}

// MarshalText renders the level by name in JSON and YAML output
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Impact decides whether a constraint's weighted units are subtracted or added
type Impact int

const (
	Penalty Impact = iota
	Reward
)

func (i Impact) String() string {
	if i == Reward {
		return "reward"
	}
	return "penalty"
}

// MarshalText renders the impact by name in JSON and YAML output
func (i Impact) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// sign returns -1 for penalties and +1 for rewards
func (i Impact) sign() int64 {
	if i == Reward {
		return 1
	}
	return -1
}

// Match is a single triggered instance of a constraint
type Match struct {
	// TalkCodes are the implicated talks, in blame order
	TalkCodes []string
	// SpeakerIDs are the implicated speakers, if any
	SpeakerIDs []string
	// Units is the unweighted, positive contribution
	Units int64

	// describe renders the human readable explanation on demand
	describe func() string
}

// Description renders the explanation for the match
func (m Match) Description() string {
	if m.describe == nil {
		return ""
	}
	return m.describe()
}

// Emitter receives every match a constraint produces
type Emitter func(Match)

// Constraint is one named business rule of the catalog.
// Implementations must be pure: Evaluate may be called concurrently on distinct solutions.
type Constraint interface {
	// Name is the stable identifier used as the configuration key
	Name() string

	Level() Level

	Impact() Impact

	// Evaluate emits one Match per triggered instance, in a deterministic order
	Evaluate(solution *Solution, emit Emitter)
}

// constraint is the closure backed Constraint used by the catalog
type constraint struct {
	name     string
	level    Level
	impact   Impact
	evaluate func(solution *Solution, emit Emitter)
}

func (c *constraint) Name() string {
	return c.name
}

func (c *constraint) Level() Level {
	return c.level
}

func (c *constraint) Impact() Impact {
	return c.impact
}

func (c *constraint) Evaluate(solution *Solution, emit Emitter) {
	c.evaluate(solution, emit)
}

func penalize(name string, level Level, evaluate func(*Solution, Emitter)) Constraint {
	return &constraint{name: name, level: level, impact: Penalty, evaluate: evaluate}
}

func reward(name string, level Level, evaluate func(*Solution, Emitter)) Constraint {
	return &constraint{name: name, level: level, impact: Reward, evaluate: evaluate}
}

// talkCodes returns the codes of the given talks
func talkCodes(talks ...model.ScheduledTalk) []string {
	return lo.Map(talks, func(talk model.ScheduledTalk, _ int) string { return talk.Code })
}
