// Package characters holds the buddy roster a learner picks from.
package characters

import (
	"fmt"
	"math/rand/v2"
)

// ID identifies a buddy character. It is persisted in the user record.
type ID string

const (
	Bunny   ID = "bunny"
	Panda   ID = "panda"
	Bear    ID = "bear"
	Monkey  ID = "monkey"
	Horse   ID = "horse"
	Octopus ID = "octopus"
)

// Character is a static roster entry.
type Character struct {
	ID          ID
	Name        string
	Emoji       string
	Color       string // hex, used by the theme
	Personality string

	Greetings      []string
	Encouragements []string
	Celebrations   []string
}

// FirstName returns the first word of the character's name.
func (c Character) FirstName() string {
	for i, r := range c.Name {
		if r == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}

// Mood selects which message pool a line comes from.
type Mood string

const (
	MoodGreeting      Mood = "greeting"
	MoodEncouragement Mood = "encouragement"
	MoodCelebration   Mood = "celebration"
)

// ParseMood converts a user-supplied string into a Mood.
func ParseMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodGreeting, MoodEncouragement, MoodCelebration:
		return Mood(s), nil
	}
	return "", fmt.Errorf("unknown mood %q", s)
}

// Pool returns the message pool for the given mood.
func (c Character) Pool(m Mood) []string {
	switch m {
	case MoodEncouragement:
		return c.Encouragements
	case MoodCelebration:
		return c.Celebrations
	default:
		return c.Greetings
	}
}

// All returns the roster in display order.
func All() []Character {
	out := make([]Character, 0, len(order))
	for _, id := range order {
		out = append(out, roster[id])
	}
	return out
}

// Get returns the character with the given id.
func Get(id ID) (Character, bool) {
	c, ok := roster[id]
	return c, ok
}

// MustGet returns the character with the given id, or the bunny when the
// id is unknown.
func MustGet(id ID) Character {
	if c, ok := roster[id]; ok {
		return c
	}
	return roster[Bunny]
}

// Valid reports whether id names a roster entry.
func Valid(id ID) bool {
	_, ok := roster[id]
	return ok
}

// Picker chooses random lines from message pools.
type Picker struct {
	rng *rand.Rand
}

// NewPicker returns a Picker. A nil rng uses a randomly seeded source.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{rng: rng}
}

// Pick returns one message from pool, or "" when the pool is empty.
func (p *Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[p.rng.IntN(len(pool))]
}

// Line returns a random line for the character and mood.
func (p *Picker) Line(c Character, m Mood) string {
	return p.Pick(c.Pool(m))
}
