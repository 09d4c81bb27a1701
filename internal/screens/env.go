// Package screens holds the dependencies shared by every TotoTime screen.
// Each screen lives in its own subpackage.
package screens

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/ui/layout"
)

// Env is handed to every screen constructor.
type Env struct {
	Store  *progress.Store
	Buddy  *buddy.Service
	Logger *zap.Logger
	Now    func() time.Time
	Rand   *rand.Rand
}

// Ctx is the context store calls run under. Screens run on the Bubble
// Tea loop, which has no request scope of its own.
func (e *Env) Ctx() context.Context { return context.Background() }

// Clock returns Now, defaulting to time.Now.
func (e *Env) Clock() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// Log returns a named logger, never nil.
func (e *Env) Log(name string) *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger.Named(name)
}

// User returns the active learner. Screens past character selection can
// rely on ok being true.
func (e *Env) User() (progress.UserRecord, bool) {
	if e.Store == nil {
		return progress.UserRecord{}, false
	}
	return e.Store.User()
}

// Character returns the learner's buddy, the bunny if there is none.
func (e *Env) Character() characters.Character {
	u, _ := e.User()
	return characters.MustGet(u.Character)
}

// Learner is the header summary for the active learner.
func (e *Env) Learner() layout.Learner {
	u, ok := e.User()
	if !ok {
		return layout.Learner{}
	}
	return layout.Learner{
		Name:   u.Name,
		Emoji:  characters.MustGet(u.Character).Emoji,
		Stars:  u.Progress.TotalStars,
		Streak: u.Progress.CurrentStreak,
	}
}

// Completed returns the learner's completed lesson ids.
func (e *Env) Completed() []int {
	u, _ := e.User()
	return u.Progress.LessonsCompleted
}

var (
	lineSeq atomic.Int64
	tickSeq atomic.Int64
)

// TickID returns a fresh id for a clock.Tick loop. A screen that is
// rebuilt gets a new id, so ticks still in flight for the old one are
// dropped.
func (e *Env) TickID() int { return int(tickSeq.Add(1)) }

// BuddyLine returns a static line to show right away, a key, and a
// command that may later deliver a model-written replacement as a
// buddy.LineMsg carrying that key.
func (e *Env) BuddyLine(mood characters.Mood, situation string) (string, string, tea.Cmd) {
	u, _ := e.User()
	req := buddy.Request{
		Character: characters.MustGet(u.Character),
		Mood:      mood,
		Situation: situation,
		Learner:   u.Name,
	}
	key := fmt.Sprintf("line-%d", lineSeq.Add(1))
	if e.Buddy == nil {
		return characters.NewPicker(e.Rand).Line(req.Character, mood), key, nil
	}
	return e.Buddy.Static(req), key, e.Buddy.Fetch(key, req)
}
