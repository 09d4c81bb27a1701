// Package screenstest builds screen environments backed by a throwaway
// SQLite database, and helpers for driving screens with key presses.
package screenstest

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/buddy"
	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/llm"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/screens"
	"github.com/abhisek/tototime/internal/store"
)

// Now is the fixed time test environments start at.
var Now = time.Date(2026, 3, 10, 15, 4, 5, 0, time.Local)

type options struct {
	name      string
	character characters.ID
	provider  llm.Provider
	completed []int
	stars     int
	now       time.Time
}

type Option func(*options)

// WithUser creates a learner before the screen is built.
func WithUser(name string, id characters.ID) Option {
	return func(o *options) { o.name, o.character = name, id }
}

// WithCompleted marks lessons done for the learner.
func WithCompleted(ids ...int) Option {
	return func(o *options) { o.completed = ids }
}

func WithStars(n int) Option {
	return func(o *options) { o.stars = n }
}

// WithProvider lets the buddy ask p for lines.
func WithProvider(p llm.Provider) Option {
	return func(o *options) { o.provider = p }
}

func WithNow(t time.Time) Option {
	return func(o *options) { o.now = t }
}

// NewEnv returns an Env over a fresh database in t.TempDir().
func NewEnv(t testing.TB, opts ...Option) *screens.Env {
	t.Helper()
	o := options{now: Now}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := store.Open(filepath.Join(t.TempDir(), "tototime.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := func() time.Time { return o.now }
	ctx := context.Background()
	ps, err := progress.Open(ctx, db.Records(), progress.WithClock(now))
	require.NoError(t, err)

	if o.name != "" {
		_, err := ps.CreateUser(ctx, o.name, o.character)
		require.NoError(t, err)
		for _, id := range o.completed {
			require.NoError(t, ps.CompleteLesson(ctx, id))
		}
		if o.stars > 0 {
			require.NoError(t, ps.AddStars(ctx, o.stars))
		}
	}

	rng := rand.New(rand.NewPCG(7, 11))
	return &screens.Env{
		Store:  ps,
		Buddy:  buddy.New(o.provider, buddy.WithPicker(characters.NewPicker(rand.New(rand.NewPCG(3, 5))))),
		Logger: zap.NewNop(),
		Now:    now,
		Rand:   rng,
	}
}

// Key builds a key press from its name: "enter", "esc", "up", "down",
// "left", "right", "tab", "space", or a single character.
func Key(name string) tea.KeyPressMsg {
	switch name {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

// Msgs runs cmd and flattens batches. Commands that do not finish within
// a short wait, such as timers, are skipped.
func Msgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(250 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Msgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// Find returns the first message of type T.
func Find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
