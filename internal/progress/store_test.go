package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/characters"
)

// memRepo is an in-memory Repo that can be told to fail writes.
type memRepo struct {
	data    map[string][]byte
	failPut error
	puts    int
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string][]byte{}}
}

func (r *memRepo) Get(_ context.Context, key string) ([]byte, bool, error) {
	d, ok := r.data[key]
	return d, ok, nil
}

func (r *memRepo) Put(_ context.Context, key string, data []byte) error {
	if r.failPut != nil {
		return r.failPut
	}
	r.puts++
	r.data[key] = append([]byte(nil), data...)
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestStore(t *testing.T, repo *memRepo, clk *fakeClock) *Store {
	t.Helper()
	s, err := Open(context.Background(), repo, WithClock(clk.Now))
	require.NoError(t, err)
	return s
}

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestOpenEmptyRepo(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	assert.True(t, s.IsNewUser())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestOpenMalformedRecordMeansNoUser(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":      `{"name":`,
		"no name":       `{"name":"","character":"panda"}`,
		"bad character": `{"name":"Mia","character":"dragon"}`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := newMemRepo()
			repo.data[RecordKey] = []byte(raw)
			s := newTestStore(t, repo, &fakeClock{t: day(2026, 3, 1, 9)})
			assert.True(t, s.IsNewUser())
		})
	}
}

func TestCreateUser(t *testing.T) {
	clk := &fakeClock{t: day(2026, 3, 1, 9)}
	repo := newMemRepo()
	s := newTestStore(t, repo, clk)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "  Mia ", characters.Panda)
	require.NoError(t, err)
	assert.Equal(t, "Mia", u.Name)
	assert.Equal(t, characters.Panda, u.Character)
	assert.Equal(t, 0, u.Progress.TotalStars)
	assert.Empty(t, u.Progress.LessonsCompleted)
	assert.Nil(t, u.Progress.LastPlayedDate)
	assert.False(t, s.IsNewUser())

	// Persisted JSON uses the fixed field names.
	var doc map[string]any
	require.NoError(t, json.Unmarshal(repo.data[RecordKey], &doc))
	assert.Equal(t, "Mia", doc["name"])
	assert.Equal(t, "panda", doc["character"])
	prog := doc["progress"].(map[string]any)
	assert.Equal(t, []any{}, prog["lessonsCompleted"])
	assert.Equal(t, []any{}, prog["quizScores"])
	assert.Nil(t, prog["lastPlayedDate"])
}

func TestCreateUserValidation(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "   ", characters.Bear)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = s.CreateUser(ctx, "abcdefghijklmnopqrstu", characters.Bear)
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = s.CreateUser(ctx, "Mia", "dragon")
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	assert.True(t, s.IsNewUser())
}

func TestMutationsWithoutUser(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()

	assert.ErrorIs(t, s.CompleteLesson(ctx, 1), ErrNoUser)
	assert.ErrorIs(t, s.AddStars(ctx, 3), ErrNoUser)
	assert.ErrorIs(t, s.UpdateStreak(ctx), ErrNoUser)
	assert.ErrorIs(t, s.ResetProgress(ctx), ErrNoUser)
	assert.ErrorIs(t, s.AddQuizScore(ctx, QuizScore{LessonID: 1, Score: 1, TotalQuestions: 2}), ErrNoUser)
}

func TestCompleteLessonIsIdempotent(t *testing.T) {
	repo := newMemRepo()
	s := newTestStore(t, repo, &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)

	require.NoError(t, s.CompleteLesson(ctx, 1))
	require.NoError(t, s.CompleteLesson(ctx, 3))
	require.NoError(t, s.CompleteLesson(ctx, 1))

	u, _ := s.User()
	assert.Equal(t, []int{1, 3}, u.Progress.LessonsCompleted)
}

func TestAddStars(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)

	require.NoError(t, s.AddStars(ctx, 3))
	require.NoError(t, s.AddStars(ctx, 0))
	assert.ErrorIs(t, s.AddStars(ctx, -1), ErrNegativeStars)

	u, _ := s.User()
	assert.Equal(t, 3, u.Progress.TotalStars)
}

func TestRecordQuizResult(t *testing.T) {
	clk := &fakeClock{t: day(2026, 3, 1, 9)}
	s := newTestStore(t, newMemRepo(), clk)
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)

	require.NoError(t, s.RecordQuizResult(ctx, QuizScore{LessonID: 1, Score: 4, TotalQuestions: 5}, 3))
	require.NoError(t, s.AddQuizScore(ctx, QuizScore{LessonID: 1, Score: 4, TotalQuestions: 5}))

	u, _ := s.User()
	require.Len(t, u.Progress.QuizScores, 2)
	assert.Equal(t, clk.t, u.Progress.QuizScores[0].Date)
	assert.Equal(t, 3, u.Progress.TotalStars)

	assert.ErrorIs(t, s.AddQuizScore(ctx, QuizScore{Score: 6, TotalQuestions: 5}), ErrInvalidScore)
	assert.ErrorIs(t, s.AddQuizScore(ctx, QuizScore{Score: 0, TotalQuestions: 0}), ErrInvalidScore)
}

func TestUpdateStreak(t *testing.T) {
	clk := &fakeClock{t: day(2026, 3, 1, 9)}
	s := newTestStore(t, newMemRepo(), clk)
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)

	streak := func() (int, string) {
		u, _ := s.User()
		return u.Progress.CurrentStreak, *u.Progress.LastPlayedDate
	}

	require.NoError(t, s.UpdateStreak(ctx))
	n, last := streak()
	assert.Equal(t, 1, n)
	assert.Equal(t, "2026-03-01", last)

	clk.t = day(2026, 3, 1, 20)
	require.NoError(t, s.UpdateStreak(ctx))
	n, _ = streak()
	assert.Equal(t, 1, n, "same day keeps the streak")

	clk.t = day(2026, 3, 2, 7)
	require.NoError(t, s.UpdateStreak(ctx))
	n, last = streak()
	assert.Equal(t, 2, n)
	assert.Equal(t, "2026-03-02", last)

	clk.t = day(2026, 3, 5, 7)
	require.NoError(t, s.UpdateStreak(ctx))
	n, last = streak()
	assert.Equal(t, 1, n, "a gap resets the streak")
	assert.Equal(t, "2026-03-05", last)
}

func TestNextStreak(t *testing.T) {
	today := day(2026, 3, 1, 10)
	str := func(s string) *string { return &s }

	tests := []struct {
		name   string
		last   *string
		streak int
		want   int
	}{
		{"absent", nil, 0, 1},
		{"unparseable", str("yesterday"), 4, 1},
		{"same day", str("2026-03-01"), 4, 4},
		{"yesterday across month", str("2026-02-28"), 4, 5},
		{"two days ago", str("2026-02-27"), 4, 1},
		{"future", str("2026-03-02"), 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.last, tt.streak, today))
		})
	}
}

func TestResetProgressKeepsIdentity(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)
	require.NoError(t, s.CompleteLesson(ctx, 1))
	require.NoError(t, s.AddStars(ctx, 3))
	require.NoError(t, s.UpdateStreak(ctx))

	require.NoError(t, s.ResetProgress(ctx))

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "Mia", u.Name)
	assert.Equal(t, characters.Panda, u.Character)
	assert.Empty(t, u.Progress.LessonsCompleted)
	assert.Zero(t, u.Progress.TotalStars)
	assert.Zero(t, u.Progress.CurrentStreak)
	assert.Nil(t, u.Progress.LastPlayedDate)
}

func TestDeleteUser(t *testing.T) {
	repo := newMemRepo()
	s := newTestStore(t, repo, &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx))
	assert.True(t, s.IsNewUser())
	assert.NotContains(t, repo.data, RecordKey)

	reopened := newTestStore(t, repo, &fakeClock{t: day(2026, 3, 1, 9)})
	assert.True(t, reopened.IsNewUser())
}

func TestFailedWriteKeepsPreviousState(t *testing.T) {
	repo := newMemRepo()
	s := newTestStore(t, repo, &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)
	require.NoError(t, s.AddStars(ctx, 2))

	boom := errors.New("disk full")
	repo.failPut = boom

	err = s.AddStars(ctx, 3)
	require.ErrorIs(t, err, boom)
	err = s.CompleteLesson(ctx, 1)
	require.ErrorIs(t, err, boom)

	u, _ := s.User()
	assert.Equal(t, 2, u.Progress.TotalStars)
	assert.Empty(t, u.Progress.LessonsCompleted)
}

func TestReopenSeesPersistedState(t *testing.T) {
	repo := newMemRepo()
	clk := &fakeClock{t: day(2026, 3, 1, 9)}
	s := newTestStore(t, repo, clk)
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)
	require.NoError(t, s.CompleteLesson(ctx, 2))
	require.NoError(t, s.RecordQuizResult(ctx, QuizScore{LessonID: 2, Score: 3, TotalQuestions: 5, SessionID: "abc"}, 2))

	reopened := newTestStore(t, repo, clk)
	u, ok := reopened.User()
	require.True(t, ok)
	assert.Equal(t, []int{2}, u.Progress.LessonsCompleted)
	assert.Equal(t, 2, u.Progress.TotalStars)
	require.Len(t, u.Progress.QuizScores, 1)
	assert.Equal(t, "abc", u.Progress.QuizScores[0].SessionID)
}

func TestUserReturnsCopy(t *testing.T) {
	s := newTestStore(t, newMemRepo(), &fakeClock{t: day(2026, 3, 1, 9)})
	ctx := context.Background()
	_, err := s.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)
	require.NoError(t, s.CompleteLesson(ctx, 1))

	u, _ := s.User()
	u.Progress.LessonsCompleted[0] = 99

	again, _ := s.User()
	assert.Equal(t, []int{1}, again.Progress.LessonsCompleted)
}

func TestBestScore(t *testing.T) {
	p := Progress{QuizScores: []QuizScore{
		{LessonID: 1, Score: 2, TotalQuestions: 5},
		{LessonID: 1, Score: 4, TotalQuestions: 5},
		{LessonID: 2, Score: 5, TotalQuestions: 5},
	}}
	best, ok := p.BestScore(1)
	require.True(t, ok)
	assert.Equal(t, 4, best.Score)

	_, ok = p.BestScore(3)
	assert.False(t, ok)
}
