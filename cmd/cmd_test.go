package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tototime/internal/characters"
	"github.com/abhisek/tototime/internal/progress"
	"github.com/abhisek/tototime/internal/store"
)

type harness struct {
	db     string
	config string
	log    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return &harness{
		db:     filepath.Join(dir, "tototime.db"),
		config: filepath.Join(dir, "config.yaml"),
		log:    filepath.Join(dir, "state", "tototime", "tototime.log"),
	}
}

// seed creates Mia with one finished lesson and one quiz.
func (h *harness) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	db, err := store.Open(h.db)
	require.NoError(t, err)
	defer db.Close()

	ps, err := progress.Open(ctx, db.Records())
	require.NoError(t, err)
	_, err = ps.CreateUser(ctx, "Mia", characters.Panda)
	require.NoError(t, err)
	require.NoError(t, ps.CompleteLesson(ctx, 1))
	require.NoError(t, ps.AddStars(ctx, 3))
	require.NoError(t, ps.RecordQuizResult(ctx, progress.QuizScore{LessonID: 1, Score: 4, TotalQuestions: 5}, 3))
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", h.db, "--config", h.config))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStats(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No learner yet")

	h.seed(t)
	out, err = h.run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Learner:   Mia")
	assert.Contains(t, out, "Panda")
	assert.Contains(t, out, "Stars:     6")
	assert.Contains(t, out, "Lessons:   1/8 (What is a Clock?)")
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "Last saved ")
}

func TestResetKeepsLearner(t *testing.T) {
	h := newHarness(t)
	h.seed(t)

	out, err := h.run(t, "reset", "--all=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset.")

	out, err = h.run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Learner:   Mia")
	assert.Contains(t, out, "Stars:     0")
	assert.Contains(t, out, "Lessons:   0/8")
}

func TestResetAll(t *testing.T) {
	h := newHarness(t)
	h.seed(t)

	out, err := h.run(t, "reset", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Learner removed.")

	out, err = h.run(t, "reset", "--all=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to reset.")
}

func TestLessonsMarks(t *testing.T) {
	h := newHarness(t)
	h.seed(t)

	out, err := h.run(t, "lessons")
	require.NoError(t, err)
	assert.Contains(t, out, "What is a Clock?")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "🔒")
}

func TestExport(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "export")
	assert.Error(t, err)

	h.seed(t)
	out, err := h.run(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Mia"`)
	assert.Contains(t, out, `"character": "panda"`)
	assert.Contains(t, out, `"lessonsCompleted": [`)
}

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "config", "init", "--force=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")
	_, err = os.Stat(h.config)
	require.NoError(t, err)

	_, err = h.run(t, "config", "init", "--force=false")
	assert.ErrorContains(t, err, "already exists")

	out, err = h.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "buddy:")
	assert.Contains(t, out, "level: info")
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out, err := h.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tototime (devel)")
}

func TestOpenFailureIsLogged(t *testing.T) {
	h := newHarness(t)
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	h.db = filepath.Join(blocker, "tototime.db")

	_, err := h.run(t, "stats")
	require.ErrorContains(t, err, "resolve DB path")

	data, err := os.ReadFile(h.log)
	require.NoError(t, err)
	assert.Contains(t, string(data), "open environment")
	assert.Contains(t, string(data), "resolve DB path")
}
