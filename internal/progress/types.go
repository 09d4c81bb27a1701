package progress

import (
	"slices"
	"time"

	"github.com/abhisek/tototime/internal/characters"
)

// RecordKey is the fixed storage key of the learner record.
const RecordKey = "tototime-user-data"

// DateLayout is the calendar-date format used for lastPlayedDate.
const DateLayout = "2006-01-02"

const (
	// MaxNameLength is the longest accepted learner name, in runes.
	MaxNameLength = 20

	// MinNameLength is the shortest name the welcome screen accepts.
	MinNameLength = 2
)

// UserRecord is the single persisted learner document.
type UserRecord struct {
	Name      string        `json:"name"`
	Character characters.ID `json:"character"`
	Progress  Progress      `json:"progress"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Progress tracks everything the learner has earned.
type Progress struct {
	// LessonsCompleted holds lesson ids in completion order, no duplicates.
	LessonsCompleted []int `json:"lessonsCompleted"`

	// QuizScores is the append-only quiz history.
	QuizScores []QuizScore `json:"quizScores"`

	TotalStars    int `json:"totalStars"`
	CurrentStreak int `json:"currentStreak"`

	// LastPlayedDate is a local calendar date (DateLayout) or nil.
	LastPlayedDate *string `json:"lastPlayedDate"`
}

// QuizScore is one completed quiz run.
type QuizScore struct {
	LessonID       int       `json:"lessonId"` // 0 for a general quiz
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Date           time.Time `json:"date"`
	SessionID      string    `json:"sessionId,omitempty"`
}

// HasCompleted reports whether the lesson is in LessonsCompleted.
func (p Progress) HasCompleted(lessonID int) bool {
	return slices.Contains(p.LessonsCompleted, lessonID)
}

// BestScore returns the best score recorded for a lesson quiz.
func (p Progress) BestScore(lessonID int) (QuizScore, bool) {
	var best QuizScore
	found := false
	for _, q := range p.QuizScores {
		if q.LessonID != lessonID {
			continue
		}
		if !found || q.Score*best.TotalQuestions > best.Score*q.TotalQuestions {
			best = q
			found = true
		}
	}
	return best, found
}

// clone returns a deep copy so mutations never touch the live record.
func (u *UserRecord) clone() *UserRecord {
	c := *u
	c.Progress.LessonsCompleted = slices.Clone(u.Progress.LessonsCompleted)
	c.Progress.QuizScores = slices.Clone(u.Progress.QuizScores)
	if u.Progress.LastPlayedDate != nil {
		d := *u.Progress.LastPlayedDate
		c.Progress.LastPlayedDate = &d
	}
	return &c
}

// normalize replaces nil slices so the JSON form always carries arrays.
func (u *UserRecord) normalize() {
	if u.Progress.LessonsCompleted == nil {
		u.Progress.LessonsCompleted = []int{}
	}
	if u.Progress.QuizScores == nil {
		u.Progress.QuizScores = []QuizScore{}
	}
}
