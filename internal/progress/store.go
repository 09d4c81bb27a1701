// Package progress owns the persisted learner record and every mutation
// applied to it.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/abhisek/tototime/internal/characters"
)

// Repo is the key/value storage the record lives in.
type Repo interface {
	// Get returns the stored bytes and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Store holds the active learner record. Every mutation writes through to
// the Repo before the in-memory record is replaced, so a failed write
// leaves the previous state intact.
//
// Store is not safe for concurrent use; the TUI drives it from the event
// loop only. Several processes sharing one database follow last-write-wins.
type Store struct {
	repo   Repo
	user   *UserRecord
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for load warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open loads the learner record from repo. A missing or malformed record
// yields a Store with no user; only storage failures return an error.
func Open(ctx context.Context, repo Repo, opts ...Option) (*Store, error) {
	s := &Store{
		repo:   repo,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	data, ok, err := repo.Get(ctx, RecordKey)
	if err != nil {
		return nil, fmt.Errorf("load user record: %w", err)
	}
	if !ok {
		return s, nil
	}

	u, err := decodeRecord(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable user record", zap.Error(err))
		return s, nil
	}
	s.user = u
	return s, nil
}

func decodeRecord(data []byte) (*UserRecord, error) {
	var u UserRecord
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	if strings.TrimSpace(u.Name) == "" {
		return nil, fmt.Errorf("record has no name")
	}
	if !characters.Valid(u.Character) {
		return nil, fmt.Errorf("record has unknown character %q", u.Character)
	}
	u.normalize()
	return &u, nil
}

// User returns a copy of the active record.
func (s *Store) User() (UserRecord, bool) {
	if s.user == nil {
		return UserRecord{}, false
	}
	return *s.user.clone(), true
}

// IsNewUser reports whether no learner record exists.
func (s *Store) IsNewUser() bool {
	return s.user == nil
}

// ValidateName trims name and checks it against the storage rules.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// CreateUser starts a fresh record for the learner and makes it active.
// An existing record is replaced.
func (s *Store) CreateUser(ctx context.Context, name string, character characters.ID) (*UserRecord, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	if !characters.Valid(character) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, character)
	}

	u := &UserRecord{
		Name:      name,
		Character: character,
		CreatedAt: s.now(),
	}
	u.normalize()

	if err := s.persist(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.user = u
	out := *u.clone()
	return &out, nil
}

// CompleteLesson records the lesson as completed. Completing it again is a
// no-op.
func (s *Store) CompleteLesson(ctx context.Context, lessonID int) error {
	return s.update(ctx, "complete lesson", func(u *UserRecord) (bool, error) {
		if u.Progress.HasCompleted(lessonID) {
			return false, nil
		}
		u.Progress.LessonsCompleted = append(u.Progress.LessonsCompleted, lessonID)
		return true, nil
	})
}

// AddStars adds n stars to the learner's total.
func (s *Store) AddStars(ctx context.Context, n int) error {
	if n < 0 {
		return ErrNegativeStars
	}
	return s.update(ctx, "add stars", func(u *UserRecord) (bool, error) {
		u.Progress.TotalStars += n
		return n != 0, nil
	})
}

// AddQuizScore appends a quiz result to the history.
func (s *Store) AddQuizScore(ctx context.Context, score QuizScore) error {
	return s.RecordQuizResult(ctx, score, 0)
}

// RecordQuizResult appends a quiz result and awards stars in one write.
func (s *Store) RecordQuizResult(ctx context.Context, score QuizScore, stars int) error {
	if err := checkScore(score); err != nil {
		return err
	}
	if stars < 0 {
		return ErrNegativeStars
	}
	if score.Date.IsZero() {
		score.Date = s.now()
	}
	return s.update(ctx, "record quiz result", func(u *UserRecord) (bool, error) {
		u.Progress.QuizScores = append(u.Progress.QuizScores, score)
		u.Progress.TotalStars += stars
		return true, nil
	})
}

func checkScore(q QuizScore) error {
	if q.TotalQuestions <= 0 || q.Score < 0 || q.Score > q.TotalQuestions {
		return fmt.Errorf("%w: %d/%d", ErrInvalidScore, q.Score, q.TotalQuestions)
	}
	return nil
}

// UpdateStreak applies the daily streak rule for today and stamps today as
// the last played date.
func (s *Store) UpdateStreak(ctx context.Context) error {
	now := s.now()
	today := now.Format(DateLayout)
	return s.update(ctx, "update streak", func(u *UserRecord) (bool, error) {
		p := &u.Progress
		next := NextStreak(p.LastPlayedDate, p.CurrentStreak, now)
		if next == p.CurrentStreak && p.LastPlayedDate != nil && *p.LastPlayedDate == today {
			return false, nil
		}
		p.CurrentStreak = next
		p.LastPlayedDate = &today
		return true, nil
	})
}

// ResetProgress clears all progress but keeps the learner's name and
// character.
func (s *Store) ResetProgress(ctx context.Context) error {
	return s.update(ctx, "reset progress", func(u *UserRecord) (bool, error) {
		u.Progress = Progress{}
		u.normalize()
		return true, nil
	})
}

// DeleteUser removes the persisted record entirely.
func (s *Store) DeleteUser(ctx context.Context) error {
	if err := s.repo.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.user = nil
	return nil
}

// update runs fn against a copy of the record, persists it when fn reports
// a change, then swaps it in.
func (s *Store) update(ctx context.Context, op string, fn func(u *UserRecord) (bool, error)) error {
	if s.user == nil {
		return ErrNoUser
	}
	next := s.user.clone()
	changed, err := fn(next)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.user = next
	return nil
}

func (s *Store) persist(ctx context.Context, u *UserRecord) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	return s.repo.Put(ctx, RecordKey, data)
}
