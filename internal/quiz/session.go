package quiz

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tototime/internal/progress"
)

// MaxAttempts is the number of confirmations allowed per question.
const MaxAttempts = 3

// Answer slot sentinels. A slot holding an index >= 0 was answered
// correctly with that option.
const (
	Unanswered = -2
	Incorrect  = -1
)

var (
	ErrNoQuestions = errors.New("no eligible questions")
	ErrNotAnswered = errors.New("current question is not resolved")
	ErrFinished    = errors.New("quiz already finished")
)

// Phase is the state of the current question.
type Phase int

const (
	PhaseAnswering Phase = iota // accepting selections
	PhaseCorrect                // answered correctly
	PhaseRevealed               // out of attempts, answer shown
)

// Outcome reports what a confirmation did.
type Outcome int

const (
	OutcomeNone     Outcome = iota // nothing to confirm
	OutcomeCorrect                 // right answer
	OutcomeWrong                   // wrong, tries remain
	OutcomeRevealed                // wrong, out of tries
)

// Recorder persists a finished quiz: the history entry and the stars
// earned are one write.
type Recorder interface {
	RecordQuizResult(ctx context.Context, score progress.QuizScore, stars int) error
}

// Result summarises a finished run.
type Result struct {
	SessionID  string
	LessonID   int
	Correct    int
	Total      int
	Stars      int
	Percentage int
}

// Session is one run through a fixed question set.
type Session struct {
	id        string
	lessonID  int
	questions []Question
	recorder  Recorder
	now       func() time.Time

	answers  []int
	index    int
	attempts int
	rejected map[int]bool
	pending  int // -1 when nothing is selected
	phase    Phase
	result   *Result
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the time source used to date the recorded score.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession starts a run. recorder may be nil.
func NewSession(questions []Question, lessonID int, recorder Recorder, opts ...SessionOption) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		lessonID:  lessonID,
		questions: slices.Clone(questions),
		recorder:  recorder,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	s.answers = make([]int, len(s.questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.index = 0
	s.result = nil
	s.resetQuestion()
}

func (s *Session) resetQuestion() {
	s.attempts = 0
	s.rejected = map[int]bool{}
	s.pending = -1
	s.phase = PhaseAnswering
}

// ID returns the run's unique id. Retry assigns a new one.
func (s *Session) ID() string { return s.id }

// LessonID returns the lesson scope, 0 for a general quiz.
func (s *Session) LessonID() int { return s.lessonID }

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.questions) }

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Current returns the current question.
func (s *Session) Current() Question { return s.questions[s.index] }

// Phase returns the state of the current question.
func (s *Session) Phase() Phase { return s.phase }

// Attempts returns confirmations spent on the current question.
func (s *Session) Attempts() int { return s.attempts }

// AttemptsRemaining returns confirmations left on the current question.
func (s *Session) AttemptsRemaining() int { return MaxAttempts - s.attempts }

// LastChance reports whether exactly one attempt remains.
func (s *Session) LastChance() bool { return s.AttemptsRemaining() == 1 }

// Pending returns the selected, unconfirmed option.
func (s *Session) Pending() (int, bool) { return s.pending, s.pending >= 0 }

// Rejected reports whether option i was already confirmed wrong.
func (s *Session) Rejected(i int) bool { return s.rejected[i] }

// Answers returns a copy of the answer slots.
func (s *Session) Answers() []int { return slices.Clone(s.answers) }

// Result returns the finished result, or nil while the run is in progress.
func (s *Session) Result() *Result { return s.result }

// Finished reports whether the run has been scored.
func (s *Session) Finished() bool { return s.result != nil }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.index == len(s.questions)-1 }

// CorrectCount returns how many slots hold a correct answer.
func (s *Session) CorrectCount() int {
	n := 0
	for _, a := range s.answers {
		if a >= 0 {
			n++
		}
	}
	return n
}

// SelectAnswer sets the pending selection. It is ignored once the question
// is resolved, for out-of-range options, and for rejected options.
func (s *Session) SelectAnswer(i int) bool {
	if s.result != nil || s.phase != PhaseAnswering {
		return false
	}
	if i < 0 || i >= len(s.Current().Options) || s.rejected[i] {
		return false
	}
	s.pending = i
	return true
}

// ConfirmAnswer checks the pending selection and spends one attempt.
func (s *Session) ConfirmAnswer() Outcome {
	if s.result != nil || s.phase != PhaseAnswering || s.pending < 0 {
		return OutcomeNone
	}
	s.attempts++
	choice := s.pending

	if choice == s.Current().Correct {
		s.phase = PhaseCorrect
		s.answers[s.index] = choice
		return OutcomeCorrect
	}

	s.rejected[choice] = true
	s.pending = -1
	if s.attempts >= MaxAttempts {
		s.phase = PhaseRevealed
		s.answers[s.index] = Incorrect
		return OutcomeRevealed
	}
	return OutcomeWrong
}

// Advance moves to the next question once the current one is resolved. On
// the last question it scores the run and hands it to the recorder once.
// A recorder failure is returned alongside the result.
func (s *Session) Advance(ctx context.Context) (*Result, error) {
	if s.result != nil {
		return nil, ErrFinished
	}
	if s.phase == PhaseAnswering {
		return nil, ErrNotAnswered
	}

	if !s.IsLast() {
		s.index++
		s.resetQuestion()
		return nil, nil
	}

	correct := s.CorrectCount()
	total := len(s.questions)
	s.result = &Result{
		SessionID:  s.id,
		LessonID:   s.lessonID,
		Correct:    correct,
		Total:      total,
		Stars:      Stars(correct, total),
		Percentage: Percentage(correct, total),
	}

	if s.recorder != nil {
		score := progress.QuizScore{
			LessonID:       s.lessonID,
			Score:          correct,
			TotalQuestions: total,
			Date:           s.now(),
			SessionID:      s.id,
		}
		if err := s.recorder.RecordQuizResult(ctx, score, s.result.Stars); err != nil {
			return s.result, fmt.Errorf("record quiz result: %w", err)
		}
	}
	return s.result, nil
}

// Retry restarts the run on the same questions under a new id. History
// already recorded is kept.
func (s *Session) Retry() {
	s.reset()
}
