// Package quiz runs quiz attempts: picking questions, tracking up to three
// tries per question, and scoring the finished run.
package quiz

// Kind describes how a question is asked.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTimeMatch      Kind = "time-match"
	KindFillBlank      Kind = "fill-blank"
)

// Question is a static question bank entry.
type Question struct {
	ID       int
	LessonID int
	Kind     Kind
	Prompt   string

	// TimeShown is an "H:MM" time drawn next to the prompt, or "".
	TimeShown string

	Options     []string
	Correct     int // index into Options
	Explanation string
}

// ForLesson returns the bank entries tagged with lessonID, in bank order.
func ForLesson(bank []Question, lessonID int) []Question {
	var out []Question
	for _, q := range bank {
		if q.LessonID == lessonID {
			out = append(out, q)
		}
	}
	return out
}
