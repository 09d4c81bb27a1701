// Package lessons holds the static lesson roster and the prerequisite gate
// that decides which lessons a learner may open.
package lessons

// Difficulty labels a lesson on the learning path.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// DisplayName returns a human-readable name for a difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// StepKind distinguishes how a lesson step is presented.
type StepKind string

const (
	StepExplanation StepKind = "explanation"
	StepPractice    StepKind = "practice"
	StepInteractive StepKind = "interactive"
)

// Step is one page of a lesson.
type Step struct {
	ID      int
	Kind    StepKind
	Title   string
	Content string

	// Optional extras; empty strings are not shown.
	CharacterMessage string
	FunFact          string
	TimeExample      string // "H:MM", drawn as a clock face
	Hint             string
}

// Lesson is a static roster entry. IDs start at 1.
type Lesson struct {
	ID              int
	Title           string
	Description     string
	Difficulty      Difficulty
	Icon            string
	Color           string
	Steps           []Step
	RequiredLessons []int
}

// StarsPerLesson is awarded every time a lesson's last step is finished.
const StarsPerLesson = 3
