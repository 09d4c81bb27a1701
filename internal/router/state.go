package router

// Name identifies a screen.
type Name string

const (
	Welcome         Name = "welcome"
	CharacterSelect Name = "character-select"
	Home            Name = "home"
	Clock           Name = "clock"
	Learning        Name = "learning"
	Lesson          Name = "lesson"
	Quiz            Name = "quiz"
	Results         Name = "results"
)

// QuizResults is the summary carried from a finished quiz to the results
// screen.
type QuizResults struct {
	Correct  int
	Total    int
	LessonID int
}

// State is the navigation state. Transitions return a new value and never
// fail; any screen may be reached from any other.
type State struct {
	Screen Name
	// LessonID is the lesson being studied or quizzed on. 0 means none,
	// and for a quiz it means the general quiz.
	LessonID int
	Results  *QuizResults
	// PendingName carries the name typed on the welcome screen until a
	// character is chosen.
	PendingName string
}

// Initial returns the start state: home for a returning learner,
// welcome otherwise.
func Initial(hasUser bool) State {
	if hasUser {
		return State{Screen: Home}
	}
	return State{Screen: Welcome}
}

func (s State) Navigate(to Name) State {
	s.Screen = to
	return s
}

func (s State) ChooseCharacter(name string) State {
	s.PendingName = name
	s.Screen = CharacterSelect
	return s
}

func (s State) UserCreated() State {
	s.PendingName = ""
	s.Screen = Home
	return s
}

func (s State) EnterLesson(id int) State {
	s.LessonID = id
	s.Screen = Lesson
	return s
}

func (s State) LeaveLesson() State {
	s.LessonID = 0
	s.Screen = Learning
	return s
}

func (s State) StartQuiz(lessonID int) State {
	s.LessonID = lessonID
	s.Results = nil
	s.Screen = Quiz
	return s
}

func (s State) ShowResults(r QuizResults) State {
	s.Results = &r
	s.Screen = Results
	return s
}

// RetryQuiz returns to the quiz keeping its lesson scope.
func (s State) RetryQuiz() State {
	s.Results = nil
	s.Screen = Quiz
	return s
}

func (s State) BackHome() State {
	s.Results = nil
	s.LessonID = 0
	s.Screen = Home
	return s
}

// Reset is the state after the learner's record was deleted.
func (s State) Reset() State {
	return State{Screen: Welcome}
}
