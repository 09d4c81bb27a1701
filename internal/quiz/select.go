package quiz

import (
	"math/rand/v2"
	"slices"
)

const (
	// GeneralQuizSize caps a general quiz drawn from completed lessons.
	GeneralQuizSize = 7

	// StarterQuizSize is the length of the quiz offered before any lesson
	// is completed.
	StarterQuizSize = 5

	// StarterLessonID supplies the starter quiz questions.
	StarterLessonID = 1
)

// Select picks the questions for a quiz run.
//
// A lesson-scoped quiz (lessonID > 0) uses every question tagged with that
// lesson in bank order. A general quiz (lessonID 0) with nothing completed
// uses the first StarterQuizSize questions of the starter lesson; otherwise
// it shuffles the questions of all completed lessons and keeps at most
// GeneralQuizSize. The result may be empty.
func Select(bank []Question, lessonID int, completed []int, rng *rand.Rand) []Question {
	if lessonID > 0 {
		return ForLesson(bank, lessonID)
	}

	if len(completed) == 0 {
		starter := ForLesson(bank, StarterLessonID)
		if len(starter) > StarterQuizSize {
			starter = starter[:StarterQuizSize]
		}
		return starter
	}

	var pool []Question
	for _, q := range bank {
		if slices.Contains(completed, q.LessonID) {
			pool = append(pool, q)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > GeneralQuizSize {
		pool = pool[:GeneralQuizSize]
	}
	return pool
}
