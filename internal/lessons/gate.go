package lessons

import (
	"fmt"
	"slices"
	"strings"
)

// catalog holds the roster with an id index.
type catalog struct {
	lessons []Lesson
	byID    map[int]*Lesson
}

var c = buildCatalog(roster)

func buildCatalog(ls []Lesson) *catalog {
	cat := &catalog{
		lessons: ls,
		byID:    make(map[int]*Lesson, len(ls)),
	}
	for i := range cat.lessons {
		cat.byID[cat.lessons[i].ID] = &cat.lessons[i]
	}
	return cat
}

// All returns every lesson in path order.
func All() []Lesson {
	return slices.Clone(c.lessons)
}

// Count returns the number of lessons.
func Count() int {
	return len(c.lessons)
}

// Get returns the lesson with the given id.
func Get(id int) (Lesson, bool) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// IsUnlocked reports whether every prerequisite of the lesson appears in
// completed. Lessons without prerequisites are always unlocked; unknown ids
// are always locked.
func IsUnlocked(id int, completed []int) bool {
	l, ok := c.byID[id]
	if !ok {
		return false
	}
	for _, req := range l.RequiredLessons {
		if !slices.Contains(completed, req) {
			return false
		}
	}
	return true
}

// Prerequisites returns the lessons that must be finished before id.
func Prerequisites(id int) []Lesson {
	l, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]Lesson, 0, len(l.RequiredLessons))
	for _, req := range l.RequiredLessons {
		if p, ok := c.byID[req]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// Available returns the unlocked lessons not yet completed, in path order.
func Available(completed []int) []Lesson {
	var out []Lesson
	for _, l := range c.lessons {
		if !slices.Contains(completed, l.ID) && IsUnlocked(l.ID, completed) {
			out = append(out, l)
		}
	}
	return out
}

// Validate checks the roster for structural problems.
func Validate() error {
	return validateLessons(c.lessons)
}

// validateLessons returns a combined error describing every problem found.
func validateLessons(ls []Lesson) error {
	var errs []string

	ids := make(map[int]bool, len(ls))
	for _, l := range ls {
		if l.ID <= 0 {
			errs = append(errs, fmt.Sprintf("lesson %q has non-positive id %d", l.Title, l.ID))
		}
		if ids[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson id: %d", l.ID))
		}
		ids[l.ID] = true
		if len(l.Steps) == 0 {
			errs = append(errs, fmt.Sprintf("lesson %d has no steps", l.ID))
		}
	}

	for _, l := range ls {
		for _, req := range l.RequiredLessons {
			if !ids[req] {
				errs = append(errs, fmt.Sprintf("lesson %d requires nonexistent lesson %d", l.ID, req))
			}
		}
	}

	// Kahn's algorithm over the prerequisite edges.
	inDegree := make(map[int]int, len(ls))
	next := make(map[int][]int)
	var queue []int
	for _, l := range ls {
		inDegree[l.ID] = len(l.RequiredLessons)
		for _, req := range l.RequiredLessons {
			next[req] = append(next[req], l.ID)
		}
		if len(l.RequiredLessons) == 0 {
			queue = append(queue, l.ID)
		}
	}
	if len(queue) == 0 && len(ls) > 0 {
		errs = append(errs, "no lesson is available without prerequisites")
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range next[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(ls) {
		var stuck []string
		for _, l := range ls {
			if inDegree[l.ID] > 0 {
				stuck = append(stuck, fmt.Sprint(l.ID))
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving lessons: %s", strings.Join(stuck, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("lesson roster validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
