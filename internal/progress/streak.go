package progress

import "time"

// NextStreak applies the daily streak rule. last is the previous play date
// (DateLayout) or nil; today is the current instant, whose own location
// defines the calendar day.
//
//	no previous date (or unparseable) -> 1
//	same day                          -> streak
//	previous day                      -> streak+1
//	anything else                     -> 1
func NextStreak(last *string, streak int, today time.Time) int {
	if last == nil {
		return 1
	}
	if _, err := time.Parse(DateLayout, *last); err != nil {
		return 1
	}

	todayStr := today.Format(DateLayout)
	if *last == todayStr {
		return streak
	}

	y, m, d := today.Date()
	yesterday := time.Date(y, m, d-1, 12, 0, 0, 0, today.Location()).Format(DateLayout)
	if *last == yesterday {
		return streak + 1
	}
	return 1
}
