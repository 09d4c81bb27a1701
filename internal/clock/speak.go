package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

func period(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

func display12(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

// FormatHM formats a 24-hour time as "3:07 PM".
func FormatHM(hour, minute int) string {
	return fmt.Sprintf("%d:%02d %s", display12(hour), minute, period(hour))
}

// Format formats t as "3:07 PM", or "3:07:42 PM" with seconds.
func Format(t time.Time, withSeconds bool) string {
	if withSeconds {
		return fmt.Sprintf("%d:%02d:%02d %s", display12(t.Hour()), t.Minute(), t.Second(), period(t.Hour()))
	}
	return FormatHM(t.Hour(), t.Minute())
}

// Speak returns how a child would say the time out loud.
func Speak(hour, minute int) string {
	h := display12(hour)
	switch {
	case minute == 0:
		return fmt.Sprintf("%d o'clock %s", h, period(hour))
	case minute == 15:
		return fmt.Sprintf("Quarter past %d %s", h, period(hour))
	case minute == 30:
		return fmt.Sprintf("Half past %d %s", h, period(hour))
	case minute == 45:
		next := (hour + 1) % 24
		return fmt.Sprintf("Quarter to %d %s", display12(next), period(next))
	case minute < 10:
		return fmt.Sprintf("%d oh %d %s", h, minute, period(hour))
	default:
		return fmt.Sprintf("%d %d %s", h, minute, period(hour))
	}
}

var (
	ones  = []string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	teens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	tens  = []string{"", "", "twenty", "thirty", "forty", "fifty"}
)

// HourWord spells the 12-hour clock hour.
func HourWord(hour int) string {
	h := display12(hour)
	if h < 10 {
		return ones[h]
	}
	return teens[h-10]
}

// MinuteWord spells the minute the way it is read after the hour.
func MinuteWord(minute int) string {
	switch {
	case minute == 0:
		return "o'clock"
	case minute < 10:
		return "oh " + ones[minute]
	case minute < 20:
		return teens[minute-10]
	case minute%10 == 0:
		return tens[minute/10]
	default:
		return tens[minute/10] + "-" + ones[minute%10]
	}
}

// Words spells a full time, e.g. "three forty-five".
func Words(hour, minute int) string {
	return HourWord(hour) + " " + MinuteWord(minute)
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// Parse reads "H:MM" or "H:MM AM/PM" into a 24-hour time.
func Parse(s string) (hour, minute int, err error) {
	m := timePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid time %q", s)
		}
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, 0, fmt.Errorf("invalid time %q", s)
		}
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	return hour, minute, nil
}
