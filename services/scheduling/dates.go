package scheduling

import (
	"fmt"
	"strings"
	"time"

	"malone/config"
)

// FormatSpokenDate renders a date the way it is read to a caller:
// full weekday plus month and day, no year.
func FormatSpokenDate(t time.Time) string {
	return t.In(config.Location()).Format("Monday, January 02")
}

// FormatDateOptions renders candidate dates as a numbered speakable list.
func FormatDateOptions(dates []time.Time) []string {
	options := make([]string, len(dates))
	for i, d := range dates {
		options[i] = fmt.Sprintf("%d. %s", i+1, FormatSpokenDate(d))
	}
	return options
}

var ordinalWords = []string{"first", "second", "third", "fourth", "fifth"}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
}

// ParseSpokenDate interprets a caller's spoken date: "today", "tomorrow",
// a weekday name (next occurrence), or a pick from the offered list by
// number or ordinal word. Returns the zero time when nothing matches.
func ParseSpokenDate(text string, now time.Time, offered []time.Time) time.Time {
	lower := strings.ToLower(text)
	now = now.In(config.Location())

	if strings.Contains(lower, "today") {
		return now
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1)
	}

	for name, wd := range weekdayNames {
		if !strings.Contains(lower, name) {
			continue
		}
		ahead := int(wd-now.Weekday()+7) % 7
		if ahead == 0 {
			ahead = 7
		}
		return now.AddDate(0, 0, ahead)
	}

	for i := range offered {
		if i < len(ordinalWords) && strings.Contains(lower, ordinalWords[i]) {
			return offered[i]
		}
		if strings.Contains(text, fmt.Sprintf("%d", i+1)) {
			return offered[i]
		}
	}

	return time.Time{}
}
