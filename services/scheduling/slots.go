package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"malone/config"
	"malone/models"
)

// SlotsForZone returns the ordered arrival-window labels offered in a zone.
// Home gets the two wide-spaced slots bracketing the day; Pueblo and Valley
// get the full business-hours grid. Order is the order slots are read to the
// caller and must stay stable.
func SlotsForZone(zone models.Zone) []string {
	switch zone {
	case models.ZoneHome:
		return []string{
			FormatHour(config.BusinessStartHour),
			FormatHour(config.BusinessEndHour),
		}
	case models.ZonePueblo, models.ZoneValley:
		var slots []string
		for h := config.BusinessStartHour; h < config.BusinessEndHour; h += config.SlotDurationHours {
			slots = append(slots, FormatHour(h))
		}
		return slots
	}
	return nil
}

// FormatHour renders a 24-hour clock hour as a spoken slot label, e.g.
// 13 -> "1:00 PM", 0 -> "12:00 AM".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour == 12:
		return "12:00 PM"
	case hour > 12:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
	return fmt.Sprintf("%d:00 AM", hour)
}

// ParseSlot converts a slot label back to its 24-hour clock hour. Accepts the
// loose forms callers produce ("1 pm", " 1:00PM ").
func ParseSlot(label string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(label))
	pm := strings.Contains(s, "PM")
	am := strings.Contains(s, "AM")
	s = strings.TrimSpace(strings.NewReplacer("AM", "", "PM", "").Replace(s))

	hourPart := s
	if i := strings.Index(s, ":"); i >= 0 {
		hourPart = s[:i]
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("unrecognized time slot %q", label)
	}

	switch {
	case pm && hour != 12:
		hour += 12
	case am && hour == 12:
		hour = 0
	}
	return hour, nil
}

// WindowFor derives the concrete appointment window from a calendar date and
// a slot label: starts on the slot hour in the shop's time zone, fixed
// two-hour duration.
func WindowFor(date time.Time, slot string) (models.AppointmentWindow, error) {
	hour, err := ParseSlot(slot)
	if err != nil {
		return models.AppointmentWindow{}, err
	}
	y, m, d := date.In(config.Location()).Date()
	start := time.Date(y, m, d, hour, 0, 0, 0, config.Location())
	return models.AppointmentWindow{
		Start: start,
		End:   start.Add(config.SlotDurationHours * time.Hour),
	}, nil
}
